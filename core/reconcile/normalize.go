package reconcile

import (
	"errors"
	"strconv"
	"strings"

	"stock-sync/core/syncerr"
)

// Feed-specific quantity sentinels.
const (
	quantityPlenty   = ">10"
	quantityShowcase = "1"

	stockPlenty   = 100
	stockShowcase = 0
)

var errNegativeQuantity = errors.New("quantity must not be negative")

// ResolveQuantity maps a feed quantity to the stock reported to marketplaces.
// ">10" resolves to 100 and "1" resolves to 0 (the last unit is the display piece);
// anything else must be a non-negative base-10 integer.
func ResolveQuantity(raw string) (int, error) {
	q := strings.TrimSpace(raw)
	switch q {
	case quantityPlenty:
		return stockPlenty, nil
	case quantityShowcase:
		return stockShowcase, nil
	}

	n, err := strconv.Atoi(q)
	if err != nil {
		return 0, syncerr.DataFormat("resolve quantity", "quantity", raw, err)
	}
	if n < 0 {
		return 0, syncerr.DataFormat("resolve quantity", "quantity", raw, errNegativeQuantity)
	}
	return n, nil
}

// NormalizePrice turns "5'990.00 руб." into "5990": everything from the first '.'
// is dropped, then every byte that is not an ASCII digit. It never fails; a price
// without digits before the decimal point yields "".
func NormalizePrice(price string) string {
	whole, _, _ := strings.Cut(price, ".")

	var b strings.Builder
	b.Grow(len(whole))
	for i := 0; i < len(whole); i++ {
		if c := whole[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
