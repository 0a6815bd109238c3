package feed

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strings"

	"stock-sync/core/syncerr"
)

// Sheet file extensions the loader understands.
const (
	extXLS  = ".xls"
	extXLSX = ".xlsx"
)

// extractSheet returns the name and contents of the spreadsheet inside a zip
// archive. member selects the file by base name (case-insensitive); an empty
// member picks the first .xls or .xlsx file.
func extractSheet(data []byte, member string) (string, []byte, error) {
	const op = "open feed archive"

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, syncerr.DataFormat(op, "archive", "", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := path.Base(f.Name)
		if member != "" {
			if !strings.EqualFold(name, member) {
				continue
			}
		} else if ext := strings.ToLower(path.Ext(name)); ext != extXLS && ext != extXLSX {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", nil, syncerr.DataFormat(op, "archive", f.Name, err)
		}
		content, err := io.ReadAll(io.LimitReader(rc, maxArchiveSize+1))
		rc.Close()
		if err != nil {
			return "", nil, syncerr.DataFormat(op, "archive", f.Name, err)
		}
		if len(content) > maxArchiveSize {
			return "", nil, syncerr.DataFormat(op, "archive", f.Name, errArchiveTooLarge)
		}
		return name, content, nil
	}

	want := member
	if want == "" {
		want = "*.xls, *.xlsx"
	}
	return "", nil, syncerr.DataFormat(op, "member", want, errMemberNotFound)
}
