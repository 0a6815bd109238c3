package inventory

import (
	"context"
	"errors"
	"time"

	"stock-sync/core/database"
	"stock-sync/core/logger"
	"stock-sync/core/server"
	"stock-sync/core/syncerr"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory syncs.
type Handler struct {
	service *Service
	logger  *zap.Logger
	cfg     server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger, cfg server.Config) *Handler {
	return &Handler{service: service, logger: logger, cfg: cfg}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/sync/:target", h.HandleSync)
	group.Get("/runs", h.HandleRuns)
}

// HandleSync triggers a sync.
// @Summary Run Sync
// @Description Downloads the supplier feed and pushes stocks and prices to the selected marketplaces. Concurrent requests for the same target share one run.
// @Tags inventory
// @Produce json
// @Param target path string true "all, ozon or yandex"
// @Param dry_run query boolean false "Reconcile without submitting"
// @Success 200 {object} Report "Sync Report"
// @Failure 400 {object} map[string]string "Invalid target"
// @Failure 502 {object} map[string]interface{} "Sync failed"
// @Router /inventory/sync/{target} [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	// Params aliases the request buffer; the report outlives the request.
	target := utils.CopyString(c.Params("target"))
	dryRun := c.QueryBool("dry_run", false)

	l.Info("Sync requested", zap.String("target", target), zap.Bool("dry_run", dryRun))

	ctx := c.UserContext()
	if timeout := h.cfg.SyncTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	report, err := h.service.Sync(ctx, target, Options{DryRun: dryRun, TriggeredBy: TriggerHTTP})
	if err != nil {
		kind := syncerr.KindOf(err)
		if kind == syncerr.KindInvalidArgument && report == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Sync failed", zap.String("kind", kind.String()), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  err.Error(),
			"kind":   kind.String(),
			"report": report,
		})
	}

	l.Info("Sync completed", zap.String("sync_id", report.ID), zap.Duration("duration", time.Since(start)))
	return c.JSON(report)
}

// HandleRuns lists journalled runs.
// @Summary List Runs
// @Description Lists the most recent sync passes recorded in the journal, newest first.
// @Tags inventory
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} database.Run "Runs"
// @Failure 503 {object} map[string]string "Journal disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	limit := h.cfg.ClampLimit(c.QueryInt("limit", 0))

	runs, err := h.service.Runs(c.UserContext(), limit)
	if errors.Is(err, errJournalDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if runs == nil {
		runs = []database.Run{}
	}
	return c.JSON(runs)
}
