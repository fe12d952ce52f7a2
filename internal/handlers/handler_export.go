package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/export"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	snapshotService  portssvc.SnapshotSvcFacade
	money            *utils.CurrencyFormatter
	now              func() time.Time
}

func registerExportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, money *utils.CurrencyFormatter) {
	h := &exportHandler{
		dashboardService: services.Dashboard,
		snapshotService:  services.Snapshot,
		money:            money,
		now:              time.Now,
	}

	exports := rg.Group("/export")
	{
		exports.GET("/dashboard.xlsx", h.exportDashboard)
		exports.GET("/snapshot.json", h.exportSnapshot)
	}
}

// exportDashboard godoc
// @Summary Download the dashboard as a workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param range query string false "all, last-7-days, last-1-month or last-3-months"
// @Param fromDate query string false "Custom range start, YYYY-MM-DD"
// @Param toDate query string false "Custom range end, YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/dashboard.xlsx [get]
func (h *exportHandler) exportDashboard(c *gin.Context) {
	req, ok := bindDashboardRequest(c)
	if !ok {
		return
	}
	// exports are one-shot downloads, never superseded
	req.Generation = 0
	ctx := c.Request.Context()

	report := export.DashboardReport{GeneratedAt: h.now(), Period: describeWindow(req.Window)}
	var err error
	if report.Metrics, err = h.dashboardService.Metrics(ctx, req); err != nil {
		respondWithError(c, err, "Failed to export dashboard")
		return
	}
	if report.Expenses, err = h.dashboardService.ExpenseBreakdown(ctx, req); err != nil {
		respondWithError(c, err, "Failed to export dashboard")
		return
	}
	if report.Stock, err = h.dashboardService.Stock(ctx, req); err != nil {
		respondWithError(c, err, "Failed to export dashboard")
		return
	}
	if report.Assets, err = h.dashboardService.Assets(ctx, req); err != nil {
		respondWithError(c, err, "Failed to export dashboard")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDashboard(&buf, report, h.money); err != nil {
		respondWithError(c, err, "Failed to export dashboard")
		return
	}
	middleware.GetLoggerFromCtx(ctx).Info("Dashboard exported", slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", attachment("dashboard", h.now(), "xlsx"))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// exportSnapshot godoc
// @Summary Download every live record as JSON
// @Description The file can be fed to the offline reporting CLI.
// @Tags export
// @Produce json
// @Success 200 {object} services.Snapshot
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/snapshot.json [get]
func (h *exportHandler) exportSnapshot(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	snap, err := h.snapshotService.Snapshot(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to export records")
		return
	}
	var buf bytes.Buffer
	if err := export.WriteSnapshot(&buf, snap); err != nil {
		respondWithError(c, err, "Failed to export records")
		return
	}
	c.Header("Content-Disposition", attachment("snapshot", h.now(), "json"))
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

func attachment(name string, at time.Time, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.%s"`, name, at.UTC().Format("20060102"), ext)
}

// describeWindow renders the window for the workbook header.
func describeWindow(w analytics.Window) string {
	if w.From != nil && w.To != nil {
		return w.From.String() + " to " + w.To.String()
	}
	if w.Preset == "" {
		return string(analytics.PresetAll)
	}
	return string(w.Preset)
}
