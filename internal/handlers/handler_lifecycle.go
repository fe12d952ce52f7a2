package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lifecycleHandler serves soft delete and restore for one record collection.
type lifecycleHandler struct {
	kind    string
	service portssvc.RecordLifecycleSvc
}

func registerLifecycleRoutes(group *gin.RouterGroup, kind string, svc portssvc.RecordLifecycleSvc) {
	h := &lifecycleHandler{kind: kind, service: svc}
	group.DELETE("/:id", h.softDelete)
	group.POST("/:id/restore", h.restore)
}

// softDelete godoc
// @Summary Soft delete a record
// @Description Hides the record from listings and dashboard figures. It can be restored later.
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales/{id} [delete]
// @Router /purchases/{id} [delete]
// @Router /expenses/{id} [delete]
func (h *lifecycleHandler) softDelete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", h.kind), slog.String("record_id", id))

	if err := h.service.SoftDelete(c.Request.Context(), id, userID); err != nil {
		respondWithError(c, err, "Failed to delete "+h.kind)
		return
	}
	logger.Info("Record soft deleted")
	c.Status(http.StatusNoContent)
}

// restore godoc
// @Summary Restore a soft deleted record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sales/{id}/restore [post]
// @Router /purchases/{id}/restore [post]
// @Router /expenses/{id}/restore [post]
func (h *lifecycleHandler) restore(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", h.kind), slog.String("record_id", id))

	if err := h.service.Restore(c.Request.Context(), id, userID); err != nil {
		respondWithError(c, err, "Failed to restore "+h.kind)
		return
	}
	logger.Info("Record restored")
	c.Status(http.StatusNoContent)
}
