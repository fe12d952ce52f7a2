package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports service and store status.
type HealthResponse struct {
	Status string `json:"status"`
}

// getHealth godoc
// @Summary Health check
// @Description Reports whether the record store is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func getHealth(health portssvc.HealthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := health.Check(c.Request.Context()); err != nil {
			respondWithError(c, err, "Record store unavailable")
			return
		}
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
