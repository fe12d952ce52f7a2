package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles depreciable assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := &assetHandler{assetService: assetService}

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.POST("/:id/touch", h.touchAsset)
	}
}

// createAsset godoc
// @Summary Register an asset
// @Description Registers a depreciable asset and returns it with its depreciation as of today
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	valuation, err := h.assetService.AddAsset(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to register asset")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Asset registered", slog.String("asset_id", valuation.Asset.ID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(*valuation))
}

// listAssets godoc
// @Summary List assets with depreciation
// @Tags assets
// @Produce json
// @Success 200 {array} dto.AssetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// touchAsset godoc
// @Summary Recompute an asset's depreciation
// @Description Stamps the asset's last updated time and returns its current depreciation
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/{id}/touch [post]
func (h *assetHandler) touchAsset(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	valuation, err := h.assetService.TouchAssetDepreciation(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to update asset depreciation")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(*valuation))
}
