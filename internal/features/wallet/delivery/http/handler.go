package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/middleware"
	"taskboard-backend/internal/features/wallet/models"
	"taskboard-backend/internal/features/wallet/service"
)

type WalletHandler struct {
	service service.WalletService
}

func NewWalletHandler(service service.WalletService) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) RegisterRoutes(router *gin.RouterGroup) {
	wallet := router.Group("/wallet")
	{
		wallet.POST("/connect", h.Connect)
		wallet.DELETE("/connect", h.Disconnect)
	}
}

// @Summary Connect wallet
// @Description Links an Ethereum address to a user. When both signature and message are supplied
// @Description the personal_sign signature must recover to the address.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.ConnectRequest true "Wallet to link"
// @Success 200 {object} models.ConnectResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields, bad address, bad signature or wallet already linked"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /wallet/connect [post]
func (h *WalletHandler) Connect(c *gin.Context) {
	var req models.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	resp, err := h.service.Connect(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to connect wallet")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Disconnect wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DisconnectRequest true "User whose wallet is unlinked"
// @Success 200 {object} models.DisconnectResponse
// @Failure 400 {object} models.ErrorResponse "User ID is required"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /wallet/connect [delete]
func (h *WalletHandler) Disconnect(c *gin.Context) {
	var req models.DisconnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	resp, err := h.service.Disconnect(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to disconnect wallet")
		return
	}
	c.JSON(http.StatusOK, resp)
}
