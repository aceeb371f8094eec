package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type transferHandler struct {
	transferer portssvc.Transferer
}

func registerTransferRoutes(rg gin.IRouter, transferer portssvc.Transferer) {
	h := &transferHandler{transferer: transferer}
	rg.POST("/transfer", h.transfer)
}

// transfer godoc
// @Summary Run a transfer on the rail
// @Description Moves funds between two accounts through the transfer rail. Repeating an operationId
// @Description returns the first outcome without moving funds again.
// @Tags transfer
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer request"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} dto.TransferResponse "Transfer rejected by the rail"
// @Router /transfer [post]
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	if req.OperationID == "" {
		req.OperationID = uuid.NewString()
	}

	logger = logger.With(slog.String("operation_id", req.OperationID))
	err := h.transferer.Transfer(c.Request.Context(), req.ToDomain())
	if err == nil {
		c.JSON(http.StatusOK, dto.TransferResponse{OperationID: req.OperationID, OK: true})
		return
	}
	if !errors.Is(err, apperrors.ErrTransferFailed) {
		respondWithError(c, logger, err, "Failed to run transfer")
		return
	}

	logger.Warn("Transfer rejected", slog.String("error", err.Error()))
	c.JSON(http.StatusUnprocessableEntity, dto.TransferResponse{OperationID: req.OperationID, OK: false, Error: err.Error()})
}
