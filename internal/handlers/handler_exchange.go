package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles the exchange operation and the exchange log.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
	}
}

// registerExchangeRoutes registers POST /exchange and GET /log.
func registerExchangeRoutes(rg gin.IRouter, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	rg.POST("/exchange", h.exchange)
	rg.GET("/log", h.listLog)
}

// exchange godoc
// @Summary Exchange currency
// @Description Sells baseAmount of baseCurrency from the client's base account and pays baseAmount*rate of
// @Description counterCurrency to the client's counter account. Every attempt is logged and answered with a result.
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   exchange body dto.ExchangeRequest true "Exchange request"
// @Success 200 {object} domain.ExchangeResult "Exchange completed"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} domain.ExchangeResult "Exchange failed, see obs and reason"
// @Failure 503 {object} domain.ExchangeResult "Storage unavailable"
// @Router /exchange [post]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.BaseAmount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseAmount must be positive"})
		return
	}
	if req.BaseCurrency == req.CounterCurrency {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseCurrency and counterCurrency must differ"})
		return
	}
	if req.BaseAccountID == req.CounterAccountID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseAccountId and counterAccountId must differ"})
		return
	}

	logger.Info("Received exchange request",
		slog.String("base", req.BaseCurrency),
		slog.String("counter", req.CounterCurrency),
		slog.String("base_amount", req.BaseAmount.String()),
	)

	result, err := h.exchangeService.Exchange(c.Request.Context(), req.ToDomain())
	if result != nil {
		middleware.SetExchangeID(c, result.ID)
	}
	if err != nil {
		status := statusForError(err)
		logger.Error("Exchange failed on infrastructure error", slog.String("error", err.Error()), slog.Int("status", status))
		if result == nil {
			c.JSON(status, gin.H{"error": "Failed to process exchange"})
			return
		}
		c.JSON(status, result)
		return
	}

	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// listLog godoc
// @Summary Read the exchange log
// @Description Pages through every exchange attempt, oldest first
// @Tags exchange
// @Produce  json
// @Param   limit     query int    false "Page size (1-500)" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLogResponse
// @Failure 400 {object} map[string]string "Invalid paging parameters"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /log [get]
func (h *exchangeHandler) listLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.exchangeService.ListLog(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to read exchange log")
		return
	}

	c.JSON(http.StatusOK, page)
}
