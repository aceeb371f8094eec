package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg gin.IRouter, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.PUT("", h.setExchangeRate)
		rates.GET("/:base/:counter", h.getExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Returns every stored directional rate
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// setExchangeRate godoc
// @Summary Set an exchange rate
// @Description Stores base→counter and derives counter→base as 1/rate rounded to 5 decimals, in one atomic write
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.SetExchangeRateRequest true "Exchange Rate details"
// @Success 200 {object} dto.SetExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /rates [put]
func (h *exchangeRateHandler) setExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to set exchange rate",
		slog.String("base", req.BaseCurrency),
		slog.String("counter", req.CounterCurrency),
		slog.String("rate", req.Rate.String()),
	)

	rate, err := h.exchangeRateService.SetRate(c.Request.Context(), req.BaseCurrency, req.CounterCurrency, req.Rate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to set exchange rate")
		return
	}

	reciprocal := rate.Reciprocal()
	c.JSON(http.StatusOK, dto.SetExchangeRateResponse{
		Rate:       dto.ToExchangeRateResponse(rate),
		Reciprocal: dto.ToExchangeRateResponse(&reciprocal),
	})
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the stored rate for one direction. Rates are never derived through a third currency.
// @Tags exchange rates
// @Produce  json
// @Param   base    path string true "Base currency code (3 letters)" MinLength(3) MaxLength(3)
// @Param   counter path string true "Counter currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /rates/{base}/{counter} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Param("base")
	counter := c.Param("counter")

	// Basic validation - service lookups only match exact codes
	if len(base) != 3 || len(counter) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("base", base), slog.String("counter", counter))

	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), base, counter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
