package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
)

// currencyHandler serves the seeded currency reference data.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := &currencyHandler{currencyService: currencyService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all supported currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "list currencies")
		return
	}

	res := make([]dto.CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		res[i] = dto.ToCurrencyResponse(&cur)
	}
	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: res})
}

// getCurrency godoc
// @Summary Get a currency by code
// @Description Retrieves one currency by its ISO code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, logger, err, "retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
