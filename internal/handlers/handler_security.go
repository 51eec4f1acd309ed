package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/md_util/internal/core/domain"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/SscSPs/md_util/internal/dto"
	"github.com/SscSPs/md_util/internal/middleware"
	"github.com/SscSPs/md_util/internal/platform/messages"
	"github.com/SscSPs/md_util/internal/utils"
	"github.com/gin-gonic/gin"
)

// MsgSecurityReconciled is the bundle key of the reconcile summary line.
const MsgSecurityReconciled = "security.reconciled"

// securityHandler handles HTTP requests related to securities and prices
type securityHandler struct {
	securityService portssvc.SecuritySvc
	bundle          messages.Bundle
	displayCurrency string
}

func newSecurityHandler(ss portssvc.SecuritySvc, bundle messages.Bundle, displayCurrency string) *securityHandler {
	return &securityHandler{
		securityService: ss,
		bundle:          bundle,
		displayCurrency: displayCurrency,
	}
}

// registerSecurityRoutes registers routes related to securities and price conversion
func registerSecurityRoutes(rg *gin.RouterGroup, securityService portssvc.SecuritySvc, bundle messages.Bundle, displayCurrency string) {
	h := newSecurityHandler(securityService, bundle, displayCurrency)

	securities := rg.Group("/securities/:securityID")
	{
		securities.GET("/snapshots/latest", h.getLatestSnapshot)
		securities.GET("/snapshots", h.getSnapshotForDate)
		securities.POST("/reconcile", h.reconcileSecurity)
	}
	rg.GET("/prices/from-rate", h.convertRate)
}

// getLatestSnapshot godoc
// @Summary Get the latest snapshot of a security
// @Tags securities
// @Produce json
// @Param securityID path string true "Security ID"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Security not found"
// @Failure 422 {object} dto.ErrorResponse "Security has no snapshots"
// @Security BearerAuth
// @Router /securities/{securityID}/snapshots/latest [get]
func (h *securityHandler) getLatestSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.SecurityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	logger = logger.With(slog.String("security_id", uri.SecurityID))

	snapshot, err := h.securityService.GetLatestSnapshot(c.Request.Context(), uri.SecurityID)
	if err != nil {
		respondError(c, logger, err, "Failed to get snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(uri.SecurityID, *snapshot))
}

// getSnapshotForDate godoc
// @Summary Get the snapshot in effect on a date
// @Description Returns the newest snapshot dated on or before the date, or the oldest snapshot when the date predates the history.
// @Tags securities
// @Produce json
// @Param securityID path string true "Security ID"
// @Param date query string true "Date as YYYYMMDD or YYYY-MM-DD"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Security not found"
// @Failure 422 {object} dto.ErrorResponse "Security has no snapshots"
// @Security BearerAuth
// @Router /securities/{securityID}/snapshots [get]
func (h *securityHandler) getSnapshotForDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.SecurityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	var query dto.SnapshotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, logger, err)
		return
	}
	date, err := domain.ParseDateInt(query.Date)
	if err != nil {
		badRequest(c, logger, err)
		return
	}
	logger = logger.With(slog.String("security_id", uri.SecurityID), slog.String("date", date.String()))

	snapshot, err := h.securityService.GetSnapshotForDate(c.Request.Context(), uri.SecurityID, date)
	if err != nil {
		respondError(c, logger, err, "Failed to get snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(uri.SecurityID, *snapshot))
}

// reconcileSecurity godoc
// @Summary Reconcile the cached rate of a security
// @Description Aligns the cached rate with the latest snapshot when their prices differ.
// @Tags securities
// @Produce json
// @Param securityID path string true "Security ID"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Security not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid rate or empty history"
// @Failure 500 {object} dto.ErrorResponse "Failed to reconcile"
// @Security BearerAuth
// @Router /securities/{securityID}/reconcile [post]
func (h *securityHandler) reconcileSecurity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.SecurityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	logger = logger.With(slog.String("security_id", uri.SecurityID))

	result, err := h.securityService.ReconcileSecurity(c.Request.Context(), uri.SecurityID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile security")
		return
	}

	message := h.bundle.Format(MsgSecurityReconciled, result.Name, result.TickerSymbol, utils.FormatPrice(result.Price, h.displayCurrency))
	c.JSON(http.StatusOK, dto.ToReconcileResponse(*result, h.displayCurrency, message))
}

// convertRate godoc
// @Summary Convert an exchange rate to a price
// @Description Returns 1/rate rounded half to even to 10 fractional digits.
// @Tags prices
// @Produce json
// @Param rate query number true "Exchange rate"
// @Param currency query string false "Display currency code"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Rate cannot be converted"
// @Security BearerAuth
// @Router /prices/from-rate [get]
func (h *securityHandler) convertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.PriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, logger, err)
		return
	}

	price, err := h.securityService.ConvertRateToPrice(query.Rate)
	if err != nil {
		respondError(c, logger, err, "Failed to convert rate")
		return
	}

	currency := h.displayCurrency
	if query.Currency != "" {
		currency = query.Currency
	}
	c.JSON(http.StatusOK, dto.PriceResponse{
		Rate:           query.Rate,
		Price:          price,
		FormattedPrice: utils.FormatPrice(price, currency),
	})
}
