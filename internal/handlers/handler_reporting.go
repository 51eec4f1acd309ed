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

// MsgBalanceReport is the bundle key of the balance summary line.
const MsgBalanceReport = "balance.report"

// reportingHandler handles HTTP requests related to account balances
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	bundle           messages.Bundle
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc, bundle messages.Bundle) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		bundle:           bundle,
	}
}

// registerReportingRoutes registers routes related to account balances
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, bundle messages.Bundle) {
	h := newReportingHandler(reportingService, bundle)

	accounts := rg.Group("/books/:bookID/accounts/:accountID")
	{
		accounts.GET("/balance", h.getCurrentBalance)
		accounts.GET("/balances", h.getBalancesAsOf)
		accounts.GET("/subaccounts", h.findSubAccount)
	}
}

// getCurrentBalance godoc
// @Summary Get current account balance
// @Description Returns the balance of an account as of today. ASSET accounts include all descendant accounts.
// @Tags reports
// @Produce json
// @Param bookID path string true "Book ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.CurrentBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Book or account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get balance"
// @Security BearerAuth
// @Router /books/{bookID}/accounts/{accountID}/balance [get]
func (h *reportingHandler) getCurrentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	logger = logger.With(slog.String("book_id", uri.BookID), slog.String("account_id", uri.AccountID))

	balance, err := h.reportingService.CurrentAccountBalance(c.Request.Context(), uri.BookID, uri.AccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to get balance")
		return
	}

	message := h.bundle.Format(MsgBalanceReport, balance.AccountName, balance.AsOf.String(), utils.FormatAmount(balance.Balance, balance.Currency))
	logger.Info("Current balance retrieved", slog.String("balance", utils.FormatWithPrecision(balance.Balance, balance.DecimalPlaces)))
	c.JSON(http.StatusOK, dto.ToCurrentBalanceResponse(*balance, message))
}

// getBalancesAsOf godoc
// @Summary Get account balances as of dates
// @Description Returns the balance at the end of each requested date, in request order. ASSET accounts include all descendant accounts.
// @Tags reports
// @Produce json
// @Param bookID path string true "Book ID"
// @Param accountID path string true "Account ID"
// @Param date query []string true "Dates as YYYYMMDD or YYYY-MM-DD, repeated or comma separated" collectionFormat(multi)
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Book or account not found"
// @Failure 422 {object} dto.ErrorResponse "Inconsistent account tree"
// @Failure 500 {object} dto.ErrorResponse "Failed to get balances"
// @Security BearerAuth
// @Router /books/{bookID}/accounts/{accountID}/balances [get]
func (h *reportingHandler) getBalancesAsOf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	var query dto.BalancesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, logger, err)
		return
	}
	dates, err := dto.ParseDates(query.Dates)
	if err != nil {
		badRequest(c, logger, err)
		return
	}
	logger = logger.With(slog.String("book_id", uri.BookID), slog.String("account_id", uri.AccountID))

	balances, err := h.reportingService.AccountBalancesAsOf(c.Request.Context(), uri.BookID, uri.AccountID, dates)
	if err != nil {
		respondError(c, logger, err, "Failed to get balances")
		return
	}

	logger.Info("Balances retrieved", slog.Int("dates", len(dates)))
	c.JSON(http.StatusOK, dto.ToAccountBalancesResponse(*balances))
}

// findSubAccount godoc
// @Summary Find a sub account
// @Description Finds the first descendant account, depth first, by case-insensitive name or investment account number.
// @Tags accounts
// @Produce json
// @Param bookID path string true "Book ID"
// @Param accountID path string true "Account ID"
// @Param name query string false "Account name"
// @Param investNumber query string false "Investment account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No matching account"
// @Failure 500 {object} dto.ErrorResponse "Failed to find account"
// @Security BearerAuth
// @Router /books/{bookID}/accounts/{accountID}/subaccounts [get]
func (h *reportingHandler) findSubAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, logger, err)
		return
	}
	var query dto.SubAccountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, logger, err)
		return
	}

	var (
		account *domain.Account
		err     error
	)
	if query.Name != "" {
		account, err = h.reportingService.FindSubAccountByName(c.Request.Context(), uri.BookID, uri.AccountID, query.Name)
	} else {
		account, err = h.reportingService.FindSubAccountByInvestNumber(c.Request.Context(), uri.BookID, uri.AccountID, query.InvestNumber)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to find account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}
