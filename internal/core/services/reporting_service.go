package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	bookRepo portsrepo.BookReader
	balances portssvc.BalanceSvc
	clock    portsrepo.HostClock
}

type localClock struct{}

func (localClock) Today() domain.DateInt { return domain.Today() }

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingLogger sets the logger used when no request logger is in context.
func WithReportingLogger(logger *slog.Logger) ReportingServiceOption {
	return func(s *reportingService) {
		s.Logger = logger
	}
}

// WithHostClock sets the clock current balances are stamped with. It should be
// the clock of the host that computes them.
func WithHostClock(clock portsrepo.HostClock) ReportingServiceOption {
	return func(s *reportingService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(bookRepo portsrepo.BookReader, balances portssvc.BalanceSvc, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		bookRepo: bookRepo,
		balances: balances,
		clock:    localClock{},
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// loadAccount loads the book and locates accountID in its tree.
func (s *reportingService) loadAccount(ctx context.Context, bookID, accountID string) (*domain.Book, *domain.Account, error) {
	book, err := s.bookRepo.LoadBook(ctx, bookID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load book %s: %w", bookID, err)
	}
	account, ok := book.FindAccount(accountID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: account %s not found in book %s", apperrors.ErrNotFound, accountID, bookID)
	}
	return book, account, nil
}

// CurrentAccountBalance returns the balance of an account as of the host clock's today
func (s *reportingService) CurrentAccountBalance(ctx context.Context, bookID, accountID string) (*domain.CurrentBalance, error) {
	_, account, err := s.loadAccount(ctx, bookID, accountID)
	if err != nil {
		return nil, err
	}

	asOf := s.clock.Today()
	balance, err := s.balances.CurrentBalance(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to get current balance",
			slog.String("book_id", bookID),
			slog.String("account_id", accountID))
		return nil, err
	}

	return &domain.CurrentBalance{
		AccountID:     account.AccountID,
		AccountName:   account.Name,
		Currency:      account.Currency,
		DecimalPlaces: account.DecimalPlaces(),
		AsOf:          asOf,
		Balance:       balance,
	}, nil
}

// AccountBalancesAsOf returns one balance per requested date, in request order
func (s *reportingService) AccountBalancesAsOf(ctx context.Context, bookID, accountID string, dates []domain.DateInt) (*domain.AccountBalances, error) {
	book, account, err := s.loadAccount(ctx, bookID, accountID)
	if err != nil {
		return nil, err
	}

	balances, err := s.balances.BalancesAsOfDates(ctx, book, account, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to get balances as of dates",
			slog.String("book_id", bookID),
			slog.String("account_id", accountID),
			slog.Int("dates", len(dates)))
		return nil, err
	}

	s.LogInfo(ctx, "Balances generated",
		slog.String("account_id", accountID),
		slog.Int("dates", len(dates)))
	return &domain.AccountBalances{
		AccountID:     account.AccountID,
		AccountName:   account.Name,
		Currency:      account.Currency,
		DecimalPlaces: account.DecimalPlaces(),
		Dates:         dates,
		Balances:      balances,
	}, nil
}

func (s *reportingService) FindSubAccountByName(ctx context.Context, bookID, accountID, name string) (*domain.Account, error) {
	_, account, err := s.loadAccount(ctx, bookID, accountID)
	if err != nil {
		return nil, err
	}
	return SubAccountByName(account, name)
}

func (s *reportingService) FindSubAccountByInvestNumber(ctx context.Context, bookID, accountID, number string) (*domain.Account, error) {
	_, account, err := s.loadAccount(ctx, bookID, accountID)
	if err != nil {
		return nil, err
	}
	return SubAccountByInvestNumber(account, number)
}
