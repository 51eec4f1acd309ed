package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService aggregates host balances over account trees.
type balanceService struct {
	BaseService
	balanceReader portsrepo.BalanceReader
}

// BalanceServiceOption is a functional option for configuring the balance service
type BalanceServiceOption func(*balanceService)

// WithBalanceLogger sets the logger used when no request logger is in context.
func WithBalanceLogger(logger *slog.Logger) BalanceServiceOption {
	return func(s *balanceService) {
		s.Logger = logger
	}
}

// NewBalanceService creates a new balance service on top of the host balance query.
func NewBalanceService(balanceReader portsrepo.BalanceReader, options ...BalanceServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{balanceReader: balanceReader}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) CurrentBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	minor, err := s.balanceReader.CurrentBalance(ctx, account, account.IsAsset())
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(minor, account.DecimalPlaces()), nil
}

// BalancesAsOfDates sums the account's own balances and, for ASSET accounts, the
// own balances of every descendant. Each account is queried and counted once,
// even when it is reachable along more than one path.
func (s *balanceService) BalancesAsOfDates(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]decimal.Decimal, error) {
	if len(dates) == 0 {
		return []decimal.Decimal{}, nil
	}

	own, err := s.ownBalances(ctx, book, account, dates)
	if err != nil {
		return nil, err
	}
	totals := append([]int64(nil), own...)

	if account.IsAsset() {
		if err := s.addDescendants(ctx, book, account, dates, totals); err != nil {
			return nil, err
		}
	}

	places := account.DecimalPlaces()
	result := make([]decimal.Decimal, len(totals))
	for i, minor := range totals {
		result[i] = ToDecimal(minor, places)
	}
	return result, nil
}

type descent struct {
	account *domain.Account
	leave   bool
}

// addDescendants adds the own balances of every account below root to totals,
// depth first. Reaching an account that is still on the current path is a cycle.
func (s *balanceService) addDescendants(ctx context.Context, book *domain.Book, root *domain.Account, dates []domain.DateInt, totals []int64) error {
	visited := map[*domain.Account]bool{root: true}
	onPath := map[*domain.Account]bool{root: true}
	stack := make([]descent, 0, len(root.SubAccounts))
	for _, sub := range root.SubAccounts {
		stack = append(stack, descent{account: sub})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sub := top.account
		if top.leave {
			onPath[sub] = false
			continue
		}
		if sub == nil {
			continue
		}
		if onPath[sub] {
			s.LogError(ctx, apperrors.ErrCycle, "Account tree loops back while aggregating balances",
				slog.String("account_id", root.AccountID),
				slog.String("looping_account_id", sub.AccountID))
			return fmt.Errorf("%w: account %s is its own ancestor below %s", apperrors.ErrCycle, sub.AccountID, root.AccountID)
		}
		if visited[sub] {
			continue
		}
		visited[sub] = true
		onPath[sub] = true

		own, err := s.ownBalances(ctx, book, sub, dates)
		if err != nil {
			return err
		}
		for i := range totals {
			totals[i] += own[i]
		}

		stack = append(stack, descent{account: sub, leave: true})
		for _, child := range sub.SubAccounts {
			stack = append(stack, descent{account: child})
		}
	}
	return nil
}

// ownBalances queries the host and checks the result is parallel to dates.
func (s *balanceService) ownBalances(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]int64, error) {
	balances, err := s.balanceReader.BalancesAsOfDates(ctx, book, account, dates)
	if err != nil {
		return nil, err
	}
	if len(balances) != len(dates) {
		return nil, fmt.Errorf("%w: host returned %d balances for %d dates of account %s",
			apperrors.ErrInvalidState, len(balances), len(dates), account.AccountID)
	}
	return balances, nil
}
