package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
)

// SubAccountByName returns the first descendant of account, depth first, whose
// name matches case-insensitively.
func SubAccountByName(account *domain.Account, name string) (*domain.Account, error) {
	found := findDescendant(account, func(a *domain.Account) bool {
		return strings.EqualFold(a.Name, name)
	})
	if found == nil {
		return nil, fmt.Errorf("%w: no account named %q below %s", apperrors.ErrNotFound, name, account.AccountID)
	}
	return found, nil
}

// SubAccountByInvestNumber returns the first descendant of account, depth first,
// whose investment account number matches case-insensitively.
func SubAccountByInvestNumber(account *domain.Account, number string) (*domain.Account, error) {
	found := findDescendant(account, func(a *domain.Account) bool {
		return a.InvestAccountNumber != "" && strings.EqualFold(a.InvestAccountNumber, number)
	})
	if found == nil {
		return nil, fmt.Errorf("%w: no account with invest number %q below %s", apperrors.ErrNotFound, number, account.AccountID)
	}
	return found, nil
}

// findDescendant walks the subtree in pre-order, children in their stored order.
// Each account is visited at most once.
func findDescendant(account *domain.Account, match func(*domain.Account) bool) *domain.Account {
	visited := map[*domain.Account]bool{account: true}
	stack := make([]*domain.Account, 0, len(account.SubAccounts))
	for i := len(account.SubAccounts) - 1; i >= 0; i-- {
		stack = append(stack, account.SubAccounts[i])
	}
	for len(stack) > 0 {
		acct := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if acct == nil || visited[acct] {
			continue
		}
		visited[acct] = true
		if match(acct) {
			return acct
		}
		for i := len(acct.SubAccounts) - 1; i >= 0; i-- {
			stack = append(stack, acct.SubAccounts[i])
		}
	}
	return nil
}
