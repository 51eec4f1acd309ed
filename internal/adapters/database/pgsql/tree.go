package pgsql

import (
	"fmt"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
)

// buildAccountTree links flat account rows into a tree. Rows must be in
// sibling order. Exactly one row may lack a parent.
func buildAccountTree(bookID string, rows []domain.Account) (*domain.Account, error) {
	byID := make(map[string]*domain.Account, len(rows))
	for i := range rows {
		acct := rows[i]
		acct.SubAccounts = nil
		byID[acct.AccountID] = &acct
	}

	var root *domain.Account
	for i := range rows {
		acct := byID[rows[i].AccountID]
		if acct.ParentAccountID == "" {
			if root != nil {
				return nil, fmt.Errorf("%w: book %s has roots %s and %s", apperrors.ErrInvalidState, bookID, root.AccountID, acct.AccountID)
			}
			root = acct
			continue
		}
		parent, ok := byID[acct.ParentAccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s has parent %s outside book %s", apperrors.ErrInvalidState, acct.AccountID, acct.ParentAccountID, bookID)
		}
		parent.SubAccounts = append(parent.SubAccounts, acct)
	}
	if root == nil && len(rows) > 0 {
		return nil, fmt.Errorf("%w: book %s has no root account", apperrors.ErrInvalidState, bookID)
	}
	return root, nil
}
