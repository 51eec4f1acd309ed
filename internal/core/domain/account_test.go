package domain_test

import (
	"testing"

	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBook_FindAccount(t *testing.T) {
	leaf := &domain.Account{AccountID: "leaf", AccountType: domain.Bank}
	mid := &domain.Account{AccountID: "mid", AccountType: domain.Asset, SubAccounts: []*domain.Account{leaf}}
	root := &domain.Account{AccountID: "root", AccountType: domain.Root, SubAccounts: []*domain.Account{mid}}
	book := &domain.Book{BookID: "b1", Root: root}

	got, ok := book.FindAccount("leaf")
	assert.True(t, ok)
	assert.Same(t, leaf, got)

	_, ok = book.FindAccount("missing")
	assert.False(t, ok)

	var nilBook *domain.Book
	_, ok = nilBook.FindAccount("leaf")
	assert.False(t, ok)
}

func TestBook_FindAccountSurvivesCycle(t *testing.T) {
	a := &domain.Account{AccountID: "a"}
	b := &domain.Account{AccountID: "b"}
	a.SubAccounts = []*domain.Account{b}
	b.SubAccounts = []*domain.Account{a}

	_, ok := (&domain.Book{Root: a}).FindAccount("missing")
	assert.False(t, ok)
}

func TestAccountType_Valid(t *testing.T) {
	assert.True(t, domain.Asset.Valid())
	assert.True(t, domain.Investment.Valid())
	assert.False(t, domain.AccountType("REVENUE").Valid())
}

func TestAccount_IsAsset(t *testing.T) {
	assert.True(t, (&domain.Account{AccountType: domain.Asset}).IsAsset())
	assert.False(t, (&domain.Account{AccountType: domain.Bank}).IsAsset())
}
