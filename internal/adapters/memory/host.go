// Package memory is an in-process host: books, accounts, dated entries and
// securities kept in maps. It backs tests and local runs without Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	"github.com/SscSPs/md_util/internal/core/services"
	"github.com/shopspring/decimal"
)

type entry struct {
	date        domain.DateInt
	amountMinor int64
}

type book struct {
	name   string
	rootID string
}

// Host implements the repository ports over in-memory maps.
type Host struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
	books      map[string]*book
	accounts   map[string]domain.Account // stored without SubAccounts
	children   map[string][]string
	entries    map[string][]entry
	securities map[string]domain.Security
	today      func() domain.DateInt
}

// Option configures a Host.
type Option func(*Host)

// WithToday overrides the date current balances are computed as of.
func WithToday(today func() domain.DateInt) Option {
	return func(h *Host) {
		h.today = today
	}
}

// NewHost creates an empty host.
func NewHost(options ...Option) *Host {
	h := &Host{
		currencies: make(map[string]domain.Currency),
		books:      make(map[string]*book),
		accounts:   make(map[string]domain.Account),
		children:   make(map[string][]string),
		entries:    make(map[string][]entry),
		securities: make(map[string]domain.Security),
		today:      domain.Today,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

var (
	_ portsrepo.BalanceReader            = (*Host)(nil)
	_ portsrepo.BookReader               = (*Host)(nil)
	_ portsrepo.SecurityRepositoryFacade = (*Host)(nil)
	_ portsrepo.HostClock                = (*Host)(nil)
)

// Provider exposes the host through every repository port.
func (h *Host) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BalanceRepo:  h,
		BookRepo:     h,
		SecurityRepo: h,
		Clock:        h,
	}
}

// Today returns the day current balances are computed as of.
func (h *Host) Today() domain.DateInt { return h.today() }

// AddCurrency registers a currency. Decimal places must be between 0 and 4.
func (h *Host) AddCurrency(c domain.Currency) error {
	if c.CurrencyCode == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if !services.ValidDecimalPlaces(c.DecimalPlaces) {
		return fmt.Errorf("%w: currency %s has unsupported decimal places %d", apperrors.ErrValidation, c.CurrencyCode, c.DecimalPlaces)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.currencies[c.CurrencyCode] = c
	return nil
}

// AddBook registers an empty book.
func (h *Host) AddBook(bookID, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.books[bookID]; exists {
		return fmt.Errorf("%w: book %s already exists", apperrors.ErrValidation, bookID)
	}
	h.books[bookID] = &book{name: name}
	return nil
}

// AddAccount attaches an account to its book. An account without a parent
// becomes the book root; each book has exactly one. The account currency is
// resolved from its code.
func (h *Host) AddAccount(acct domain.Account) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.books[acct.BookID]
	if !ok {
		return fmt.Errorf("%w: book %s", apperrors.ErrNotFound, acct.BookID)
	}
	if _, exists := h.accounts[acct.AccountID]; exists || acct.AccountID == "" {
		return fmt.Errorf("%w: account id %q is empty or taken", apperrors.ErrValidation, acct.AccountID)
	}
	if !acct.AccountType.Valid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, acct.AccountType)
	}
	currency, ok := h.currencies[acct.Currency.CurrencyCode]
	if !ok {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, acct.Currency.CurrencyCode)
	}
	acct.Currency = currency
	acct.SubAccounts = nil

	if acct.ParentAccountID == "" {
		if b.rootID != "" {
			return fmt.Errorf("%w: book %s already has root account %s", apperrors.ErrValidation, acct.BookID, b.rootID)
		}
		b.rootID = acct.AccountID
	} else {
		parent, ok := h.accounts[acct.ParentAccountID]
		if !ok || parent.BookID != acct.BookID {
			return fmt.Errorf("%w: parent account %s in book %s", apperrors.ErrNotFound, acct.ParentAccountID, acct.BookID)
		}
		h.children[parent.AccountID] = append(h.children[parent.AccountID], acct.AccountID)
	}
	h.accounts[acct.AccountID] = acct
	return nil
}

// AddEntry records an amount, in the account's minor units, posted on date.
func (h *Host) AddEntry(accountID string, date domain.DateInt, amountMinor int64) error {
	if !date.Valid() {
		return fmt.Errorf("%w: entry date %d", apperrors.ErrValidation, int(date))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.accounts[accountID]; !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	h.entries[accountID] = append(h.entries[accountID], entry{date: date, amountMinor: amountMinor})
	return nil
}

// AddEntryAmount records a decimal amount, rounded half to even to the
// account currency's minor units.
func (h *Host) AddEntryAmount(accountID string, date domain.DateInt, amount decimal.Decimal) error {
	h.mu.RLock()
	acct, ok := h.accounts[accountID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return h.AddEntry(accountID, date, services.ToMinorUnits(amount, acct.DecimalPlaces()))
}

// AddSecurity stores a copy of sec with its snapshots sorted by date.
// Snapshots sharing a date keep their given order.
func (h *Host) AddSecurity(sec domain.Security) error {
	if sec.SecurityID == "" {
		return fmt.Errorf("%w: security id is required", apperrors.ErrValidation)
	}
	stored := sec.Clone()
	sort.SliceStable(stored.Snapshots, func(i, j int) bool {
		return stored.Snapshots[i].DateInt < stored.Snapshots[j].DateInt
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	h.securities[sec.SecurityID] = stored
	return nil
}

// LoadBook returns a fresh copy of the book's account tree.
func (h *Host) LoadBook(ctx context.Context, bookID string) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	b, ok := h.books[bookID]
	if !ok {
		return nil, fmt.Errorf("%w: book %s", apperrors.ErrNotFound, bookID)
	}
	result := &domain.Book{BookID: bookID, Name: b.name}
	if b.rootID != "" {
		result.Root = h.buildTree(b.rootID)
	}
	return result, nil
}

func (h *Host) buildTree(accountID string) *domain.Account {
	acct := h.accounts[accountID]
	for _, childID := range h.children[accountID] {
		acct.SubAccounts = append(acct.SubAccounts, h.buildTree(childID))
	}
	return &acct
}

// CurrentBalance sums entries posted up to today.
func (h *Host) CurrentBalance(ctx context.Context, account *domain.Account, recursive bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.accounts[account.AccountID]; !ok {
		return 0, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	today := h.today()
	ids := []string{account.AccountID}
	if recursive {
		ids = h.subtree(account.AccountID)
	}
	var total int64
	for _, id := range ids {
		total += h.balanceAsOf(id, today)
	}
	return total, nil
}

// BalancesAsOfDates returns the account's own balance at the end of each date.
func (h *Host) BalancesAsOfDates(ctx context.Context, _ *domain.Book, account *domain.Account, dates []domain.DateInt) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.accounts[account.AccountID]; !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	balances := make([]int64, len(dates))
	for i, date := range dates {
		balances[i] = h.balanceAsOf(account.AccountID, date)
	}
	return balances, nil
}

func (h *Host) balanceAsOf(accountID string, date domain.DateInt) int64 {
	var total int64
	for _, e := range h.entries[accountID] {
		if e.date <= date {
			total += e.amountMinor
		}
	}
	return total
}

// subtree lists accountID and all of its descendants.
func (h *Host) subtree(accountID string) []string {
	ids := []string{accountID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, h.children[ids[i]]...)
	}
	return ids
}

// FindSecurityByID returns a copy the caller may mutate freely.
func (h *Host) FindSecurityByID(ctx context.Context, securityID string) (*domain.Security, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	sec, ok := h.securities[securityID]
	if !ok {
		return nil, fmt.Errorf("%w: security %s", apperrors.ErrNotFound, securityID)
	}
	clone := sec.Clone()
	return &clone, nil
}

// UpdateUserRate stores the cached rate of a security.
func (h *Host) UpdateUserRate(ctx context.Context, securityID string, rate float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	sec, ok := h.securities[securityID]
	if !ok {
		return fmt.Errorf("%w: security %s", apperrors.ErrNotFound, securityID)
	}
	sec.UserRate = rate
	h.securities[securityID] = sec
	return nil
}
