package domain

// AccountType defines the host category of an account.
type AccountType string

const (
	Asset       AccountType = "ASSET"
	Bank        AccountType = "BANK"
	CreditCard  AccountType = "CREDIT_CARD"
	Investment  AccountType = "INVESTMENT"
	SecurityAcc AccountType = "SECURITY"
	Liability   AccountType = "LIABILITY"
	Loan        AccountType = "LOAN"
	Expense     AccountType = "EXPENSE"
	Income      AccountType = "INCOME"
	Root        AccountType = "ROOT"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Bank, CreditCard, Investment, SecurityAcc, Liability, Loan, Expense, Income, Root:
		return true
	}
	return false
}

// Account is a node of the host's account tree.
// Only ASSET accounts include their descendants' balances.
type Account struct {
	AccountID           string      `json:"accountID"`
	BookID              string      `json:"bookID"`
	ParentAccountID     string      `json:"parentAccountID"` // empty for the book root
	Name                string      `json:"name"`
	InvestAccountNumber string      `json:"investAccountNumber"`
	AccountType         AccountType `json:"accountType"`
	Currency            Currency    `json:"currency"`
	SubAccounts         []*Account  `json:"-"`
}

// IsAsset reports whether balances of this account roll up its descendants.
func (a *Account) IsAsset() bool { return a.AccountType == Asset }

// DecimalPlaces returns the minor-unit digits of the account currency.
func (a *Account) DecimalPlaces() int { return a.Currency.DecimalPlaces }

// Book is the host's account book: a named tree of accounts.
type Book struct {
	BookID string   `json:"bookID"`
	Name   string   `json:"name"`
	Root   *Account `json:"-"`
}

// FindAccount searches the book tree for accountID.
func (b *Book) FindAccount(accountID string) (*Account, bool) {
	if b == nil || b.Root == nil {
		return nil, false
	}
	seen := make(map[*Account]bool)
	stack := []*Account{b.Root}
	for len(stack) > 0 {
		acct := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[acct] {
			continue
		}
		seen[acct] = true
		if acct.AccountID == accountID {
			return acct, true
		}
		stack = append(stack, acct.SubAccounts...)
	}
	return nil, false
}
