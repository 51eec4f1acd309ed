package dto

// AccountURI identifies an account within a book.
type AccountURI struct {
	BookID    string `uri:"bookID" binding:"required"`
	AccountID string `uri:"accountID" binding:"required"`
}

// SecurityURI identifies a security.
type SecurityURI struct {
	SecurityID string `uri:"securityID" binding:"required"`
}

// BalancesQuery lists the dates balances are requested for.
// Dates may be repeated (?date=a&date=b) or comma separated (?date=a,b).
type BalancesQuery struct {
	Dates []string `form:"date" binding:"required,min=1,dive,dateints"`
}

// SnapshotQuery selects the snapshot in effect on a date.
type SnapshotQuery struct {
	Date string `form:"date" binding:"required,dateint"`
}

// SubAccountQuery finds a sub account by name or by investment account number.
type SubAccountQuery struct {
	Name         string `form:"name" binding:"required_without=InvestNumber"`
	InvestNumber string `form:"investNumber" binding:"required_without=Name"`
}

// PriceQuery converts an exchange rate to a price.
type PriceQuery struct {
	Rate     float64 `form:"rate" binding:"required"`
	Currency string  `form:"currency" binding:"omitempty,len=3,alpha"`
}
