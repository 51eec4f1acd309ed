package domain

// Currency represents a currency of the host model.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // e.g. "USD"
	Symbol        string `json:"symbol"`        // e.g. "$"
	Name          string `json:"name"`          // e.g. "US Dollar"
	DecimalPlaces int    `json:"decimalPlaces"` // minor-unit digits, 0 to 4
}
