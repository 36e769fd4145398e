package models

// TripInput is the trip request captured from the planner form. It is
// validated at the HTTP boundary and immutable once submitted.
type TripInput struct {
	Destination string  `json:"destination" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1,max=30"`
	Interests   string  `json:"interests" binding:"required"`
	Budget      float64 `json:"budget" binding:"gte=0"`
	Currency    string  `json:"currency" binding:"required,oneof=IDR USD EUR JPY SGD MYR THB"`
}

// DefaultCurrency is preselected on the form.
const DefaultCurrency = "IDR"

// SupportedCurrencies lists the currencies the planner accepts, in the
// order the form presents them.
var SupportedCurrencies = []string{"IDR", "USD", "EUR", "JPY", "SGD", "MYR", "THB"}

// BudgetSliderConfig describes the budget slider range for one currency.
// The minimum is always 0.
type BudgetSliderConfig struct {
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// BudgetSliderConfigFor returns the slider range for a currency. Clients
// reset the slider to Default whenever the selected currency changes.
func BudgetSliderConfigFor(currency string) BudgetSliderConfig {
	switch currency {
	case "IDR":
		return BudgetSliderConfig{Max: 50000000, Step: 500000, Default: 5000000}
	case "JPY":
		return BudgetSliderConfig{Max: 500000, Step: 5000, Default: 50000}
	case "USD", "EUR", "SGD":
		return BudgetSliderConfig{Max: 5000, Step: 50, Default: 1000}
	case "MYR":
		return BudgetSliderConfig{Max: 10000, Step: 100, Default: 2000}
	case "THB":
		return BudgetSliderConfig{Max: 100000, Step: 1000, Default: 20000}
	default:
		return BudgetSliderConfig{Max: 10000, Step: 100, Default: 1000}
	}
}

// CurrencyOption is one entry of the currency selector payload.
type CurrencyOption struct {
	Code string `json:"code"`
	BudgetSliderConfig
}

// CurrencyOptions returns the selector payload for every supported currency.
func CurrencyOptions() []CurrencyOption {
	opts := make([]CurrencyOption, 0, len(SupportedCurrencies))
	for _, code := range SupportedCurrencies {
		opts = append(opts, CurrencyOption{Code: code, BudgetSliderConfig: BudgetSliderConfigFor(code)})
	}
	return opts
}
