package models

import "testing"

func TestBudgetSliderConfigFor(t *testing.T) {
	cases := []struct {
		currency string
		want     BudgetSliderConfig
	}{
		{"IDR", BudgetSliderConfig{Max: 50000000, Step: 500000, Default: 5000000}},
		{"JPY", BudgetSliderConfig{Max: 500000, Step: 5000, Default: 50000}},
		{"USD", BudgetSliderConfig{Max: 5000, Step: 50, Default: 1000}},
		{"EUR", BudgetSliderConfig{Max: 5000, Step: 50, Default: 1000}},
		{"SGD", BudgetSliderConfig{Max: 5000, Step: 50, Default: 1000}},
		{"MYR", BudgetSliderConfig{Max: 10000, Step: 100, Default: 2000}},
		{"THB", BudgetSliderConfig{Max: 100000, Step: 1000, Default: 20000}},
		{"XXX", BudgetSliderConfig{Max: 10000, Step: 100, Default: 1000}},
	}
	for _, tc := range cases {
		t.Run(tc.currency, func(t *testing.T) {
			if got := BudgetSliderConfigFor(tc.currency); got != tc.want {
				t.Fatalf("BudgetSliderConfigFor(%q) = %+v, want %+v", tc.currency, got, tc.want)
			}
		})
	}
}

func TestCurrencyOptionsOrder(t *testing.T) {
	opts := CurrencyOptions()
	if len(opts) != len(SupportedCurrencies) {
		t.Fatalf("got %d options, want %d", len(opts), len(SupportedCurrencies))
	}
	for i, code := range SupportedCurrencies {
		if opts[i].Code != code {
			t.Fatalf("option %d = %q, want %q", i, opts[i].Code, code)
		}
		if opts[i].BudgetSliderConfig != BudgetSliderConfigFor(code) {
			t.Fatalf("option %q slider config mismatch", code)
		}
	}
	if opts[0].Code != DefaultCurrency {
		t.Fatalf("first option = %q, want the default currency %q", opts[0].Code, DefaultCurrency)
	}
}
