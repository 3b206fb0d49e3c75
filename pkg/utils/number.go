package utils

import "github.com/shopspring/decimal"

// RoundCurrency arredonda para centavos. Usado apenas na camada de resposta,
// os cálculos internos trabalham com precisão total.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

func RoundCurrencies(values []decimal.Decimal) []decimal.Decimal {
	rounded := make([]decimal.Decimal, len(values))
	for i, v := range values {
		rounded[i] = RoundCurrency(v)
	}
	return rounded
}
