package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, "24.92", RoundCurrency(decimal.RequireFromString("24.916666")).String())
	assert.Equal(t, "0", RoundCurrency(decimal.Zero).String())

	rounded := RoundCurrencies([]decimal.Decimal{
		decimal.RequireFromString("1.005"),
		decimal.RequireFromString("177.606"),
	})
	assert.Equal(t, "1.01", rounded[0].String())
	assert.Equal(t, "177.61", rounded[1].String())
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("11")
	require.NoError(t, err)
	assert.Equal(t, 11, month)

	_, err = ParseMonth("12")
	assert.Error(t, err)

	_, err = ParseMonth("março")
	assert.Error(t, err)

	assert.Equal(t, "Mar", MonthName(2))
	assert.Equal(t, "", MonthName(-1))
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestJSONB_ValueAndScan(t *testing.T) {
	in := map[string][]string{"add_ons": {"api-access"}}

	value, err := JSONB{V: in}.Value()
	require.NoError(t, err)

	var out map[string][]string
	require.NoError(t, JSONB{V: &out}.Scan([]byte(value.(string))))
	assert.Equal(t, in, out)

	require.NoError(t, JSONB{V: &out}.Scan(nil))
	assert.Error(t, JSONB{V: &out}.Scan(42))
}

func TestPrettyJson(t *testing.T) {
	type syncResult struct {
		Quantity int    `json:"quantity"`
		Message  string `json:"message"`
	}

	assert.Equal(t,
		"{\n\t\"quantity\": 2,\n\t\"message\": \"ok\"\n}",
		PrettyJson(&syncResult{Quantity: 2, Message: "ok"}),
	)
	assert.Equal(t, "{\n\t\"quantity\": 2\n}", PrettyJson(map[string]int{"quantity": 2}))
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "não é json", PrettyJson([]byte("não é json")))
}
