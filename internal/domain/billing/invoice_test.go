package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardInvoiceCalculator(t *testing.T) {
	calc := NewStandardInvoiceCalculator()

	tests := []struct {
		name   string
		params InvoiceParams
		want   int64
	}{
		{"three nights", InvoiceParams{NightlyPriceCents: 50_00, Nights: 3}, 150_00},
		{"single night", InvoiceParams{NightlyPriceCents: 120_00, Nights: 1}, 120_00},
		{"same-day stay counts as one night", InvoiceParams{NightlyPriceCents: 80_00, Nights: 0}, 80_00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStandardInvoiceCalculator_RejectsNonPositivePrice(t *testing.T) {
	calc := NewStandardInvoiceCalculator()

	_, err := calc.Calculate(InvoiceParams{NightlyPriceCents: 0, Nights: 2})
	require.Error(t, err)

	_, err = calc.Calculate(InvoiceParams{NightlyPriceCents: -10, Nights: 2})
	require.Error(t, err)
}
