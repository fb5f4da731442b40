package billing

import "fmt"

// InvoiceCalculator defines the interface for computing invoice amounts.
type InvoiceCalculator interface {
	// Calculate returns the invoice amount in cents for the given parameters.
	Calculate(params InvoiceParams) (int64, error)
}

// InvoiceParams holds the inputs for invoice calculation.
type InvoiceParams struct {
	NightlyPriceCents int64
	Nights            int64
}

// StandardInvoiceCalculator implements the default nightly-rate invoicing.
type StandardInvoiceCalculator struct{}

// NewStandardInvoiceCalculator creates a new StandardInvoiceCalculator.
func NewStandardInvoiceCalculator() *StandardInvoiceCalculator {
	return &StandardInvoiceCalculator{}
}

// Calculate computes the invoice amount in cents: nightly price times the
// number of nights, where a same-day stay counts as one night.
func (c *StandardInvoiceCalculator) Calculate(params InvoiceParams) (int64, error) {
	if params.NightlyPriceCents <= 0 {
		return 0, fmt.Errorf("nightly price must be positive")
	}
	nights := params.Nights
	if nights < 1 {
		nights = 1
	}
	return params.NightlyPriceCents * nights, nil
}
