package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/domain"
	billingDomain "github.com/bagabo/hotel-booking/internal/domain/billing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingDTO is the response representation of a billing record.
type BillingDTO struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	GeneratedAt time.Time `json:"generated_at"`
}

// BillingService serves billing reads and generates invoice records when a
// booking is confirmed. Generation is idempotent per booking.
type BillingService struct {
	billings   billingDomain.BillingRepository
	calculator billingDomain.InvoiceCalculator
	logger     *zap.Logger
}

// NewBillingService creates a new BillingService.
func NewBillingService(billings billingDomain.BillingRepository, calculator billingDomain.InvoiceCalculator, logger *zap.Logger) *BillingService {
	if calculator == nil {
		calculator = billingDomain.NewStandardInvoiceCalculator()
	}
	return &BillingService{billings: billings, calculator: calculator, logger: logger}
}

// GenerateForBooking creates the billing record for a confirmed booking. A
// booking that already has one is left untouched.
func (s *BillingService) GenerateForBooking(ctx context.Context, bookingID, userID uuid.UUID, nightlyPriceCents int64, nights int64) (*BillingDTO, error) {
	if existing, err := s.billings.FindByBookingID(ctx, bookingID); err == nil {
		result := toBillingDTO(existing)
		return &result, nil
	} else if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing billing: %w", err)
	}

	amount, err := s.calculator.Calculate(billingDomain.InvoiceParams{
		NightlyPriceCents: nightlyPriceCents,
		Nights:            nights,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate invoice: %w", err)
	}

	b, err := billingDomain.NewBilling(bookingID, userID, amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.billings.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save billing: %w", err)
	}

	s.logger.Info("billing generated",
		zap.String("billing_id", b.ID().String()),
		zap.String("booking_id", bookingID.String()),
		zap.Int64("amount_cents", amount),
	)

	result := toBillingDTO(b)
	return &result, nil
}

// GetBilling retrieves a billing record by ID.
func (s *BillingService) GetBilling(ctx context.Context, billingID uuid.UUID) (*BillingDTO, error) {
	b, err := s.billings.FindByID(ctx, billingID)
	if err != nil {
		return nil, err
	}
	result := toBillingDTO(b)
	return &result, nil
}

// GetBillingByBooking retrieves the billing record of a booking.
func (s *BillingService) GetBillingByBooking(ctx context.Context, bookingID uuid.UUID) (*BillingDTO, error) {
	b, err := s.billings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBillingDTO(b)
	return &result, nil
}

// GetUserBillings lists a user's billing records. No records is an empty
// list, not an error.
func (s *BillingService) GetUserBillings(ctx context.Context, userID uuid.UUID) ([]BillingDTO, error) {
	bs, err := s.billings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user billings: %w", err)
	}
	return toBillingDTOs(bs), nil
}

// ListAllBillings returns every billing record (admin).
func (s *BillingService) ListAllBillings(ctx context.Context) ([]BillingDTO, error) {
	bs, err := s.billings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list billings: %w", err)
	}
	return toBillingDTOs(bs), nil
}

func toBillingDTO(b *billingDomain.Billing) BillingDTO {
	return BillingDTO{
		ID:          b.ID(),
		BookingID:   b.BookingID(),
		UserID:      b.UserID(),
		AmountCents: b.AmountCents(),
		GeneratedAt: b.GeneratedAt(),
	}
}

func toBillingDTOs(bs []*billingDomain.Billing) []BillingDTO {
	dtos := make([]BillingDTO, len(bs))
	for i, b := range bs {
		dtos[i] = toBillingDTO(b)
	}
	return dtos
}
