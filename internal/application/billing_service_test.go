package application

import (
	"context"
	"testing"

	"github.com/bagabo/hotel-booking/internal/domain"
	billingDomain "github.com/bagabo/hotel-booking/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memBillingRepo struct {
	byID      map[uuid.UUID]*billingDomain.Billing
	byBooking map[uuid.UUID]*billingDomain.Billing
}

func newMemBillingRepo() *memBillingRepo {
	return &memBillingRepo{
		byID:      make(map[uuid.UUID]*billingDomain.Billing),
		byBooking: make(map[uuid.UUID]*billingDomain.Billing),
	}
}

func (r *memBillingRepo) FindByID(_ context.Context, id uuid.UUID) (*billingDomain.Billing, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("Billing", id.String())
	}
	return b, nil
}

func (r *memBillingRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*billingDomain.Billing, error) {
	b, ok := r.byBooking[bookingID]
	if !ok {
		return nil, domain.NewNotFoundError("Billing", bookingID.String())
	}
	return b, nil
}

func (r *memBillingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*billingDomain.Billing, error) {
	out := []*billingDomain.Billing{}
	for _, b := range r.byID {
		if b.UserID() == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBillingRepo) ListAll(_ context.Context) ([]*billingDomain.Billing, error) {
	out := []*billingDomain.Billing{}
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBillingRepo) Save(_ context.Context, b *billingDomain.Billing) error {
	r.byID[b.ID()] = b
	r.byBooking[b.BookingID()] = b
	return nil
}

func TestGenerateForBooking_ComputesAmount(t *testing.T) {
	svc := NewBillingService(newMemBillingRepo(), nil, zap.NewNop())
	bookingID := uuid.New()
	userID := uuid.New()

	dto, err := svc.GenerateForBooking(context.Background(), bookingID, userID, 50_00, 3)
	require.NoError(t, err)

	assert.Equal(t, bookingID, dto.BookingID)
	assert.Equal(t, userID, dto.UserID)
	assert.Equal(t, int64(150_00), dto.AmountCents)
}

func TestGenerateForBooking_Idempotent(t *testing.T) {
	svc := NewBillingService(newMemBillingRepo(), nil, zap.NewNop())
	bookingID := uuid.New()

	first, err := svc.GenerateForBooking(context.Background(), bookingID, uuid.New(), 80_00, 2)
	require.NoError(t, err)

	second, err := svc.GenerateForBooking(context.Background(), bookingID, uuid.New(), 999_00, 9)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "a booking gets at most one billing record")
	assert.Equal(t, first.AmountCents, second.AmountCents)

	all, err := svc.ListAllBillings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGenerateForBooking_SameDayStay(t *testing.T) {
	svc := NewBillingService(newMemBillingRepo(), nil, zap.NewNop())

	dto, err := svc.GenerateForBooking(context.Background(), uuid.New(), uuid.New(), 120_00, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(120_00), dto.AmountCents, "a same-day stay bills one night")
}

func TestGetUserBillings_Empty(t *testing.T) {
	svc := NewBillingService(newMemBillingRepo(), nil, zap.NewNop())

	result, err := svc.GetUserBillings(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}
