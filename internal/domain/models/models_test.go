package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk/internal/domain"
)

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{
		"Cash":   MethodCash,
		"upi":    MethodUPI,
		" paytm": MethodPayTM,
		"CARD":   MethodCard,
	}
	for in, want := range cases {
		got, err := ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParsePaymentMethod("cheque")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.True(t, errors.Is(err, domain.ErrInvalidMethod))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("bike")
	require.NoError(t, err)
	assert.Equal(t, CategoryBike, c)

	_, err = ParseCategory("Truck")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestParsePaymentStatus(t *testing.T) {
	s, err := ParsePaymentStatus("Paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, s)

	_, err = ParsePaymentStatus("Refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestRentalOpenAndAmountDue(t *testing.T) {
	r := Rental{TotalAmount: 1500, FineAmount: 600, PaymentStatus: PaymentPending}
	assert.True(t, r.IsOpen())
	assert.False(t, r.IsPaid())
	assert.Equal(t, 2100.0, r.AmountDue())

	ret := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	r.ActualReturn = &ret
	assert.False(t, r.IsOpen())
}

func TestRentalJSONUsesCivilDates(t *testing.T) {
	returned := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	rt := Rental{
		ID:            7,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		ActualReturn:  &returned,
		TotalAmount:   1500,
		FineAmount:    600,
		PaymentStatus: PaymentPending,
	}

	var got map[string]any
	b, err := json.Marshal(rt)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2024-01-01", got["start_date"])
	assert.Equal(t, "2024-01-03", got["end_date"])
	assert.Equal(t, "2024-01-06", got["actual_return"])

	rt.ActualReturn = nil
	b, err = json.Marshal(PendingRental{Rental: rt, AmountDue: 1500})
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2024-01-01", got["start_date"])
	assert.Equal(t, 1500.0, got["amount_due"])
	assert.NotContains(t, got, "actual_return")
}

func TestPaymentJSONUsesCivilDate(t *testing.T) {
	p := Payment{ID: 3, RentalID: 7, Amount: 2100, PaymentDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Method: MethodUPI}

	var got map[string]any
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2024-01-06", got["payment_date"])
	assert.Equal(t, "UPI", got["method"])
	assert.Equal(t, 2100.0, got["amount"])
}
