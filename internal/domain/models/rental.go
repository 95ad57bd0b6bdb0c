package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/utils"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	default:
		return "", domain.ValidationError{Field: "payment_status", Msg: fmt.Sprintf("%q is not one of Pending, Paid", s), Err: domain.ErrInvalidStatus}
	}
}

// Rental is open while ActualReturn is nil. PaymentStatus moves independently.
type Rental struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	VehicleID     int64         `json:"vehicle_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	ActualReturn  *time.Time    `json:"actual_return,omitempty"`
	TotalAmount   float64       `json:"total_amount"`
	FineAmount    float64       `json:"fine_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

func (r Rental) IsOpen() bool { return r.ActualReturn == nil }

func (r Rental) IsPaid() bool { return r.PaymentStatus == PaymentPaid }

// AmountDue is recomputed from the stored total and fine.
func (r Rental) AmountDue() float64 {
	return domain.AmountDue(r.TotalAmount, r.FineAmount)
}

// PendingRental is a Pending rental annotated with what settles it.
type PendingRental struct {
	Rental
	AmountDue float64 `json:"amount_due"`
}

// rentalJSON is the wire form; dates travel as YYYY-MM-DD.
type rentalJSON struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	VehicleID     int64         `json:"vehicle_id"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	ActualReturn  *string       `json:"actual_return,omitempty"`
	TotalAmount   float64       `json:"total_amount"`
	FineAmount    float64       `json:"fine_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

func (r Rental) wire() rentalJSON {
	out := rentalJSON{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		VehicleID:     r.VehicleID,
		StartDate:     utils.FormatDate(r.StartDate),
		EndDate:       utils.FormatDate(r.EndDate),
		TotalAmount:   r.TotalAmount,
		FineAmount:    r.FineAmount,
		PaymentStatus: r.PaymentStatus,
	}
	if r.ActualReturn != nil {
		d := utils.FormatDate(*r.ActualReturn)
		out.ActualReturn = &d
	}
	return out
}

func (r Rental) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// MarshalJSON is needed here because the embedded Rental's would otherwise
// be promoted and drop amount_due.
func (p PendingRental) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		rentalJSON
		AmountDue float64 `json:"amount_due"`
	}{p.Rental.wire(), p.AmountDue})
}
