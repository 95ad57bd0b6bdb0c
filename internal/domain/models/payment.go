package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/utils"
)

type PaymentMethod string

const (
	MethodCash  PaymentMethod = "Cash"
	MethodUPI   PaymentMethod = "UPI"
	MethodPayTM PaymentMethod = "PayTM"
	MethodCard  PaymentMethod = "Card"
)

// PaymentMethods lists the accepted methods in form order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodUPI, MethodPayTM, MethodCard}

// ParsePaymentMethod matches case-insensitively and returns the canonical spelling.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	in := strings.TrimSpace(s)
	for _, m := range PaymentMethods {
		if strings.EqualFold(in, string(m)) {
			return m, nil
		}
	}
	return "", domain.ValidationError{Field: "method", Msg: fmt.Sprintf("%q is not one of Cash, UPI, PayTM, Card", s), Err: domain.ErrInvalidMethod}
}

type Payment struct {
	ID          int64         `json:"id"`
	RentalID    int64         `json:"rental_id"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `json:"payment_date"`
	Method      PaymentMethod `json:"method"`
}

func (p Payment) MarshalJSON() ([]byte, error) {
	type alias Payment
	return json.Marshal(struct {
		alias
		PaymentDate string `json:"payment_date"`
	}{alias(p), utils.FormatDate(p.PaymentDate)})
}
