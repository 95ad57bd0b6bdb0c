// Package events publishes rental lifecycle events on an in-process
// watermill pub/sub after the corresponding action has committed.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

const (
	TopicRentalBooked    = "rental.booked"
	TopicRentalReturned  = "rental.returned"
	TopicPaymentRecorded = "payment.recorded"
)

// Topics lists every lifecycle topic.
var Topics = []string{TopicRentalBooked, TopicRentalReturned, TopicPaymentRecorded}

const metadataRequestID = "request_id"

type RentalBooked struct {
	RentalID    int64     `json:"rental_id"`
	CustomerID  int64     `json:"customer_id"`
	VehicleID   int64     `json:"vehicle_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalAmount float64   `json:"total_amount"`
}

type RentalReturned struct {
	RentalID   int64     `json:"rental_id"`
	VehicleID  int64     `json:"vehicle_id"`
	ReturnDate time.Time `json:"return_date"`
	DaysLate   int       `json:"days_late"`
	FineAmount float64   `json:"fine_amount"`
}

type PaymentRecorded struct {
	PaymentID int64   `json:"payment_id"`
	RentalID  int64   `json:"rental_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// Publisher is what the services depend on.
type Publisher interface {
	Publish(ctx context.Context, requestID, topic string, payload any) error
}

type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, NewZapLoggerAdapter(logger)),
	}
}

// Publish marshals payload as JSON. A nil bus drops the event.
func (b *Bus) Publish(ctx context.Context, requestID, topic string, payload any) error {
	if b == nil || b.pubsub == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	if requestID != "" {
		msg.Metadata.Set(metadataRequestID, requestID)
	}
	return b.pubsub.Publish(topic, msg)
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	if b == nil || b.pubsub == nil {
		return nil
	}
	return b.pubsub.Close()
}
