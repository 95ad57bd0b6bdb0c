package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBusDeliversJSONPayload(t *testing.T) {
	bus := NewBus(zap.NewNop())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := bus.Subscribe(ctx, TopicPaymentRecorded)
	require.NoError(t, err)

	want := PaymentRecorded{PaymentID: 3, RentalID: 5, Amount: 2100, Method: "UPI"}
	require.NoError(t, bus.Publish(ctx, "req-1", TopicPaymentRecorded, want))

	select {
	case msg := <-msgs:
		var got PaymentRecorded
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, want, got)
		assert.Equal(t, "req-1", msg.Metadata.Get(metadataRequestID))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestNilBusPublishIsNoop(t *testing.T) {
	var bus *Bus
	assert.NoError(t, bus.Publish(context.Background(), "", TopicRentalBooked, RentalBooked{RentalID: 1}))
	assert.NoError(t, bus.Close())
}

func TestAuditLoggerLogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := NewBus(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	audit := &AuditLogger{Bus: bus, Logger: zap.New(core)}
	require.NoError(t, audit.Start(ctx))

	require.NoError(t, bus.Publish(ctx, "req-9", TopicRentalReturned, RentalReturned{RentalID: 5, DaysLate: 3, FineAmount: 600}))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("rental event").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := logs.FilterMessage("rental event").All()[0]
	assert.Equal(t, TopicRentalReturned, entry.ContextMap()["topic"])
	assert.Equal(t, "req-9", entry.ContextMap()["request_id"])

	cancel()
	require.NoError(t, bus.Close())
	audit.Wait()
}
