package events

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// AuditLogger writes one log line per lifecycle event.
type AuditLogger struct {
	Bus    *Bus
	Logger *zap.Logger

	wg sync.WaitGroup
}

// Start subscribes to every topic. Consumers stop when ctx is cancelled or
// the bus is closed; Wait blocks until they have drained.
func (a *AuditLogger) Start(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("audit")

	for _, topic := range Topics {
		msgs, err := a.Bus.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		a.wg.Add(1)
		go func(topic string, msgs <-chan *message.Message) {
			defer a.wg.Done()
			for msg := range msgs {
				logger.Info("rental event",
					zap.String("topic", topic),
					zap.String("event_id", msg.UUID),
					zap.String("request_id", msg.Metadata.Get(metadataRequestID)),
					zap.ByteString("payload", msg.Payload),
				)
				msg.Ack()
			}
		}(topic, msgs)
	}
	return nil
}

func (a *AuditLogger) Wait() {
	a.wg.Wait()
}
