package services

import (
	"context"

	"rentaldesk/internal/events"
	"rentaldesk/internal/utils"
)

// publish emits a lifecycle event after commit. Failures are logged only;
// the action itself has already succeeded.
func publish(ctx context.Context, pub events.Publisher, requestID, topic string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, requestID, topic, payload); err != nil {
		utils.LogFailure(requestID, "events", topic, err)
	}
}
