package kafka_test

import (
	"testing"

	"paytrack/internal/messaging/kafka"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "employee",
		AggregateID:   "Test Employee",
		EventType:     "salary_increased",
		Topic:         "payroll.salary.lifecycle.v1",
		Payload:       []byte(`{"employee_name":"Test Employee"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("accepts complete pending event", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))
	})

	t.Run("rejects missing id", func(t *testing.T) {
		event := validEvent()
		event.ID = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(event), "outbox id is required")
	})

	t.Run("rejects missing topic", func(t *testing.T) {
		event := validEvent()
		event.Topic = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(event), "outbox topic is required")
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		event := validEvent()
		event.Payload = nil
		assert.EqualError(t, kafka.ValidateOutboxEvent(event), "outbox payload is required")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		event := validEvent()
		event.Status = "queued"
		assert.EqualError(t, kafka.ValidateOutboxEvent(event), "invalid outbox status: queued")
	})
}
