package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := NewOutboxEvent("rid", "membership", "m1", "membership_created", "company.membership.v1", map[string]string{"k": "v"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"k":"v"}`, string(event.Payload))
	assert.NoError(t, ValidateOutboxEvent(event))
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: OutboxStatusPending}

	tests := []struct {
		name   string
		mutate func(e *OutboxEvent)
	}{
		{"missing id", func(e *OutboxEvent) { e.ID = "" }},
		{"missing topic", func(e *OutboxEvent) { e.Topic = "" }},
		{"missing payload", func(e *OutboxEvent) { e.Payload = nil }},
		{"unknown status", func(e *OutboxEvent) { e.Status = "queued" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.Error(t, ValidateOutboxEvent(e))
		})
	}
}
