package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	payload := OrderCreatedPayload{
		OrderID: "o1", UserID: "u1", Username: "alice",
		ConfigID: "p1", ConfigName: "Basic", PriceCents: 999, Status: "pending",
	}
	ev := NewEnvelope(EventOrderCreated, "vpnshop-bot", "o1", payload)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, EventOrderCreated, ev.EventType)
	assert.Equal(t, 1, ev.EventVersion)
	assert.Equal(t, "vpnshop-bot", ev.Producer)
	assert.Equal(t, "o1", ev.CorrelationID)
	assert.False(t, ev.OccurredAt.IsZero())

	got, err := UnwrapPayload[OrderCreatedPayload](ev.Payload)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	ev := NewEnvelope(EventOrderStatusChanged, "svc", "o2",
		OrderStatusChangedPayload{OrderID: "o2", UserID: "u1", Username: "alice", Status: "paid:success"})

	b := MustMarshal(ev)
	var back Envelope
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, ev.EventID, back.EventID)

	p, err := UnwrapPayload[OrderStatusChangedPayload](back.Payload)
	require.NoError(t, err)
	assert.Equal(t, "paid:success", p.Status)
}

func TestUnwrapPayload_Invalid(t *testing.T) {
	_, err := UnwrapPayload[OrderCreatedPayload](json.RawMessage(`{bad`))
	assert.Error(t, err)
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, []byte("o1"), PartitionKey("o1"))
}
