package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusWire(t *testing.T) {
	assert.Equal(t, "pending", Pending().Wire())
	assert.Equal(t, "paid:success", Paid("success").Wire())
	assert.Equal(t, "confirmed", Status{State: "confirmed"}.Wire())
	// without a sub-state there is no composite form to encode
	assert.Equal(t, "paid", Paid("").Wire())
}

func TestParseStatus(t *testing.T) {
	st := ParseStatus("pending")
	assert.Equal(t, StatePending, st.State)
	assert.Empty(t, st.PaymentState)
	assert.False(t, st.IsPaid())

	st = ParseStatus("paid:success")
	assert.Equal(t, StatePaid, st.State)
	assert.Equal(t, "success", st.PaymentState)
	assert.True(t, st.IsPaid())

	// operator free text round-trips untouched
	st = ParseStatus("awaiting customs clearance")
	assert.Equal(t, "awaiting customs clearance", st.State)
	assert.Equal(t, "awaiting customs clearance", st.Wire())

	// a bare "paid" carries no sub-state and is plain free text
	st = ParseStatus("paid")
	assert.Equal(t, StatePaid, st.State)
	assert.Empty(t, st.PaymentState)

	// a dangling prefix is free text too, not an empty payment result
	st = ParseStatus("paid:")
	assert.False(t, st.IsPaid())
	assert.Equal(t, "paid:", st.State)
}

func TestStatusRoundTrip(t *testing.T) {
	for _, raw := range []string{"pending", "paid", "paid:", "paid:success", "paid:manual-check", "confirmed", "cancelled by user"} {
		assert.Equal(t, raw, ParseStatus(raw).Wire())
	}
}
