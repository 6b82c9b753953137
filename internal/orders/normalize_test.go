package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecord_SnakeCase(t *testing.T) {
	rec := map[string]any{
		"user_id":        "u1",
		"config_id":      "p1",
		"config_name":    "Basic",
		"config_details": "details",
		"price":          999,
	}
	out := NormalizeRecord(rec)
	assert.Equal(t, "u1", out["userid"])
	assert.Equal(t, "p1", out["configid"])
	assert.Equal(t, "Basic", out["configname"])
	assert.Equal(t, "details", out["configdetails"])
	assert.Equal(t, 999, out["price"])

	// no aliased spelling survives
	for _, k := range []string{"user_id", "config_id", "config_name", "config_details"} {
		assert.NotContains(t, out, k)
	}
}

func TestNormalizeRecord_AlreadyCanonical(t *testing.T) {
	rec := map[string]any{"userid": "u1", "configid": "p1"}
	out := NormalizeRecord(rec)
	assert.Equal(t, rec, out)
}

func TestNormalizeRecord_CanonicalWins(t *testing.T) {
	rec := map[string]any{
		"user_id": "old",
		"userid":  "new",
	}
	out := NormalizeRecord(rec)
	assert.Equal(t, "new", out["userid"])
	assert.NotContains(t, out, "user_id")
	assert.Len(t, out, 1)
}

func TestNormalizeRecord_DoesNotMutateInput(t *testing.T) {
	rec := map[string]any{"user_id": "u1"}
	_ = NormalizeRecord(rec)
	assert.Equal(t, map[string]any{"user_id": "u1"}, rec)
}
