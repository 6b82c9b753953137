package redisx

import "time"

const (
	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Buy double-tap guard: buytap:{user_id}:{plan_id}
	KeyBuyTap = "buytap:%s:%s"
)

var (
	TTLDedup  = 48 * time.Hour
	TTLBuyTap = 10 * time.Second
)
