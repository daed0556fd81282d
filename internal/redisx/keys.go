package redisx

import "time"

const (
	// Idempotent sale: idem:sale:record:{idempotency_key} -> receipt JSON,
	// or ClaimPending while the first request is still running.
	KeyIdemSale = "idem:sale:record:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// ClaimPending is the value Claim stores.
	ClaimPending = "1"
)

var (
	TTLIdempotency = 24 * time.Hour
	TTLDedup       = 48 * time.Hour
)
