// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (connect, ping, shutdown).
const DefaultTimeout = 10 * time.Second

// SeedTimeout bounds startup data seeding such as the product catalog.
const SeedTimeout = 30 * time.Second
