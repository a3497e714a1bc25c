// Package lifecycle defines shared timeouts for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background workers.
const DefaultTimeout = 10 * time.Second
