// Package lifecycle holds shared settings for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a shutdown hook may take.
const DefaultTimeout = 10 * time.Second
