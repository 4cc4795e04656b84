package catalog

import "time"

// Shared defaults used by both the service and CLI binaries.
const (
	DefaultServerAddr    = "127.0.0.1:4600"
	DefaultFetchTimeout  = 10 * time.Second
	DefaultStaticLatency = 300 * time.Millisecond
)
