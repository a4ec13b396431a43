// Package constants defines application-wide constants to avoid magic numbers
package constants

import "time"

// Network and Port Constants
const (
	// DefaultServerPort is the default port for the pdbctl API server
	DefaultServerPort = 8421

	// DefaultServerHost is the default bind address for the pdbctl API server
	DefaultServerHost = "localhost"
)

// Server Timeouts
const (
	// DefaultServerReadTimeout is the default HTTP read timeout
	DefaultServerReadTimeout = 30 * time.Second

	// DefaultServerWriteTimeout is the default HTTP write timeout
	DefaultServerWriteTimeout = 30 * time.Second

	// DefaultServerShutdownTimeout is how long to wait for graceful shutdown
	DefaultServerShutdownTimeout = 10 * time.Second
)
