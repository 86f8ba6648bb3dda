// Package api provides interfaces for dependency injection
package api

import (
	"context"
	"net/http"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves handler until ctx is canceled
	StartServer(ctx context.Context, handler http.Handler, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
