// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the daemon endpoint.
type Server interface {
	// Run serves requests and blocks until ctx is done or the listener
	// fails. A graceful shutdown is not reported as an error.
	Run(ctx context.Context) error

	// Shutdown stops the server, waiting for in-flight requests.
	Shutdown(ctx context.Context) error
}
