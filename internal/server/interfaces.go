// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the process-level lifecycle of the HTTP transport.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then
	// drains in-flight requests before returning.
	RunServer()

	// Shutdown stops accepting connections and waits, up to a fixed drain
	// period, for in-flight requests.
	Shutdown()
}
