// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args and blocks until it
	// completes.
	Run(args []string) error
}
