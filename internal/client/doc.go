// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

// Package client implements the command-line client application runtime.
//
// It dispatches subcommands (register, verify, resend, login, logout,
// whoami, status) onto the session service, validating input locally before
// any request leaves the process.
package client
