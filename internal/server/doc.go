// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the keeper daemon's HTTP endpoint.
//
// The server serves until its context is cancelled (usually by SIGINT or
// SIGTERM through signal.NotifyContext in the caller) and then shuts down
// gracefully.
package server
