// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the keeper command-line application.
//
// It wires configuration, local storage, the remote object store and the
// backup service into a cobra command tree, and runs the automatic backup
// daemon with its status endpoint.
package client
