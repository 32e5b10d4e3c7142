// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler implements the HTTP surface of the keeper daemon.
//
// While automatic backups run in the background, the daemon serves:
//
//	GET  /status         last automatic run and cached-PIN state
//	GET  /api/backups    remote backups, newest first
//	GET  /api/history    local journal entries
//	POST /api/backup     trigger an automatic run now
//	GET  /version        build information
//	GET  /metrics        prometheus metrics
//
// Every request gets a request ID and an access log line.
package handler
