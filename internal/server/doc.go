// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the CommunityShare HTTP server and its background
// workers until a termination signal arrives, then shuts both down
// gracefully.
package server
