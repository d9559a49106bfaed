// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON REST API of the CommunityShare server.
//
// Every response body is an envelope {"data", "message", "apiKey"}. Failed
// requests carry only "message". Authentication, request tracing, access
// logging, rate limiting and request metrics are handled by middleware
// before requests reach the service layer.
package http
