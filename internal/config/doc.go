// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the configuration of the
// CommunityShare server and terminal client.
//
// Sources, from highest to lowest priority:
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetServerConfig] and [GetClientConfig] return the validated view each
// binary needs.
package config
