// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent by the terminal client on every request.
const UserAgent = "community-share-client"

// HTTPClient embeds *resty.Client preconfigured for the JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with JSON Accept and
// User-Agent headers set.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
