// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "community-share"
	testSignKey = "sign-key"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.UserID)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, token.SignedString, parsed.String())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   int64
		duration time.Duration
		key      string
	}{
		{name: "no issuer", userID: 1, duration: time.Hour, key: testSignKey},
		{name: "no user", issuer: testIssuer, duration: time.Hour, key: testSignKey},
		{name: "no duration", issuer: testIssuer, userID: 1, key: testSignKey},
		{name: "no key", issuer: testIssuer, userID: 1, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testIssuer, 1, time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "other-key", testIssuer)
	assert.Error(t, err, "wrong key")

	_, err = ValidateAndParseJWTToken(valid.SignedString, testSignKey, "other-issuer")
	assert.Error(t, err, "wrong issuer")

	_, err = ValidateAndParseJWTToken(expired.SignedString, testSignKey, testIssuer)
	assert.Error(t, err, "expired")

	_, err = ValidateAndParseJWTToken("garbage", testSignKey, testIssuer)
	assert.Error(t, err, "garbage")
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}

func TestAPIKeyExpiry(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)

	exp, err := APIKeyExpiry(token.SignedString)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	_, err = APIKeyExpiry("not-a-jwt")
	assert.Error(t, err)
}
