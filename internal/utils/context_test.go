// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := GetUserIDFromContext(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = GetUserIDFromContext(WithUserID(context.Background(), 0))
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(context.WithValue(context.Background(), UserIDCtxKey, "42"))
	assert.False(t, ok)
}

func TestTraceIDContext(t *testing.T) {
	assert.Empty(t, GetTraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", GetTraceIDFromContext(WithTraceID(context.Background(), "abc")))
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
