// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(messages []Message) []int64 {
	out := make([]int64, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}
	return out
}

func TestMergeMessages(t *testing.T) {
	tests := []struct {
		name    string
		fetched []Message
		local   []Message
		want    []int64
	}{
		{
			name:    "poll already contains the sent message",
			fetched: []Message{{ID: 1}, {ID: 2}, {ID: 3}},
			local:   []Message{{ID: 1}, {ID: 2}, {ID: 3}},
			want:    []int64{1, 2, 3},
		},
		{
			name:    "sent message not yet visible to the poll",
			fetched: []Message{{ID: 1}, {ID: 2}},
			local:   []Message{{ID: 1}, {ID: 2}, {ID: 3}},
			want:    []int64{1, 2, 3},
		},
		{
			name:    "poll brings messages from the other participant",
			fetched: []Message{{ID: 1}, {ID: 4}},
			local:   []Message{{ID: 1}, {ID: 3}},
			want:    []int64{1, 4, 3},
		},
		{
			name:    "unconfirmed local messages are dropped",
			fetched: []Message{{ID: 1}},
			local:   []Message{{ID: 0, Content: "draft"}},
			want:    []int64{1},
		},
		{
			name:    "duplicates inside the poll collapse",
			fetched: []Message{{ID: 1}, {ID: 1}},
			want:    []int64{1},
		},
		{
			name: "both empty",
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(MergeMessages(tt.fetched, tt.local)))
		})
	}
}

func TestMergeMessages_FetchedIsCanonical(t *testing.T) {
	fetched := []Message{{ID: 1, Viewed: true, Content: "server"}}
	local := []Message{{ID: 1, Viewed: false, Content: "local"}}

	merged := MergeMessages(fetched, local)

	assert.Equal(t, fetched, merged)
}

func TestAppendMessage(t *testing.T) {
	messages := []Message{{ID: 1}}

	messages, ok := AppendMessage(messages, Message{ID: 2})
	assert.True(t, ok)

	messages, ok = AppendMessage(messages, Message{ID: 2})
	assert.False(t, ok)

	assert.Equal(t, []int64{1, 2}, ids(messages))
}
