// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message belongs to exactly one conversation. From the client's side it is
// immutable once sent; only the receiver flips Viewed.
type Message struct {
	ID             int64     `json:"id,omitempty"`
	ConversationID int64     `json:"conversation_id"`
	SenderUserID   int64     `json:"sender_user_id"`
	Content        string    `json:"content"`
	Viewed         bool      `json:"viewed"`
	DateCreated    time.Time `json:"date_created"`

	// SenderUser is filled locally for display after a send.
	SenderUser *User `json:"sender_user,omitempty"`
}

// ItemID implements the resource item contract.
func (m Message) ItemID() int64 {
	return m.ID
}

// MergeMessages reconciles a freshly fetched message list with messages that
// were appended locally after a send.
//
// The fetched list is canonical for every id it contains and keeps the
// server order. Local messages whose id is missing from the fetched list are
// kept after it, in their local order. Messages without an id are dropped
// since they were never confirmed by the server. No id appears twice.
func MergeMessages(fetched, local []Message) []Message {
	merged := make([]Message, 0, len(fetched)+len(local))
	seen := make(map[int64]struct{}, len(fetched)+len(local))

	for _, m := range fetched {
		if _, dup := seen[m.ID]; dup && m.ID != 0 {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}

	for _, m := range local {
		if m.ID == 0 {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}

	return merged
}

// AppendMessage appends m unless a message with the same id is already
// present. It reports whether m was appended.
func AppendMessage(messages []Message, m Message) ([]Message, bool) {
	for _, existing := range messages {
		if existing.ID == m.ID && m.ID != 0 {
			return messages, false
		}
	}
	return append(messages, m), true
}
