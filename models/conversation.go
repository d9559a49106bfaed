// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Conversation is a message thread between two matched users. UserA and UserB
// are embedded snapshots returned by the server, not live references.
type Conversation struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	SearchID    int64     `json:"search_id,omitempty"`
	UserAID     int64     `json:"userA_id"`
	UserBID     int64     `json:"userB_id"`
	DateCreated time.Time `json:"date_created"`
	Active      bool      `json:"active"`
	Messages    []Message `json:"messages"`
	UserA       *User     `json:"userA,omitempty"`
	UserB       *User     `json:"userB,omitempty"`
}

// ItemID implements the resource item contract.
func (c Conversation) ItemID() int64 {
	return c.ID
}

// HasParticipant reports whether userID is one of the two participants.
func (c Conversation) HasParticipant(userID int64) bool {
	return userID != 0 && (c.UserAID == userID || c.UserBID == userID)
}

// OtherUser returns the participant that is not viewerID. The second result
// is false when viewerID does not take part in the conversation or the server
// did not embed the other user.
func (c Conversation) OtherUser(viewerID int64) (User, bool) {
	switch viewerID {
	case c.UserAID:
		if c.UserB == nil {
			return User{ID: c.UserBID}, false
		}
		return *c.UserB, true
	case c.UserBID:
		if c.UserA == nil {
			return User{ID: c.UserAID}, false
		}
		return *c.UserA, true
	default:
		return User{}, false
	}
}

// UnviewedFor returns the messages addressed to userID that have not been
// viewed yet.
func (c Conversation) UnviewedFor(userID int64) []Message {
	var out []Message
	for _, m := range c.Messages {
		if !m.Viewed && m.SenderUserID != userID {
			out = append(out, m)
		}
	}
	return out
}
