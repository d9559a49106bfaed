// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResourceDescriptor identifies a REST resource served under BasePath.
// Resource clients and server route registration are both keyed by it.
type ResourceDescriptor struct {
	// Name is the singular resource name, e.g. "user".
	Name string

	// BasePath is the collection path, e.g. "/api/user".
	BasePath string
}

// NewResourceDescriptor builds the descriptor for name under /api.
func NewResourceDescriptor(name string) ResourceDescriptor {
	return ResourceDescriptor{Name: name, BasePath: "/api/" + name}
}

// Descriptors of every resource exposed by the API.
var (
	UserResource         = NewResourceDescriptor("user")
	InstitutionResource  = NewResourceDescriptor("institution")
	SearchResource       = NewResourceDescriptor("search")
	ConversationResource = NewResourceDescriptor("conversation")
	MessageResource      = NewResourceDescriptor("message")
)

// Envelope is the JSON wrapper of every API response.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	APIKey  string `json:"apiKey,omitempty"`
}

// Statistics are the aggregate counters served by /api/statistics.
type Statistics struct {
	Users              int64 `json:"n_users"`
	Educators          int64 `json:"n_educators"`
	CommunityPartners  int64 `json:"n_community_partners"`
	ActiveSearches     int64 `json:"n_active_searches"`
	Conversations      int64 `json:"n_conversations"`
	Messages           int64 `json:"n_messages"`
	InstitutionsListed int64 `json:"n_institutions"`
}

// Item is a record exchanged with the API and identified by a numeric id.
// A zero id means the record has not been created yet.
type Item interface {
	ItemID() int64
}
