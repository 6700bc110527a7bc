// Package queue defines message payloads exchanged over the message broker.
package queue

// SearchQueueName is the durable queue search events are published to.
const SearchQueueName = "catalog.search"

// SearchPerformedEvent is published when a visitor searches the movie list.
// It carries enough to analyse popular searches without touching the
// catalog database.
type SearchPerformedEvent struct {
	Query      string `json:"query"`
	Order      string `json:"order"`
	Page       int    `json:"page"`
	Results    int    `json:"results"`
	RequestID  string `json:"request_id,omitempty"`
	SearchedAt string `json:"searched_at"`
}
