// Package model holds the display-ready view models handed to templates
// and JSON responses. Nothing here is persisted by this service.
package model

// Actor is one entry of the actor index.
type Actor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ActorCredit is a movie an actor appeared in, with the character played.
type ActorCredit struct {
	Title  string `json:"title"`
	ID     int    `json:"id"`
	Role   string `json:"role"`
	Rating int    `json:"rating"`
}

// ActorDetail is the actor page. Name is empty when the actor is unknown
// or has no credits.
type ActorDetail struct {
	Name   string        `json:"actor"`
	Movies []ActorCredit `json:"movies"`
}
