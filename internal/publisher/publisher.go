// Package publisher contains interface of domain events publisher.
package publisher

import (
	"context"
	"time"
)

//go:generate mockgen -destination=./mock/publisher.go -package=mock -source=publisher.go

// Subject is an event kind.
type Subject string

const (
	// PostCreated ...
	PostCreated Subject = "post.created"
	// PostDeleted ...
	PostDeleted Subject = "post.deleted"
	// CommentCreated ...
	CommentCreated Subject = "comment.created"
	// CommentDeleted ...
	CommentDeleted Subject = "comment.deleted"
	// LikeToggled ...
	LikeToggled Subject = "like.toggled"
	// FollowToggled ...
	FollowToggled Subject = "follow.toggled"
)

// Event describes a finished mutation.
type Event struct {
	Subject   Subject   `json:"-"`
	ActorID   string    `json:"actorId"`
	TargetID  string    `json:"targetId"`
	PostID    string    `json:"postId,omitempty"`
	Active    *bool     `json:"active,omitempty"`
	Count     *uint32   `json:"count,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher delivers events to subscribers. Delivery is best-effort.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop is a publisher which drops events.
type Noop struct{}

// Publish ...
func (Noop) Publish(_ context.Context, _ Event) error {
	return nil
}
