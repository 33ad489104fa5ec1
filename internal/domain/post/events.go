package post

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	EventTypePostCreated     = "post.created"
	EventTypePostUpdated     = "post.updated"
	EventTypePostPublished   = "post.published"
	EventTypePostUnpublished = "post.unpublished"
	EventTypePostDeleted     = "post.deleted"
)

// EventTypes lists every post lifecycle event
var EventTypes = []string{
	EventTypePostCreated,
	EventTypePostUpdated,
	EventTypePostPublished,
	EventTypePostUnpublished,
	EventTypePostDeleted,
}

// PostEvent is raised on every post lifecycle transition. Slug is empty for
// deletions.
type PostEvent struct {
	id         string
	eventType  string
	occurredAt time.Time
	PostID     int64
	Slug       string
}

// NewPostEvent creates a lifecycle event of the given type
func NewPostEvent(eventType string, postID int64, slug string) *PostEvent {
	return &PostEvent{
		id:         uuid.NewString(),
		eventType:  eventType,
		occurredAt: time.Now().UTC(),
		PostID:     postID,
		Slug:       slug,
	}
}

func (e *PostEvent) EventID() string       { return e.id }
func (e *PostEvent) EventType() string     { return e.eventType }
func (e *PostEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID is the post id in decimal
func (e *PostEvent) AggregateID() string { return strconv.FormatInt(e.PostID, 10) }

func NewPostCreatedEvent(p *Post) *PostEvent {
	return NewPostEvent(EventTypePostCreated, p.ID(), p.Slug().String())
}

func NewPostUpdatedEvent(p *Post) *PostEvent {
	return NewPostEvent(EventTypePostUpdated, p.ID(), p.Slug().String())
}

// NewPublicationEvent picks published or unpublished from the post's state
func NewPublicationEvent(p *Post) *PostEvent {
	if p.IsPublished() {
		return NewPostEvent(EventTypePostPublished, p.ID(), p.Slug().String())
	}
	return NewPostEvent(EventTypePostUnpublished, p.ID(), p.Slug().String())
}

func NewPostDeletedEvent(id int64) *PostEvent {
	return NewPostEvent(EventTypePostDeleted, id, "")
}
