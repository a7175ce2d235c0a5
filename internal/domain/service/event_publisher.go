package service

import (
	"context"
)

// DirectoryEventType names what happened in the directory.
type DirectoryEventType string

const (
	EventSubmissionCreated DirectoryEventType = "submission.created"
	EventInquiryCreated    DirectoryEventType = "inquiry.created"
	EventBusinessApproved  DirectoryEventType = "business.approved"
)

// DirectoryEvent is delivered to the notification worker.
type DirectoryEvent struct {
	RequestID  string             `json:"request_id,omitempty"` // For distributed tracing
	Type       DirectoryEventType `json:"type"`
	SubjectID  string             `json:"subject_id"`
	Title      string             `json:"title"`
	Summary    string             `json:"summary"`
	OccurredAt int64              `json:"occurred_at"` // Unix seconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDirectoryEvent publishes an event for async processing
	PublishDirectoryEvent(ctx context.Context, event *DirectoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
