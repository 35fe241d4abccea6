package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFlowBuilt     EventType = "flow_built"
	EventPageNavigated EventType = "page_navigated"
	EventFormPublished EventType = "form_published"
	EventResponseSaved EventType = "response_saved"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	FormID    string    `json:"form_id,omitempty"`
}

// FlowEvent summarizes a graph build.
type FlowEvent struct {
	EventBase
	Pages     int `json:"pages"`
	Orphans   int `json:"orphans"`
	Conflicts int `json:"conflicts"`
	Dangling  int `json:"dangling"`
}

// NavigationEvent records a fill-time page transition.
type NavigationEvent struct {
	EventBase
	FromPageID string `json:"from_page_id"`
	ToPageID   string `json:"to_page_id,omitempty"`
	Reason     string `json:"reason"`
}

// FormEvent records a change to a form or its responses.
type FormEvent struct {
	EventBase
	ResponseID string `json:"response_id,omitempty"`
}

// LifecycleHooks defines callbacks for observability.
type LifecycleHooks struct {
	OnFlowBuilt     func(context.Context, *FlowEvent)
	OnNavigate      func(context.Context, *NavigationEvent)
	OnFormPublished func(context.Context, *FormEvent)
	OnResponseSaved func(context.Context, *FormEvent)
}
