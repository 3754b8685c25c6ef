// internal/events/registry.go
package events

import (
	"encoding/json"
	"fmt"
)

// EventFactory returns a zero value of a concrete event type.
type EventFactory func() Event

// Registry decodes persisted events back into their concrete types.
type Registry struct {
	factories map[string]EventFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]EventFactory)}
}

// Register associates an event type with its factory.
func (r *Registry) Register(eventType string, factory EventFactory) {
	r.factories[eventType] = factory
}

// Unmarshal decodes a raw event into its registered concrete type.
func (r *Registry) Unmarshal(raw RawEvent) (Event, error) {
	factory, ok := r.factories[raw.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", raw.EventType)
	}
	event := factory()
	if err := json.Unmarshal([]byte(raw.Payload), event); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", raw.EventType, err)
	}
	return event, nil
}

// DefaultRegistry knows every event type this module publishes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(EventImportStarted, func() Event { return &ImportStarted{} })
	r.Register(EventImportCompleted, func() Event { return &ImportCompleted{} })
	r.Register(EventSeriesSynced, func() Event { return &SeriesSynced{} })
	r.Register(EventSeriesSyncFailed, func() Event { return &SeriesSyncFailed{} })
	r.Register(EventSeasonIgnored, func() Event { return &SeasonIgnored{} })
	r.Register(EventSeasonSearchCompleted, func() Event { return &SeasonSearchCompleted{} })
	r.Register(EventEpisodeFileMoved, func() Event { return &EpisodeFileMoved{} })
	return r
}
