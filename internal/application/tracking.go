package application

import (
	"context"

	"github.com/rs/zerolog"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

// SubtypeSelector picks the notification subtype of a tracked write from
// the initial values of the fields that changed. "" means no notification.
type SubtypeSelector func(event *entities.Event, initValues map[string]any) string

// NoSubtype is the default base selector.
func NoSubtype(*entities.Event, map[string]any) string { return "" }

// TrackSubtype selects published/unpublished when the write changed the
// published state and defers to the base selector otherwise.
func (s *EventService) TrackSubtype(event *entities.Event, initValues map[string]any) string {
	if event == nil {
		return ""
	}
	if _, ok := initValues[domain.FieldWebsitePublished]; ok {
		if event.WebsitePublished {
			return domain.SubtypeEventPublished
		}
		return domain.SubtypeEventUnpublished
	}
	return s.baseSubtype(event, initValues)
}

var _ output.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the service log. It is the notifier
// used when no Discord channel is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg entities.Notification) error {
	n.log.Info().
		Str("subtype", msg.Subtype).
		Uint("event_id", msg.EventID).
		Str("url", msg.EventURL).
		Msg("📣 event notification")
	return nil
}
