package repository

import (
	"context"
	"encoding/json"

	"github.com/rafaelleal24/sales/internal/adapters/outbox"
	"github.com/rafaelleal24/sales/internal/core/domain"
)

// insertEvents writes events to the outbox using ctx, so they commit with the
// surrounding session when there is one.
func insertEvents(ctx context.Context, repo outbox.Repository, events ...domain.Event) error {
	for _, event := range events {
		eventData, err := json.Marshal(event)
		if err != nil {
			return err
		}
		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := repo.Insert(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
