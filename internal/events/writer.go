// Package events announces catalog price changes to downstream
// consumers (product subscriptions, notifications) through a
// transactional outbox relayed onto a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/purchase4less/price-scraper/internal/catalog"
	"github.com/purchase4less/price-scraper/internal/seeder"
)

type EventType string

const (
	// EventTypePriceUpdated is published for every product in a
	// finished reseed batch.
	EventTypePriceUpdated EventType = "PRICE_UPDATED"

	// StreamPriceUpdates is the Redis stream the relay delivers to.
	StreamPriceUpdates = "stream:price_updates"
)

// PriceUpdatedPayload carries one store's fresh price for a catalog
// product.
type PriceUpdatedPayload struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	Timestamp  time.Time       `json:"timestamp"`
	Identifier string          `json:"identifier"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Store      string          `json:"store"`
}

// CatalogWriter persists a reseed batch together with its PRICE_UPDATED
// events: catalog rows and outbox rows commit in a single transaction,
// so a replaced catalog always has its events queued and a failed swap
// queues nothing. The relay picks the events up from the outbox, so a
// Redis outage never loses one.
type CatalogWriter struct {
	db     *catalog.DB
	store  *catalog.Store
	outbox *catalog.OutboxRepository
	logger *slog.Logger
}

func NewCatalogWriter(db *catalog.DB, store *catalog.Store, logger *slog.Logger) *CatalogWriter {
	return &CatalogWriter{
		db:     db,
		store:  store,
		outbox: catalog.NewOutboxRepository(db),
		logger: logger.With("component", "catalog_writer"),
	}
}

// Replace swaps the stored catalog and queues one PRICE_UPDATED event
// per entry in the same transaction.
func (w *CatalogWriter) Replace(ctx context.Context, entries []seeder.Entry) error {
	events := make([]*catalog.OutboxEvent, 0, len(entries))
	for _, entry := range entries {
		event, err := priceUpdatedEvent(entry)
		if err != nil {
			return err
		}
		events = append(events, event)
	}

	err := w.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := w.store.ReplaceTx(ctx, tx, entries); err != nil {
			return err
		}
		for _, event := range events {
			if err := w.outbox.InsertWithTx(ctx, tx, event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.logger.Info("catalog replaced", "products", len(entries), "events", len(events))
	return nil
}

func priceUpdatedEvent(entry seeder.Entry) (*catalog.OutboxEvent, error) {
	payload := PriceUpdatedPayload{
		EventID:    uuid.New().String(),
		EventType:  string(EventTypePriceUpdated),
		Timestamp:  time.Now(),
		Identifier: entry.Identifier,
		Name:       entry.Product.Name,
		Brand:      entry.Product.Brand,
		ImageURL:   entry.Product.ImageURL,
		Price:      entry.Product.Price,
		Store:      string(entry.Product.Store),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return &catalog.OutboxEvent{
		AggregateType: "product",
		AggregateID:   entry.Identifier,
		EventType:     string(EventTypePriceUpdated),
		Payload:       data,
		TargetStream:  StreamPriceUpdates,
	}, nil
}
