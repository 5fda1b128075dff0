package cart

import (
	"context"

	"agrilink-fulfillment/internal/domain"
)

// cartStorage defines the persistence operations required by the cart manager.
// Satisfied by repository.CartRepo (Postgres) and store.CartStore (memory).
type cartStorage interface {
	Lines(ctx context.Context, userID string) ([]domain.CartRef, error)
	Line(ctx context.Context, userID, productID string) (domain.CartRef, error)
	Upsert(ctx context.Context, userID, productID string, quantity int) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

// productCatalog is the read side of the catalog used to rehydrate cart lines.
type productCatalog interface {
	Get(id string) (domain.Product, bool)
}
