package cart

import (
	"context"
	"errors"
	"time"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// Manager coordinates cart mutations and builds checkout snapshots.
type Manager struct {
	storage          cartStorage
	catalog          productCatalog
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewManager creates and configures a cart Manager.
func NewManager(storage cartStorage, catalog productCatalog, timeout time.Duration, logger logx.Logger) *Manager {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Manager{storage: storage, catalog: catalog, operationTimeout: timeout, logger: logger}
}

func (m *Manager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.operationTimeout)
}

// Add puts a product into the cart, merging quantities when the product is
// already present. The first add must meet the product's minimum order;
// merges are unrestricted.
func (m *Manager) Add(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" || quantity < 1 {
		return apperr.ErrInvalid
	}
	p, ok := m.catalog.Get(productID)
	if !ok {
		return apperr.ErrProductNotFound
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	existing, err := m.storage.Line(ctx, userID, productID)
	switch {
	case err == nil:
		return m.storage.Upsert(ctx, userID, productID, existing.Quantity+quantity)
	case !errors.Is(err, apperr.ErrNotFound):
		return err
	}
	if quantity < p.MinimumOrder {
		return apperr.ErrInvalid
	}
	return m.storage.Upsert(ctx, userID, productID, quantity)
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line.
func (m *Manager) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return apperr.ErrInvalid
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if quantity <= 0 {
		return m.storage.Remove(ctx, userID, productID)
	}

	if _, err := m.storage.Line(ctx, userID, productID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrProductNotFound
		}
		return err
	}
	return m.storage.Upsert(ctx, userID, productID, quantity)
}

// Remove deletes a line from the cart.
func (m *Manager) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return apperr.ErrInvalid
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return m.storage.Remove(ctx, userID, productID)
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.ErrInvalid
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return m.storage.Clear(ctx, userID)
}

// Snapshot returns the cart lines with totals computed at call time, never
// cached. Lines whose product has left the catalog are dropped with a warning.
func (m *Manager) Snapshot(ctx context.Context, userID string) (domain.CartSnapshot, error) {
	if userID == "" {
		return domain.CartSnapshot{}, apperr.ErrInvalid
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	refs, err := m.storage.Lines(ctx, userID)
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	snap := domain.CartSnapshot{Lines: make([]domain.CartLine, 0, len(refs))}
	for _, ref := range refs {
		p, ok := m.catalog.Get(ref.ProductID)
		if !ok {
			m.logger.Warn("cart line dropped: product gone from catalog",
				logx.String("user_id", userID),
				logx.String("product_id", ref.ProductID),
			)
			continue
		}
		line := domain.CartLine{Product: p, Quantity: ref.Quantity}
		snap.Lines = append(snap.Lines, line)
		snap.TotalAmount += line.Subtotal()
		snap.TotalWeight += line.Weight()
	}
	return snap, nil
}
