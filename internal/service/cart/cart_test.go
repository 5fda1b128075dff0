package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/store"
)

func rice() domain.Product {
	return domain.Product{
		ID: "P1", Name: "Basmati Rice", Price: 80, Unit: "kg",
		FarmerID: "F1", MinimumOrder: 50, AvailableQuantity: 1000,
	}
}

func tomatoes() domain.Product {
	return domain.Product{
		ID: "P2", Name: "Fresh Tomatoes", Price: 25, Unit: "kg",
		FarmerID: "F1", MinimumOrder: 25, AvailableQuantity: 500,
	}
}

func newTestManager(t *testing.T) (*Manager, *store.CatalogStore) {
	t.Helper()
	catalog := store.NewCatalogStore()
	catalog.Insert(rice())
	catalog.Insert(tomatoes())
	return NewManager(store.NewCartStore(), catalog, time.Second, logx.Nop()), catalog
}

func TestManager_Add_NewLine(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.Add(ctx, "buyer-1", "P1", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := m.Snapshot(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 50 {
		t.Fatalf("expected one line of 50, got %+v", snap.Lines)
	}
	if snap.TotalAmount != 4000 {
		t.Fatalf("expected total 4000, got %v", snap.TotalAmount)
	}
	if snap.TotalWeight != 25 {
		t.Fatalf("expected weight 25kg (0.5 per unit), got %v", snap.TotalWeight)
	}
}

func TestManager_Add_MergesQuantities(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.Add(ctx, "buyer-1", "P1", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// merge below minimum is fine, the line already exists
	if err := m.Add(ctx, "buyer-1", "P1", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := m.Snapshot(ctx, "buyer-1")
	if snap.Lines[0].Quantity != 60 {
		t.Fatalf("expected merged quantity 60, got %d", snap.Lines[0].Quantity)
	}
}

func TestManager_Add_BelowMinimumOrderRejected(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	err := m.Add(context.Background(), "buyer-1", "P1", 10)
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestManager_Add_UnknownProduct(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	err := m.Add(context.Background(), "buyer-1", "ghost", 10)
	if !errors.Is(err, apperr.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestManager_Add_InvalidQuantity(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	if err := m.Add(context.Background(), "buyer-1", "P1", 0); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestManager_UpdateQuantity_Overwrites(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	_ = m.Add(ctx, "buyer-1", "P2", 25)
	if err := m.UpdateQuantity(ctx, "buyer-1", "P2", 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := m.Snapshot(ctx, "buyer-1")
	if snap.Lines[0].Quantity != 40 {
		t.Fatalf("expected 40, got %d", snap.Lines[0].Quantity)
	}
}

func TestManager_UpdateQuantity_ZeroRemoves(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	_ = m.Add(ctx, "buyer-1", "P2", 25)
	if err := m.UpdateQuantity(ctx, "buyer-1", "P2", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := m.Snapshot(ctx, "buyer-1")
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.Lines)
	}
}

func TestManager_UpdateQuantity_AbsentLine(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	err := m.UpdateQuantity(context.Background(), "buyer-1", "P1", 60)
	if !errors.Is(err, apperr.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	_ = m.Add(ctx, "buyer-1", "P1", 50)
	_ = m.Add(ctx, "buyer-1", "P2", 25)
	if err := m.Clear(ctx, "buyer-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := m.Snapshot(ctx, "buyer-1")
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.Lines)
	}
}

func TestManager_Snapshot_DropsVanishedProducts(t *testing.T) {
	t.Parallel()

	m, catalog := newTestManager(t)
	ctx := context.Background()

	_ = m.Add(ctx, "buyer-1", "P1", 50)
	_ = m.Add(ctx, "buyer-1", "P2", 25)
	catalog.Delete("P2")

	snap, err := m.Snapshot(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Lines) != 1 || snap.Lines[0].Product.ID != "P1" {
		t.Fatalf("expected only P1 to survive, got %+v", snap.Lines)
	}
}

func TestManager_TotalsRecomputedOnPriceChange(t *testing.T) {
	t.Parallel()

	m, catalog := newTestManager(t)
	ctx := context.Background()

	_ = m.Add(ctx, "buyer-1", "P1", 50)
	newPrice := 100.0
	catalog.Update(domain.PartialProductUpdate{ID: "P1", Price: &newPrice})

	snap, _ := m.Snapshot(ctx, "buyer-1")
	if snap.TotalAmount != 5000 {
		t.Fatalf("totals must follow live catalog price, got %v", snap.TotalAmount)
	}
}
