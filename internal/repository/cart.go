package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
)

// CartRepo persists cart lines in Postgres, keyed by user id. Carts survive
// process restarts; the rest of the transactional state deliberately does not.
type CartRepo struct{ db *pgxpool.Pool }

// NewCartRepo creates a new CartRepo.
func NewCartRepo(db *pgxpool.Pool) *CartRepo { return &CartRepo{db: db} }

// Lines returns the cart lines of a user in the order they were first added.
func (r *CartRepo) Lines(ctx context.Context, userID string) ([]domain.CartRef, error) {
	rows, err := r.db.Query(ctx, `
        SELECT product_id, quantity
        FROM cart_lines
        WHERE user_id = $1
        ORDER BY added_at, product_id
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines for %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]domain.CartRef, 0)
	for rows.Next() {
		var l domain.CartRef
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Line returns one cart line, or apperr.ErrNotFound when the user has no
// line for the product.
func (r *CartRepo) Line(ctx context.Context, userID, productID string) (domain.CartRef, error) {
	var l domain.CartRef
	err := r.db.QueryRow(ctx, `
        SELECT product_id, quantity
        FROM cart_lines
        WHERE user_id = $1 AND product_id = $2
    `, userID, productID).Scan(&l.ProductID, &l.Quantity)
	if IsNotFound(err) {
		return domain.CartRef{}, apperr.ErrNotFound
	}
	if err != nil {
		return domain.CartRef{}, fmt.Errorf("get cart line %q/%q: %w", userID, productID, err)
	}
	return l, nil
}

// Upsert writes the absolute quantity for one cart line, inserting it if absent.
func (r *CartRepo) Upsert(ctx context.Context, userID, productID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO cart_lines (user_id, product_id, quantity, added_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = $3, updated_at = now()
    `, userID, productID, quantity)
	if err != nil {
		return fmt.Errorf("upsert cart line %q/%q: %w", userID, productID, err)
	}
	return nil
}

// Remove deletes one cart line. Removing an absent line is a no-op.
func (r *CartRepo) Remove(ctx context.Context, userID, productID string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM cart_lines WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	); err != nil {
		return fmt.Errorf("remove cart line %q/%q: %w", userID, productID, err)
	}
	return nil
}

// Clear deletes all cart lines of a user.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM cart_lines WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("clear cart for %q: %w", userID, err)
	}
	return nil
}
