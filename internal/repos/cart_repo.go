package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// EnsureActive returns the id of the customer's active cart for the channel,
// creating one when absent. The partial unique index on (customer_id,
// channel_id) makes the create race-safe: on conflict we refetch the winner.
func (r *CartRepo) EnsureActive(customerID, channelID string) (string, error) {
	var cartID string
	err := r.db.Get(&cartID, `
	  SELECT id FROM carts WHERE customer_id=? AND channel_id=? AND is_active=1
	`, customerID, channelID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("fetch active cart: %w", err)
	}

	cartID = uuid.NewString()
	_, err = r.db.Exec(`
	  INSERT INTO carts(id,customer_id,channel_id,is_active,updated_at)
	  VALUES(?,?,?,1,CURRENT_TIMESTAMP)
	  ON CONFLICT(customer_id,channel_id) WHERE is_active=1 DO NOTHING
	`, cartID, customerID, channelID)
	if err != nil {
		return "", fmt.Errorf("create cart: %w", err)
	}
	if err := r.db.Get(&cartID, `
	  SELECT id FROM carts WHERE customer_id=? AND channel_id=? AND is_active=1
	`, customerID, channelID); err != nil {
		return "", fmt.Errorf("refetch active cart: %w", err)
	}
	return cartID, nil
}

// UpsertItem adds qty of a product to the cart, merging into an existing line
// for the same product.
func (r *CartRepo) UpsertItem(cartID string, productID int64, qty int, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(cart_id,product_id,qty,price_at_add,created_at)
	  VALUES(?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(cart_id,product_id) DO UPDATE
	  SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, cartID, productID, qty, price)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// ItemCount sums line quantities across the customer's active cart for the
// channel. No active cart means zero, not an error.
func (r *CartRepo) ItemCount(customerID, channelID string) (int, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COALESCE(SUM(ci.qty),0)
	  FROM carts c JOIN cart_items ci ON ci.cart_id = c.id
	  WHERE c.customer_id=? AND c.channel_id=? AND c.is_active=1
	`, customerID, channelID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cart item count: %w", err)
	}
	return n, nil
}
