package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

func (r *WishlistRepo) Exists(channelID, customerID string, productID int64) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM wishlist_items
	  WHERE channel_id=? AND customer_id=? AND product_id=?
	`, channelID, customerID, productID)
	if err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return n > 0, nil
}

func (r *WishlistRepo) Add(channelID, customerID string, productID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO wishlist_items(channel_id,customer_id,product_id)
	  VALUES(?,?,?)
	  ON CONFLICT(channel_id,customer_id,product_id) DO NOTHING
	`, channelID, customerID, productID)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove deletes the favorite entry; returns whether a row was removed.
func (r *WishlistRepo) Remove(channelID, customerID string, productID int64) (bool, error) {
	res, err := r.db.Exec(`
	  DELETE FROM wishlist_items
	  WHERE channel_id=? AND customer_id=? AND product_id=?
	`, channelID, customerID, productID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ProductIDs lists every favorited product id for the customer in the channel,
// including products that have since been deactivated or deleted.
func (r *WishlistRepo) ProductIDs(channelID, customerID string) ([]int64, error) {
	out := []int64{}
	err := r.db.Select(&out, `
	  SELECT product_id FROM wishlist_items
	  WHERE channel_id=? AND customer_id=?
	  ORDER BY created_at, product_id
	`, channelID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return out, nil
}
