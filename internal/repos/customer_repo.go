package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ramgate/internal/domain"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerCols = `id,email,first_name,last_name,channel_id,customer_group_id,verified,active,password_hash,created_at`

// ByLink returns the customer bound to (provider, externalID), or nil when no
// link exists. A nil customer with nil error is the "not found" result.
func (r *CustomerRepo) ByLink(provider, externalID string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
	  SELECT `+customerCols+` FROM customers
	  WHERE id = (SELECT customer_id FROM identity_links WHERE provider_name=? AND provider_id=?)
	`, provider, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customer by link: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) ByID(id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT `+customerCols+` FROM customers WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customer by id: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) Create(c domain.Customer) error {
	_, err := r.db.Exec(`
	  INSERT INTO customers(id,email,first_name,last_name,channel_id,customer_group_id,verified,active,password_hash)
	  VALUES(?,?,?,?,?,?,?,?,?)
	`, c.ID, c.Email, c.FirstName, c.LastName, c.ChannelID, c.GroupID, c.Verified, c.Active, c.Hash)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// Link binds a customer to an external identity. Returns false when the link
// already exists (a concurrent request won the race); the caller should
// re-resolve and discard its provisional customer.
func (r *CustomerRepo) Link(provider, externalID, customerID string) (bool, error) {
	res, err := r.db.Exec(`
	  INSERT INTO identity_links(provider_name,provider_id,customer_id)
	  VALUES(?,?,?)
	  ON CONFLICT(provider_name,provider_id) DO NOTHING
	`, provider, externalID, customerID)
	if err != nil {
		return false, fmt.Errorf("link identity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a customer row. Used only to discard a provisional customer
// that lost the identity-link race before anything references it.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM customers WHERE id=?`, id)
	return err
}

// DefaultGroup reads the configured default customer group, falling back to 1
// when the setting is absent or malformed.
func (r *CustomerRepo) DefaultGroup() int {
	var v string
	if err := r.db.Get(&v, `SELECT value FROM settings WHERE code='customer.default_group'`); err != nil {
		return 1
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n < 1 {
		return 1
	}
	return n
}
