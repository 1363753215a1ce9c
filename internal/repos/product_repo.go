package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"ramgate/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, short_description, description, price, special_price,
  url_key, image_path, active, visible, saleable,
  COALESCE(created_at,'') AS created_at`

// Get returns a product by id, or nil when no such row exists.
func (r *ProductRepo) Get(id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListPopular returns active, individually visible products newest first.
func (r *ProductRepo) ListPopular(limit, offset int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE active = 1 AND visible = 1
	  ORDER BY created_at DESC, id DESC
	  LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list popular: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) CountVisible() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE active = 1 AND visible = 1`); err != nil {
		return 0, fmt.Errorf("count visible: %w", err)
	}
	return n, nil
}

// PerPageOptions parses the storefront page-size choices from settings,
// e.g. "12,24,36,48". Returns nil when the setting is absent.
func (r *ProductRepo) PerPageOptions() []int {
	var v string
	if err := r.db.Get(&v, `SELECT value FROM settings WHERE code='catalog.products.per_page_options'`); err != nil {
		return nil
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && n > 0 {
			out = append(out, n)
		}
	}
	return out
}
