package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Settings rows are required by the catalog clamp; safe to run every start.
	if err := ensureSettings(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Customers (auto-provisioned from partner identities; email may be absent)
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  email TEXT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  channel_id TEXT NOT NULL,
  customer_group_id INTEGER NOT NULL DEFAULT 1,
  verified INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email
  ON customers(LOWER(email)) WHERE email IS NOT NULL;

-- Partner identity links: at most one customer per (provider, external id).
-- The PK is what makes concurrent auto-provisioning safe.
CREATE TABLE IF NOT EXISTS identity_links(
  provider_name TEXT NOT NULL,
  provider_id   TEXT NOT NULL,
  customer_id   TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (provider_name, provider_id)
);
CREATE INDEX IF NOT EXISTS idx_identity_links_customer ON identity_links(customer_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  short_description TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  special_price NUMERIC,
  url_key TEXT NOT NULL,
  image_path TEXT NOT NULL DEFAULT '',
  active INTEGER NOT NULL DEFAULT 1,
  visible INTEGER NOT NULL DEFAULT 1,
  saleable INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_active_created ON products(active, created_at);

-- Carts: at most one active cart per customer per channel
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  channel_id TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_active
  ON carts(customer_id, channel_id) WHERE is_active = 1;

CREATE TABLE IF NOT EXISTS cart_items(
  cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);

-- Favorites: pure set membership keyed by (channel, customer, product)
CREATE TABLE IF NOT EXISTS wishlist_items(
  channel_id  TEXT NOT NULL,
  customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  product_id  INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (channel_id, customer_id, product_id)
);

-- Storefront settings (consumed, not computed, by this service)
CREATE TABLE IF NOT EXISTS settings(
  code  TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// ensureSettings applies the storefront config the partner integration relies
// on: the allowed page-size choices and the default customer group. The
// per-page update widens the old single-value "12" so the partner can fetch
// larger pages.
func ensureSettings(db *sqlx.DB) error {
	rows := [][2]string{
		{"catalog.products.per_page_options", "12,24,36,48"},
		{"customer.default_group", "1"},
	}
	for _, r := range rows {
		if _, err := db.Exec(`
			INSERT INTO settings(code,value) VALUES(?,?)
			ON CONFLICT(code) DO UPDATE SET value=excluded.value
		`, r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,short_description,description,price,special_price,url_key,image_path,active,visible,saleable) VALUES
	  (41,'Playera RAM','Playera de algodon','Playera unisex de algodon, serigrafia local.',349.00,299.00,'playera-ram','/storage/products/41/main.jpg',1,1,1),
	  (42,'Taza Muro Loco','','Taza de ceramica esmaltada con arte del muro.',189.00,NULL,'taza-muro-loco','/storage/products/42/main.jpg',1,1,1),
	  (43,'Poster Plaza','Poster edicion limitada','',129.00,NULL,'poster-plaza','/storage/products/43/main.jpg',0,1,0)`)
	return tx.Commit()
}
