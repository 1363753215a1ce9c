package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"ramgate/internal/domain"
	"ramgate/internal/repos"
	"ramgate/internal/services"
)

func newCart(db *sqlx.DB) *services.CartService {
	return services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db), "default")
}

func provision(t *testing.T, db *sqlx.DB, extID string) *domain.Customer {
	t.Helper()
	c, err := newIdentity(db).ResolveOrCreate(services.ProvisionParams{ExternalID: extID}, false)
	require.NoError(t, err)
	return c
}

func TestAddItemAccumulatesAcrossCalls(t *testing.T) {
	db := openTestDB(t)
	svc := newCart(db)
	c := provision(t, db, "ext-cart-1")

	count, err := svc.AddItem(c, 42, 3)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = svc.AddItem(c, 42, 2)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	db := openTestDB(t)
	svc := newCart(db)
	c := provision(t, db, "ext-cart-2")

	count, err := svc.AddItem(c, 41, 0)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAddItemRejectsMissingProduct(t *testing.T) {
	db := openTestDB(t)
	svc := newCart(db)
	c := provision(t, db, "ext-cart-3")

	_, err := svc.AddItem(c, 9999, 1)
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestAddItemRejectsInactiveProductWithoutCreatingCart(t *testing.T) {
	db := openTestDB(t)
	svc := newCart(db)
	c := provision(t, db, "ext-cart-4")

	// Product 43 is seeded deactivated.
	_, err := svc.AddItem(c, 43, 1)
	require.ErrorIs(t, err, services.ErrProductUnavailable)

	var carts int
	require.NoError(t, db.Get(&carts, `SELECT COUNT(*) FROM carts WHERE customer_id=?`, c.ID))
	require.Equal(t, 0, carts)
}

func TestCountNeverFails(t *testing.T) {
	db := openTestDB(t)
	svc := newCart(db)

	require.Equal(t, 0, svc.Count(nil))

	c := provision(t, db, "ext-cart-5")
	require.Equal(t, 0, svc.Count(c))
}
