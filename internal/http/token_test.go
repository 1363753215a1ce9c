package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"ramgate/internal/config"
	"ramgate/internal/http/handlers"
	"ramgate/internal/repos"
)

const testToken = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		DBDSN:        ":memory:",
		ServiceToken: testToken,
		AppURL:       "http://shop-internal:8080",
		PublicURL:    "https://shop.example.com",
		ChannelID:    "default",
		Currency:     "MXN",
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg)
	ram := app.Group("/api/ram", handlers.ServiceToken(cfg.ServiceToken))
	ram.Get("/products/popular", deps.ProductsHandler.Popular)
	ram.Post("/cart/add", deps.CartHandler.Add)
	ram.Get("/cart/count", deps.CartHandler.Count)
	ram.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)
	ram.Get("/wishlist", deps.WishlistHandler.Index)

	return app, db
}

var protectedEndpoints = []struct {
	method string
	path   string
	body   string
}{
	{"GET", "/api/ram/products/popular", ""},
	{"POST", "/api/ram/cart/add", `{"ram_user_id":"ext-1","product_id":42,"quantity":1,"email":"a@x.com"}`},
	{"GET", "/api/ram/cart/count?ram_user_id=ext-1", ""},
	{"POST", "/api/ram/wishlist/toggle", `{"ram_user_id":"ext-1","product_id":42}`},
	{"GET", "/api/ram/wishlist?ram_user_id=ext-1", ""},
}

func TestMissingTokenRejectedWithoutMutation(t *testing.T) {
	app, db := newTestApp(t)

	for _, ep := range protectedEndpoints {
		var body *strings.Reader
		if ep.body != "" {
			body = strings.NewReader(ep.body)
		} else {
			body = strings.NewReader("")
		}
		req := httptest.NewRequest(ep.method, ep.path, body)
		if ep.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", ep.method, ep.path, resp.StatusCode)
		}
	}

	// Rejected requests must not have written anything.
	var customers, carts, favorites int
	_ = db.Get(&customers, `SELECT COUNT(*) FROM customers`)
	_ = db.Get(&carts, `SELECT COUNT(*) FROM carts`)
	_ = db.Get(&favorites, `SELECT COUNT(*) FROM wishlist_items`)
	if customers+carts+favorites != 0 {
		t.Fatalf("unauthenticated requests mutated state: customers=%d carts=%d favorites=%d", customers, carts, favorites)
	}
}

func TestWrongTokenRejected(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/ram/cart/count?ram_user_id=ext-1", nil)
	req.Header.Set("Authorization", "Bearer not-the-secret")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestBearerPrefixIsCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/ram/cart/count?ram_user_id=ext-1", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for lowercase bearer, got %d", resp.StatusCode)
	}
}

func TestEmptyConfiguredSecretRejectsEverything(t *testing.T) {
	app := fiber.New()
	app.Use(handlers.ServiceToken(""))
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with empty secret, got %d", resp.StatusCode)
	}
}
