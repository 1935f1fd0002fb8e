package order_controller

import (
	"strings"
	"testing"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGenerateOrderNumber(t *testing.T) {
	n := generateOrderNumber()

	wantPrefix := "HT" + time.Now().Format("060102") + "-"
	if !strings.HasPrefix(n, wantPrefix) {
		t.Fatalf("order number %q missing date prefix %q", n, wantPrefix)
	}
	if len(n) != len(wantPrefix)+6 {
		t.Fatalf("order number %q has wrong suffix length", n)
	}

	// suffix comes from a fresh UUIDv7, so consecutive numbers differ
	if generateOrderNumber() == n {
		t.Fatal("consecutive order numbers must differ")
	}
}

// The SKU list must reach Postgres as a parenthesized placeholder list
// (IN ($1,$2)), not as arguments to ANY, or multi-item carts fail with a
// syntax error during checkout.
func TestActiveProductsBySKUBindsParenthesizedList(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run session: %v", err)
	}

	var products []models.Product
	stmt := activeProductsBySKU(db, []string{"SKU-A", "SKU-B"}).Find(&products).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "IN ($1,$2)") {
		t.Fatalf("multi-SKU filter built %q, want an IN ($1,$2) list", sql)
	}
	if strings.Contains(sql, "ANY") {
		t.Fatalf("multi-SKU filter built %q, must not use ANY with expanded placeholders", sql)
	}
	if got := len(stmt.Vars); got != 2 {
		t.Fatalf("got %d bind vars, want 2", got)
	}

	var single []models.Product
	stmt = activeProductsBySKU(db, []string{"SKU-A"}).Find(&single).Statement
	if sql := stmt.SQL.String(); !strings.Contains(sql, "IN ($1)") {
		t.Fatalf("single-SKU filter built %q, want IN ($1)", sql)
	}
}
