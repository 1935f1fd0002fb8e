package flash_sale_cache

import (
	"sync"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

const TTL = 30 * time.Second

// ── Active flash-sale screen cache ──────────────────────────────────────────
// Stores the fully derived storefront payload (remaining quantities,
// discounts resolved). Short TTL because sold counters move while a sale
// is running.

type entry struct {
	sale      *models.FlashSaleResponse
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (*models.FlashSaleResponse, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.sale, true
	}
	return nil, false
}

func Set(sale *models.FlashSaleResponse) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{sale: sale, fetchedAt: time.Now()}
}

// Invalidate clears the cache (call on any flash-sale create/update/delete
// and on every confirmed flash-sale purchase).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
