package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main pulls the catalog out of the legacy commerce API and upserts it into
// Postgres. Safe to re-run: products match on ID, promotions on code.
// Usage: go run cmd/import/main.go [-page-size 50] [-skip-flash-sales]
func main() {
	pageSize := flag.Int("page-size", 50, "legacy API page size")
	skipFlashSales := flag.Bool("skip-flash-sales", false, "skip flash-sale import")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("HTEAM COMMERCE - Legacy Catalog Import")
	fmt.Println("════════════════════════════════════════════════════════════")

	config.InitDB()
	log.Println("✓ Connected to database")

	client, err := services.NewLegacyCatalogClient()
	if err != nil {
		log.Fatalf("Failed to build legacy client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	imported := importProducts(ctx, client, *pageSize)
	log.Printf("✓ Imported %d products", imported)

	promos := importPromotions(ctx, client)
	log.Printf("✓ Imported %d promotions", promos)

	if !*skipFlashSales {
		items := importFlashSales(ctx, client, *pageSize)
		log.Printf("✓ Imported %d flash-sale items", items)
	}

	fmt.Println("✅ Import complete")
}

// importProducts walks the legacy variant pages and groups variants under
// their parent product before upserting.
func importProducts(ctx context.Context, client *services.LegacyCatalogClient, pageSize int) int {
	type productDraft struct {
		product  models.Product
		variants models.VariantsList
	}
	drafts := make(map[string]*productDraft)
	order := make([]string, 0)

	for pageIdx := 0; ; pageIdx++ {
		req := pagination.PageRequest{Index0: pageIdx, Size: pageSize}
		variants, page, err := client.FetchVariants(ctx, req)
		if err != nil {
			log.Fatalf("Failed to fetch variants page %d: %v", pageIdx, err)
		}

		for _, dto := range variants {
			draft, ok := drafts[dto.Product.ID]
			if !ok {
				id, err := uuid.Parse(dto.Product.ID)
				if err != nil {
					id = uuid.Must(uuid.NewV7())
				}
				draft = &productDraft{product: models.Product{
					ID:          id,
					Name:        dto.Product.Name,
					Description: dto.Product.Description,
					Brand:       dto.Product.Brand,
					Category:    dto.Product.Category,
					Status:      "Active",
					Tags:        models.TagsList{},
					Specs:       datatypes.JSONMap{},
				}}
				drafts[dto.Product.ID] = draft
				order = append(order, dto.Product.ID)
			}
			draft.variants = append(draft.variants, convertVariant(dto))
		}

		if pageIdx+1 >= page.TotalPages || len(variants) == 0 {
			break
		}
	}

	count := 0
	for _, key := range order {
		draft := drafts[key]
		draft.product.Variants = draft.variants

		err := config.Gorm.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description", "brand", "category", "variants", "updated_at"}),
			}).
			Create(&draft.product).Error
		if err != nil {
			log.Printf("⚠️ skipping product %s: %v", draft.product.Name, err)
			continue
		}
		count++
	}
	return count
}

func convertVariant(dto services.LegacyVariantDTO) models.ProductVariant {
	options := make([]models.ProductOption, 0, len(dto.Options))
	for _, o := range dto.Options {
		options = append(options, models.ProductOption{
			SKU:   o.SKU,
			Value: o.Value,
			Availability: models.Availability{
				Quantity:      o.Availability.Quantity,
				RegularPrice:  o.Availability.RegularPrice,
				SalePrice:     o.Availability.SalePrice,
				ProductStatus: o.Availability.ProductStatus,
			},
		})
	}
	return models.ProductVariant{
		Code:    dto.Code,
		Name:    dto.Name,
		Options: options,
		Specs:   dto.Specs,
	}
}

func importPromotions(ctx context.Context, client *services.LegacyCatalogClient) int {
	dtos, err := client.FetchPromotions(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch promotions: %v", err)
	}

	count := 0
	for _, dto := range dtos {
		promotion := models.Promotion{
			Code:            dto.Code,
			Description:     dto.Description,
			DiscountPercent: dto.DiscountPercent,
			DiscountAmount:  dto.DiscountAmount,
			ValidFrom:       dto.ValidFrom,
			ValidTo:         dto.ValidTo,
			IsActive:        dto.IsActive,
			SKUs:            models.TagsList(dto.SKUs),
		}

		err := config.Gorm.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "discount_percent", "discount_amount", "valid_from", "valid_to", "is_active", "skus", "updated_at"}),
			}).
			Create(&promotion).Error
		if err != nil {
			log.Printf("⚠️ skipping promotion %s: %v", dto.Code, err)
			continue
		}
		count++
	}
	return count
}

// importFlashSales collects every legacy flash-sale item into one imported
// campaign whose window spans the items' end times.
func importFlashSales(ctx context.Context, client *services.LegacyCatalogClient, pageSize int) int {
	var dtos []services.LegacyFlashSaleItemDTO
	for pageIdx := 0; ; pageIdx++ {
		req := pagination.PageRequest{Index0: pageIdx, Size: pageSize}
		items, page, err := client.FetchFlashSaleItems(ctx, req)
		if err != nil {
			log.Fatalf("Failed to fetch flash-sale items page %d: %v", pageIdx, err)
		}
		dtos = append(dtos, items...)

		if pageIdx+1 >= page.TotalPages || len(items) == 0 {
			break
		}
	}
	if len(dtos) == 0 {
		return 0
	}

	now := time.Now()
	endTime := dtos[0].EndTime
	for _, dto := range dtos[1:] {
		if dto.EndTime.After(endTime) {
			endTime = dto.EndTime
		}
	}

	sale := models.FlashSale{
		Name:      fmt.Sprintf("Imported flash sale %s", now.Format("2006-01-02")),
		StartTime: now,
		EndTime:   endTime,
		Status:    "Active",
	}

	for _, dto := range dtos {
		// Resolve the owning product by SKU; items whose product was not
		// imported are dropped.
		var productID string
		err := config.Gorm.WithContext(ctx).Raw(`
			SELECT p.id::text
			FROM products p
			WHERE EXISTS (
				SELECT 1
				FROM jsonb_array_elements(p.variants) AS v,
				     jsonb_array_elements(v->'options') AS opt
				WHERE opt->>'sku' = ?
			)
			LIMIT 1
		`, dto.SKU).Scan(&productID).Error
		if err != nil || productID == "" {
			log.Printf("⚠️ skipping flash item %s: no matching product", dto.SKU)
			continue
		}

		pid, err := uuid.Parse(productID)
		if err != nil {
			continue
		}

		sale.Items = append(sale.Items, models.FlashSaleItem{
			SKU:           dto.SKU,
			ProductID:     pid,
			FlashPrice:    dto.FlashPrice,
			LimitQuantity: dto.LimitQuantity,
			SoldQuantity:  dto.SoldQuantity,
			EndTime:       dto.EndTime,
			Option: models.OptionSnapshot{ProductOption: models.ProductOption{
				SKU:   dto.Option.SKU,
				Value: dto.Option.Value,
				Availability: models.Availability{
					Quantity:      dto.Option.Availability.Quantity,
					RegularPrice:  dto.Option.Availability.RegularPrice,
					SalePrice:     dto.Option.Availability.SalePrice,
					ProductStatus: dto.Option.Availability.ProductStatus,
				},
			}},
		})
	}

	if len(sale.Items) == 0 {
		return 0
	}
	if err := config.Gorm.WithContext(ctx).Create(&sale).Error; err != nil {
		log.Fatalf("Failed to create imported flash sale: %v", err)
	}
	return len(sale.Items)
}
