// Package seed bootstraps a fresh database: the singleton settings row
// always, and a small demo catalog when SEED_DEMO_DATA is set.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	"gorm.io/gorm"
)

// EnsureDefaultSettings creates the shop profile row if the table is empty.
func EnsureDefaultSettings(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing settingsdomain.Settings
		err := tx.Order("id ASC").First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		defaults := settingsdomain.DefaultSettings()
		return tx.Create(&defaults).Error
	})
}

// EnsureDemoCatalog seeds a sample nut-bolt catalog and one supplier. It is
// a no-op when any category already exists.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		description := "Various sizes and qualities of nut-bolts"
		category := catalogdomain.Category{
			Name:        "Nut-Bolts",
			Description: &description,
		}
		if err := tx.Create(&category).Error; err != nil {
			return err
		}

		qualityNames := []string{"GI (Galvanized Iron)", "High Tension", "Black", "Stainless Steel"}
		qualities := make([]catalogdomain.Quality, 0, len(qualityNames))
		for _, name := range qualityNames {
			qualities = append(qualities, catalogdomain.Quality{
				CategoryID: category.ID,
				Name:       name,
			})
		}
		if err := tx.Create(&qualities).Error; err != nil {
			return err
		}

		sizeSpecs := []struct {
			value   string
			display string
		}{
			{"6", `6mm (1/4")`},
			{"8", `8mm (5/16")`},
			{"10", `10mm (3/8")`},
			{"12", `12mm (1/2")`},
			{"14", `14mm (9/16")`},
			{"16", `16mm (5/8")`},
		}
		sizes := make([]catalogdomain.Size, 0, len(sizeSpecs))
		for i, spec := range sizeSpecs {
			sizes = append(sizes, catalogdomain.Size{
				CategoryID:  category.ID,
				SizeValue:   spec.value,
				SizeDisplay: spec.display,
				SortOrder:   i,
			})
		}
		if err := tx.Create(&sizes).Error; err != nil {
			return err
		}

		basePrices := map[string]float64{"6": 5, "8": 6, "10": 7, "12": 9, "14": 11, "16": 13}
		multipliers := map[string]float64{
			"GI (Galvanized Iron)": 1.0,
			"High Tension":         1.6,
			"Black":                0.8,
			"Stainless Steel":      2.5,
		}

		created := 0
		for _, quality := range qualities {
			for _, size := range sizes {
				sku := fmt.Sprintf("NB-%s-%s", strings.ToUpper(quality.Name[:2]), size.SizeValue)
				item := catalogdomain.Item{
					CategoryID:        category.ID,
					QualityID:         quality.ID,
					SizeID:            size.ID,
					SKU:               &sku,
					Unit:              "pcs",
					SellingPrice:      basePrices[size.SizeValue] * multipliers[quality.Name],
					GSTPercentage:     18,
					StockQuantity:     float64(100 + created*10),
					LowStockThreshold: 50,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				created++
			}
		}

		contact := "Ramesh Kumar"
		phone := "+91 9876543210"
		supplier := supplierdomain.Supplier{
			Name:          "Sharma Hardware Distributors",
			ContactPerson: &contact,
			Phone:         &phone,
		}
		return tx.Create(&supplier).Error
	})
}
