package main

import (
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newSeedCmd() *cobra.Command {
	var discount float64
	var days int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a small bilingual catalog with one running promotion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			data, err := sampleCatalog(time.Now(), discount, time.Duration(days)*24*time.Hour)
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), cfg, func(st *store.Store) error {
				ctx := cmd.Context()
				if err := st.EnsureIndexes(ctx); err != nil {
					return err
				}
				for i := range data.Categories {
					if err := st.Categories.Create(ctx, &data.Categories[i]); err != nil {
						return fmt.Errorf("seed category: %w", err)
					}
				}
				for i := range data.Products {
					if err := st.Products.Create(ctx, &data.Products[i]); err != nil {
						return fmt.Errorf("seed product: %w", err)
					}
				}
				for i := range data.Advertisements {
					if err := st.Advertisements.Create(ctx, &data.Advertisements[i]); err != nil {
						return fmt.Errorf("seed advertisement: %w", err)
					}
				}
				log.Info("catalog seeded",
					zap.Int("categories", len(data.Categories)),
					zap.Int("products", len(data.Products)),
					zap.Int("advertisements", len(data.Advertisements)))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&discount, "discount", 15, "discount percentage of the seeded promotion")
	cmd.Flags().IntVar(&days, "days", 7, "days the seeded promotion runs from now")
	return cmd
}

type catalogSeed struct {
	Categories     []models.Category
	Products       []models.Product
	Advertisements []models.Advertisement
}

// sampleCatalog builds a validated catalog: one category with a subcategory,
// two products and a promotion on the first product running from now for d.
func sampleCatalog(now time.Time, discount float64, d time.Duration) (catalogSeed, error) {
	cat := models.Category{
		ID:          primitive.NewObjectID(),
		Name:        i18n.NewText("Clothing", "ملابس"),
		Description: i18n.NewText("Everyday wear", "ملابس يومية"),
		SubCategories: []models.SubCategory{
			{Name: i18n.NewText("Shirts", "قمصان")},
		},
	}
	if err := cat.Validate(); err != nil {
		return catalogSeed{}, err
	}
	sub := cat.SubCategories[0].ID

	shirt := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        i18n.NewText("Linen Shirt", "قميص كتان"),
		Description: i18n.NewText("Breathable summer shirt", "قميص صيفي خفيف"),
		BasePrice:   200,
		Category:    &cat.ID,
		SubCategory: &sub,
		Stock:       25,
		Weight:      0.4,
		Variants: []models.Variant{{
			ID:    primitive.NewObjectID(),
			SKU:   "LS-WHT-M",
			Price: 200,
			Stock: 10,
			Options: []models.VariantOption{
				{Name: i18n.NewText("Color", "اللون"), Value: i18n.NewText("White", "أبيض")},
				{Name: i18n.NewText("Size", "المقاس"), Value: i18n.NewText("M", "وسط")},
			},
		}},
	}
	scarf := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        i18n.NewText("Silk Scarf", "وشاح حرير"),
		Description: i18n.NewText("Hand finished", "مصنوع يدويا"),
		BasePrice:   19.99,
		Category:    &cat.ID,
		Stock:       40,
		Weight:      0.1,
	}
	for _, p := range []*models.Product{&shirt, &scarf} {
		if err := p.Validate(); err != nil {
			return catalogSeed{}, err
		}
	}

	start, end := now, now.Add(d)
	sale := models.Advertisement{
		Title:              i18n.NewText("Summer sale", "تخفيضات الصيف"),
		Description:        i18n.NewText(fmt.Sprintf("%g%% off linen", discount), fmt.Sprintf("خصم %g%% على الكتان", discount)),
		Type:               models.AdTypeSlider,
		ProductRef:         &shirt.ID,
		DiscountPercentage: discount,
		IsActive:           true,
		StartDate:          &start,
		EndDate:            &end,
	}
	if err := promotion.Validate(&sale); err != nil {
		return catalogSeed{}, err
	}

	return catalogSeed{
		Categories:     []models.Category{cat},
		Products:       []models.Product{shirt, scarf},
		Advertisements: []models.Advertisement{sale},
	}, nil
}
