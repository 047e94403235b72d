package main

import (
	"fmt"

	"github.com/mariam168/smart-shop-sub001/spreadsheet"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-products",
		Short: "Write every product with both languages to an xlsx file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return withStore(cmd.Context(), cfg, func(st *store.Store) error {
				products, err := st.Products.All(cmd.Context())
				if err != nil {
					return err
				}
				file, err := spreadsheet.ProductsWorkbook(products)
				if err != nil {
					return err
				}
				if err := file.Save(out); err != nil {
					return fmt.Errorf("save %s: %w", out, err)
				}
				log.Info("products exported", zap.String("file", out), zap.Int("count", len(products)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "products.xlsx", "output file")
	return cmd
}
