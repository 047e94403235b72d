package main

import (
	"context"
	"time"

	"github.com/mariam168/smart-shop-sub001/config"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/server"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Run and administer the bilingual storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newSeedCmd(), newExportCmd(), newTokenCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			return server.Run(cmd.Context(), cfg, log)
		},
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Production())
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// withStore connects to the document store for the duration of fn.
func withStore(ctx context.Context, cfg *config.Config, fn func(*store.Store) error) error {
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(closeCtx)
	}()
	return fn(st)
}
