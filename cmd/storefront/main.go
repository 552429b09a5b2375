// Command storefront is the headless marketplace client: it keeps the
// buyer's cart in the local persisted store and talks to the marketplace
// backend for catalog, checkout, payments and admin moderation.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
	"github.com/CM-market/cameroon-made-market-sub000/internal/cart"
	"github.com/CM-market/cameroon-made-market-sub000/internal/config"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
	"github.com/CM-market/cameroon-made-market-sub000/internal/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Marketplace storefront client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	cmd.AddCommand(
		cartCmd(&configPath),
		checkoutCmd(&configPath),
		payCmd(&configPath),
		productsCmd(&configPath),
		uploadCmd(&configPath),
		loginCmd(&configPath),
		logoutCmd(&configPath),
		adminCmd(&configPath),
	)
	return cmd
}

// app wires the pieces every subcommand needs. Close releases the store.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	kv        localstore.Store
	storePath string
	cart      *cart.Store
	sess      *session.Session
	client    *api.Client
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var kv localstore.Store
	storePath := ""
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		kv, err = localstore.NewSQLiteStore(cfg.StorePath)
	default:
		fs, ferr := localstore.NewFileStore(cfg.StorePath)
		if ferr == nil {
			storePath = fs.Path()
		}
		kv, err = fs, ferr
	}
	if err != nil {
		return nil, err
	}

	sess := session.New(kv)
	client, err := api.NewClient(cfg.APIBaseURL,
		&http.Client{Timeout: cfg.HTTPTimeout},
		sess.TokenSource(), logger)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		kv:        kv,
		storePath: storePath,
		cart:      cart.NewStore(kv, logger),
		sess:      sess,
		client:    client,
	}, nil
}

func (a *app) productsClient() *api.ProductsClient { return api.NewProductsClient(a.client) }
func (a *app) ordersClient() *api.OrdersClient     { return api.NewOrdersClient(a.client) }
func (a *app) paymentsClient() *api.PaymentsClient { return api.NewPaymentsClient(a.client) }
func (a *app) usersClient() *api.UsersClient       { return api.NewUsersClient(a.client) }
func (a *app) adminClient() *api.AdminClient       { return api.NewAdminClient(a.client) }
func (a *app) imagesClient() *api.ImagesClient     { return api.NewImagesClient(a.client) }

func (a *app) Close() {
	_ = a.logger.Sync()
	_ = a.kv.Close()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
