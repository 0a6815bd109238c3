package cmd

import (
	"context"
	"fmt"
	"slices"

	"stock-sync/core/config"
	"stock-sync/core/database"
	"stock-sync/core/feed"
	"stock-sync/core/logger"
	"stock-sync/core/reconcile"
	"stock-sync/core/storage"
	"stock-sync/feature/inventory"
	"stock-sync/feature/ozon"
	"stock-sync/feature/yandex"

	"go.uber.org/zap"
)

// bootstrap bundles the configuration and logger every command starts from.
type bootstrap struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadBootstrap() (*bootstrap, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return &bootstrap{cfg: cfg, logger: logg}, nil
}

// storageClient connects to object storage when the feed source or the report
// archive needs it. It returns nil when neither does.
func (b *bootstrap) storageClient(ctx context.Context) (storage.Client, error) {
	if !b.cfg.Storage.Enabled && b.cfg.Feed.Source != feed.SourceStorage {
		return nil, nil
	}

	client, err := storage.NewClient(b.cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, client, b.cfg.Storage.Bucket, b.cfg.Storage.Region); err != nil {
		return nil, err
	}
	b.logger.Info("Connected to object storage",
		zap.String("endpoint", b.cfg.Storage.Endpoint),
		zap.String("bucket", b.cfg.Storage.Bucket),
	)
	return client, nil
}

func (b *bootstrap) feedLoader(store storage.Client) (*feed.Loader, error) {
	cfg := b.cfg.Feed
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var source feed.Source
	switch cfg.Source {
	case feed.SourceStorage:
		source = feed.NewStorageSource(store, b.cfg.Storage.Bucket, cfg)
	default:
		source = feed.NewHTTPSource(cfg)
	}
	return feed.NewLoader(source, cfg, b.logger), nil
}

// journal opens the run journal, or returns nil when the database is disabled.
func (b *bootstrap) journal(ctx context.Context) (*database.Journal, error) {
	if !b.cfg.Database.Enabled {
		return nil, nil
	}

	db, err := database.Connect(b.cfg.Database)
	if err != nil {
		return nil, err
	}
	j := database.NewJournal(db)
	if err := j.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := j.CheckSchema(ctx); err != nil {
		return nil, err
	}
	b.logger.Info("Journal ready", zap.String("driver", b.cfg.Database.Driver))
	return j, nil
}

// buildMarketplaces creates the adapters of every enabled marketplace.
// A marketplace whose settings do not validate is an error when its name is in
// required, and is skipped with a warning otherwise.
func buildMarketplaces(cfg *config.Config, logg *zap.Logger, required []string) ([]inventory.Marketplace, error) {
	var out []inventory.Marketplace

	admit := func(name string, err error) (bool, error) {
		if err == nil {
			return true, nil
		}
		if slices.Contains(required, name) {
			return false, err
		}
		logg.Warn("Marketplace not configured, skipping", zap.String("marketplace", name), zap.Error(err))
		return false, nil
	}

	if cfg.Ozon.Enabled {
		ok, err := admit(inventory.TargetOzon, cfg.Ozon.Validate())
		if err != nil {
			return nil, err
		}
		if ok {
			client := ozon.NewClient(cfg.Ozon)
			out = append(out, inventory.Marketplace{
				Name:     inventory.TargetOzon,
				Adapters: []reconcile.Adapter{ozon.NewAdapter(client, cfg.Ozon, logg)},
			})
		}
	}

	if cfg.Yandex.Enabled {
		ok, err := admit(inventory.TargetYandex, cfg.Yandex.Validate())
		if err != nil {
			return nil, err
		}
		if ok {
			client := yandex.NewClient(cfg.Yandex)
			var adapters []reconcile.Adapter
			for _, a := range yandex.Adapters(client, cfg.Yandex, logg) {
				adapters = append(adapters, a)
			}
			out = append(out, inventory.Marketplace{Name: inventory.TargetYandex, Adapters: adapters})
		}
	}

	return out, nil
}

// requiredFor lists the marketplaces a sync of target cannot run without.
func requiredFor(cfg *config.Config, target string) []string {
	switch target {
	case inventory.TargetOzon, inventory.TargetYandex:
		return []string{target}
	case inventory.TargetAll:
		var names []string
		if cfg.Ozon.Enabled {
			names = append(names, inventory.TargetOzon)
		}
		if cfg.Yandex.Enabled {
			names = append(names, inventory.TargetYandex)
		}
		return names
	}
	return nil
}

// service wires the inventory service. required is passed to buildMarketplaces.
func (b *bootstrap) service(ctx context.Context, required []string) (*inventory.Service, error) {
	store, err := b.storageClient(ctx)
	if err != nil {
		return nil, err
	}

	loader, err := b.feedLoader(store)
	if err != nil {
		return nil, err
	}

	marketplaces, err := buildMarketplaces(b.cfg, b.logger, required)
	if err != nil {
		return nil, err
	}

	var opts []inventory.Option
	journal, err := b.journal(ctx)
	if err != nil {
		return nil, err
	}
	if journal != nil {
		opts = append(opts, inventory.WithJournal(journal))
	}
	if b.cfg.Storage.Enabled {
		opts = append(opts, inventory.WithArchive(inventory.NewArchive(store, b.cfg.Storage)))
	}

	return inventory.NewService(loader, marketplaces, b.logger, opts...), nil
}
