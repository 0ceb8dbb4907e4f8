package provider

import (
	"github.com/giftshop-next/internal/account"
	"github.com/giftshop-next/internal/cart"
	"github.com/giftshop-next/internal/catalog"
	"github.com/giftshop-next/internal/config"
	"github.com/giftshop-next/internal/logger"
	"github.com/giftshop-next/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	SessionStore *session.Store
	CatalogStore *catalog.Store
	CartStore    *cart.Store
	Account      *account.Service
}

// NewContainer 初始化容器
// 会话库不可用时购物车退化为纯内存模式（只丢持久化，不丢功能）。
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	if cfg.Session.Enabled {
		store, err := session.Open(cfg.Session.DSN, session.PoolConfig{
			MaxOpenConns:           cfg.Session.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Session.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Session.Pool.ConnMaxLifetimeSeconds,
		})
		if err != nil {
			logger.Warnw("provider_init_session_failed", "error", err)
		} else {
			c.SessionStore = store
		}
	}

	c.CatalogStore = catalog.NewStore(catalog.Options{
		Client: catalog.NewClient(catalog.ClientConfig{
			BaseURL: cfg.Catalog.BaseURL,
			Timeout: cfg.Catalog.Timeout(),
		}),
		Logger: logger.S(),
	})

	cartOpts := cart.Options{
		Latency: cfg.Simulate.Latency(),
		Logger:  logger.S(),
	}
	if c.SessionStore != nil {
		cartOpts.Persister = c.SessionStore
	}
	c.CartStore = cart.NewStore(cartOpts)

	if c.SessionStore != nil {
		items, err := c.SessionStore.LoadSnapshot()
		if err != nil {
			logger.Warnw("provider_restore_cart_failed", "error", err)
		} else if len(items) > 0 {
			c.CartStore.Restore(items)
			logger.Infow("cart_snapshot_restored", "lines", len(items))
		}
	}

	c.Account = account.NewService()
	return c
}
