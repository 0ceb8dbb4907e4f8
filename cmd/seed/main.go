package main

import (
	"github.com/giftshop-next/internal/catalog"
	"github.com/giftshop-next/internal/config"
	"github.com/giftshop-next/internal/logger"
	"github.com/giftshop-next/internal/models"
	"github.com/giftshop-next/internal/session"
)

// 向会话库写入一份演示购物车快照，便于本地起服后直接看到数据。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	store, err := session.Open(cfg.Session.DSN, session.PoolConfig{
		MaxOpenConns: cfg.Session.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Session.Pool.MaxIdleConns,
	})
	if err != nil {
		stdLog.Fatalf("打开会话库失败: %v", err)
	}

	seed := catalog.SeedProducts()
	items := []models.CartLineItem{
		{ID: seed[0].ID, Name: seed[0].Name, Price: seed[0].Price, Image: seed[0].Image, Quantity: 2},
		{ID: seed[6].ID, Name: seed[6].Name, Price: seed[6].Price, Image: seed[6].Image, Quantity: 1},
	}
	if err := store.SaveSnapshot(items); err != nil {
		stdLog.Fatalf("写入演示购物车失败: %v", err)
	}

	subtotal := models.Money{}
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	stdLog.Printf("演示购物车已写入: %d 行, 小计 %s", len(items), subtotal)
}
