package router

import (
	"github.com/giftshop-next/internal/config"
	"github.com/giftshop-next/internal/http/handlers/storefront"
	"github.com/giftshop-next/internal/logger"
	"github.com/giftshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := storefront.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		public := apiV1.Group("/public")
		{
			public.GET("/products", handler.GetProducts)
			public.GET("/products/search", handler.SearchProducts)
			public.GET("/products/loaded", handler.GetLoadedProducts)
			public.GET("/products/:id", handler.GetProductByID)
		}

		// 购物车
		cartGroup := apiV1.Group("/cart")
		{
			cartGroup.GET("", handler.GetCart)
			cartGroup.GET("/summary", handler.GetCartSummary)
			cartGroup.POST("/items", handler.AddCartItem)
			cartGroup.PUT("/items/:id", handler.SetCartItemQuantity)
			cartGroup.DELETE("/items/:id", handler.RemoveCartItem)
			cartGroup.DELETE("", handler.ClearCart)
		}

		// 结算
		apiV1.GET("/checkout/summary", handler.GetCheckoutSummary)

		// 账户
		accountGroup := apiV1.Group("/account")
		{
			accountGroup.GET("/profile", handler.GetProfile)
			accountGroup.PUT("/profile", handler.UpdateProfile)
			accountGroup.GET("/addresses", handler.GetAddresses)
			accountGroup.POST("/addresses", handler.UpsertAddress)
			accountGroup.DELETE("/addresses/:id", handler.RemoveAddress)
			accountGroup.GET("/payment-methods", handler.GetPaymentMethods)
			accountGroup.POST("/payment-methods", handler.AddPaymentMethod)
			accountGroup.DELETE("/payment-methods/:id", handler.RemovePaymentMethod)
		}

		// 在途操作状态（UI 据此渲染忙碌态）
		apiV1.GET("/state/inflight", handler.GetInFlightState)
	}

	return r
}
