package storefront

import (
	"github.com/giftshop-next/internal/cart"
	"github.com/giftshop-next/internal/catalog"
	"github.com/giftshop-next/internal/http/response"
	"github.com/giftshop-next/internal/inflight"

	"github.com/gin-gonic/gin"
)

// InFlightResponse 在途操作状态响应
// busy 聚合用于整块 UI 禁用：任一购物车/目录操作在途即为 true。
type InFlightResponse struct {
	Operations  map[string]inflight.Status `json:"operations"`
	CartBusy    bool                       `json:"cart_busy"`
	CatalogBusy bool                       `json:"catalog_busy"`
}

// GetInFlightState 读取全部在途操作状态
func (h *Handler) GetInFlightState(c *gin.Context) {
	operations := h.CartStore.Tracker().Snapshot()
	for name, status := range h.CatalogStore.Tracker().Snapshot() {
		operations[name] = status
	}
	response.Success(c, InFlightResponse{
		Operations: operations,
		CartBusy: h.CartStore.Tracker().IsAnyPending(
			cart.OpAdd, cart.OpRemove, cart.OpSetQuantity, cart.OpClear,
		),
		CatalogBusy: h.CatalogStore.Tracker().IsAnyPending(
			catalog.OpFetchProducts, catalog.OpFetchProductByID, catalog.OpSearchProducts,
		),
	})
}
