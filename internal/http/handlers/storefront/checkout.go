package storefront

import (
	"github.com/giftshop-next/internal/checkout"
	"github.com/giftshop-next/internal/http/response"
	"github.com/giftshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutSummaryResponse 结算页汇总响应
type CheckoutSummaryResponse struct {
	Items  []models.CartLineItem `json:"items"`
	Totals models.OrderTotals    `json:"totals"`
}

// GetCheckoutSummary 结算页金额汇总
// 与购物车页走同一个 ComputeTotals：同一购物车状态必然得到同一组金额。
func (h *Handler) GetCheckoutSummary(c *gin.Context) {
	response.Success(c, CheckoutSummaryResponse{
		Items:  h.CartStore.Items(),
		Totals: checkout.ComputeTotals(h.CartStore.Subtotal()),
	})
}
