package storefront

import (
	"github.com/giftshop-next/internal/checkout"
	"github.com/giftshop-next/internal/http/response"
	"github.com/giftshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
// 价格字段接受 "$xx.yy" 价格字符串（models.Money 解析）。
type AddCartItemRequest struct {
	ID    string       `json:"id" binding:"required"`
	Name  string       `json:"name" binding:"required"`
	Price models.Money `json:"price" binding:"required"`
	Image string       `json:"image"`
}

// SetQuantityRequest 数量更新请求
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse 购物车响应
type CartResponse struct {
	Items     []models.CartLineItem `json:"items"`
	ItemCount int                   `json:"item_count"`
	Subtotal  models.Money          `json:"subtotal"`
}

// GetCart 读取购物车
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, h.cartResponse())
}

// AddCartItem 加入商品（已存在则数量 +1）
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item payload")
		return
	}
	if err := h.CartStore.Add(c.Request.Context(), models.ProductSummary{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}); err != nil {
		response.Error(c, response.CodeInternal, "failed to add to cart")
		return
	}
	response.Success(c, h.cartResponse())
}

// SetCartItemQuantity 设置行项数量（钳位到 ≥ 1）
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid quantity payload")
		return
	}
	if err := h.CartStore.SetQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		response.Error(c, response.CodeInternal, "failed to update quantity")
		return
	}
	response.Success(c, h.cartResponse())
}

// RemoveCartItem 删除行项（不存在时也是成功）
func (h *Handler) RemoveCartItem(c *gin.Context) {
	if err := h.CartStore.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, response.CodeInternal, "failed to remove from cart")
		return
	}
	response.Success(c, h.cartResponse())
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.CartStore.Clear(c.Request.Context()); err != nil {
		response.Error(c, response.CodeInternal, "failed to clear cart")
		return
	}
	response.Success(c, h.cartResponse())
}

// GetCartSummary 购物车金额汇总（含免邮进度）
func (h *Handler) GetCartSummary(c *gin.Context) {
	response.Success(c, checkout.ComputeTotals(h.CartStore.Subtotal()))
}

func (h *Handler) cartResponse() CartResponse {
	return CartResponse{
		Items:     h.CartStore.Items(),
		ItemCount: h.CartStore.ItemCount(),
		Subtotal:  h.CartStore.Subtotal(),
	}
}
