package models

// OrderTotals 订单金额汇总（每次读取时从购物车现状重新推导，从不缓存）
type OrderTotals struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Shipping Money `json:"shipping"`
	Total    Money `json:"total"`

	// 免邮进度条展示值
	AmountToFreeShipping Money   `json:"amount_to_free_shipping"`
	FreeShippingProgress float64 `json:"free_shipping_progress"`
}
