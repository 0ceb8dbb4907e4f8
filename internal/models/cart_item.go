package models

// CartLineItem 购物车行项
// 不变式：每个商品 ID 至多一行；数量恒 ≥ 1（低于 1 的写入会被钳位，不会隐式删行）。
type CartLineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// LineTotal 行小计（单价 × 数量）
func (i CartLineItem) LineTotal() Money {
	return i.Price.MulInt(i.Quantity)
}
