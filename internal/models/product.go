package models

// Finish 商品表面工艺选项
type Finish struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Product 商品数据（目录加载后不可变，仅允许整体替换）
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           Money    `json:"price"`
	OriginalPrice   *Money   `json:"originalPrice,omitempty"`
	Rating          float64  `json:"rating"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Collection      string   `json:"collection,omitempty"`
	Description     string   `json:"description,omitempty"`
	Images          []string `json:"images,omitempty"`
	SKU             string   `json:"sku,omitempty"`
	Stock           *int     `json:"stock,omitempty"`
	Finishes        []Finish `json:"finishes,omitempty"`
	Details         string   `json:"details,omitempty"`
	Specifications  string   `json:"specifications,omitempty"`
	ShippingReturns string   `json:"shippingReturns,omitempty"`
}

// Summary 转换为加入购物车所需的商品摘要
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

// ProductSummary 加入购物车的商品摘要
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
	Image string `json:"image"`
}
