package storefront

import "github.com/giftshop-next/internal/provider"

// Handler 店面接口处理器入口
// 说明：本服务只有单一匿名购物会话，没有后台侧接口分组。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
