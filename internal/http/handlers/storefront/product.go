package storefront

import (
	"errors"
	"strings"

	"github.com/giftshop-next/internal/catalog"
	"github.com/giftshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ProductListResponse 商品列表响应
type ProductListResponse struct {
	Items  interface{} `json:"items"`
	Source string      `json:"source"` // remote / fallback
}

// GetProducts 拉取商品列表（可按分类过滤）
// 远端失败时退回内置目录，响应中的 source 标明来源。
func (h *Handler) GetProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	products, source, err := h.CatalogStore.Refresh(c.Request.Context(), category)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load products")
		return
	}
	response.Success(c, ProductListResponse{Items: products, Source: string(source)})
}

// GetProductByID 拉取单个商品
func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	product, err := h.CatalogStore.FetchByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to load product")
		return
	}
	response.Success(c, product)
}

// SearchProducts 按关键词搜索商品（仅远端）
func (h *Handler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "query is required")
		return
	}
	products, err := h.CatalogStore.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, response.CodeInternal, "search failed")
		return
	}
	response.Success(c, products)
}

// GetLoadedProducts 返回已加载目录（同步读取，不触发远端请求）
func (h *Handler) GetLoadedProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category != "" {
		response.Success(c, h.CatalogStore.FilterByCategory(category))
		return
	}
	response.Success(c, h.CatalogStore.All())
}
