package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/giftshop-next/internal/models"
)

var (
	// ErrFetchFailed 远端目录请求失败（网络错误或非 2xx）
	ErrFetchFailed = errors.New("catalog fetch failed")
	// ErrRemoteNotFound 远端目录返回 404
	ErrRemoteNotFound = errors.New("catalog remote not found")
)

const defaultClientTimeout = 10 * time.Second

// ClientConfig 远端目录客户端配置
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client 远端商品目录客户端
// 对应 GET /products、GET /products/:id、GET /products/search 三个边界接口。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建目录客户端
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts 拉取商品列表，category 为空时拉取全量
func (c *Client) FetchProducts(ctx context.Context, category string) ([]models.Product, error) {
	endpoint := "/products"
	if strings.TrimSpace(category) != "" {
		endpoint += "?" + url.Values{"category": {category}}.Encode()
	}
	var products []models.Product
	if err := c.getJSON(ctx, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchProductByID 拉取单个商品
func (c *Client) FetchProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts 按关键词搜索商品（仅远端，无本地兜底）
func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := "/products/search?" + url.Values{"q": {query}}.Encode()
	var products []models.Product
	if err := c.getJSON(ctx, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: base url not configured", ErrFetchFailed)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrRemoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}
	return nil
}
