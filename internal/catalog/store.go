package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/giftshop-next/internal/inflight"
	"github.com/giftshop-next/internal/logger"
	"github.com/giftshop-next/internal/models"

	"go.uber.org/zap"
)

// 目录异步操作名
const (
	OpFetchProducts    = "products.fetch"
	OpFetchProductByID = "products.fetch_by_id"
	OpSearchProducts   = "products.search"
)

// ErrNotFound 商品在远端、已加载目录与兜底目录中均不存在
var ErrNotFound = errors.New("product not found")

// Source 标记一次 Refresh 的数据来源
// 兜底路径同样视为成功，调用方通过 Source 区分"用了兜底"与"失败"。
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Fetcher 远端目录边界
type Fetcher interface {
	FetchProducts(ctx context.Context, category string) ([]models.Product, error)
	FetchProductByID(ctx context.Context, id string) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

// Options 目录仓库配置
type Options struct {
	Client  Fetcher
	Tracker *inflight.Tracker
	Logger  *zap.SugaredLogger
}

// Store 商品目录仓库
// 持有本会话的商品列表（插入序），商品本身不可变，只允许整体替换或按 ID 替换。
type Store struct {
	mu      sync.RWMutex
	items   []models.Product
	index   map[string]int
	client  Fetcher
	tracker *inflight.Tracker
	log     *zap.SugaredLogger
}

// NewStore 创建目录仓库，初始内容为内置兜底目录
func NewStore(opts Options) *Store {
	if opts.Tracker == nil {
		opts.Tracker = inflight.NewTracker(OpFetchProducts, OpFetchProductByID, OpSearchProducts)
	}
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	s := &Store{
		client:  opts.Client,
		tracker: opts.Tracker,
		log:     opts.Logger,
	}
	s.replaceAll(SeedProducts())
	return s
}

// Tracker 返回目录操作的在途状态跟踪器
func (s *Store) Tracker() *inflight.Tracker {
	return s.tracker
}

// All 返回当前已加载目录（插入序拷贝）
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Product, len(s.items))
	copy(items, s.items)
	return items
}

// ByID 按 ID 查找商品，缺失是常规结果而非错误
func (s *Store) ByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[id]; ok {
		return s.items[i], true
	}
	return models.Product{}, false
}

// FilterByCategory 按分类过滤，大小写不敏感、空白折叠为连字符后比较
func (s *Store) FilterByCategory(category string) []models.Product {
	slug := Slugify(category)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []models.Product
	for _, p := range s.items {
		if Slugify(p.Category) == slug {
			matched = append(matched, p)
		}
	}
	return matched
}

// Refresh 重新拉取目录，远端失败时退回兜底目录
// 兜底路径对调用方仍是 SUCCESS，返回的 Source 标明来源。
func (s *Store) Refresh(ctx context.Context, category string) ([]models.Product, Source, error) {
	token := s.tracker.Begin(OpFetchProducts)

	if s.client != nil {
		products, err := s.client.FetchProducts(ctx, category)
		if err == nil {
			if category == "" {
				s.replaceAll(products)
			} else {
				s.mergeByID(products)
			}
			s.tracker.Resolve(token)
			return products, SourceRemote, nil
		}
		s.log.Warnw("catalog_refresh_fallback", "category", category, "error", err)
	}

	fallback := SeedProducts()
	if category != "" {
		slug := Slugify(category)
		filtered := fallback[:0]
		for _, p := range fallback {
			if Slugify(p.Category) == slug {
				filtered = append(filtered, p)
			}
		}
		fallback = filtered
	} else {
		s.replaceAll(SeedProducts())
	}

	s.tracker.Resolve(token)
	return fallback, SourceFallback, nil
}

// FetchByID 拉取单个商品：远端 → 已加载目录 → 兜底目录
// 三处都缺失才算失败（ErrNotFound + 跟踪器 ERROR）。
func (s *Store) FetchByID(ctx context.Context, id string) (models.Product, error) {
	token := s.tracker.Begin(OpFetchProductByID)

	if s.client != nil {
		product, err := s.client.FetchProductByID(ctx, id)
		if err == nil && product != nil {
			s.mergeByID([]models.Product{*product})
			s.tracker.Resolve(token)
			return *product, nil
		}
		if err != nil && !errors.Is(err, ErrRemoteNotFound) {
			s.log.Warnw("catalog_fetch_by_id_fallback", "id", id, "error", err)
		}
	}

	if product, ok := s.ByID(id); ok {
		s.tracker.Resolve(token)
		return product, nil
	}
	for _, p := range SeedProducts() {
		if p.ID == id {
			s.tracker.Resolve(token)
			return p, nil
		}
	}

	s.tracker.Reject(token)
	return models.Product{}, ErrNotFound
}

// Search 按关键词搜索（仅远端，失败即失败）
func (s *Store) Search(ctx context.Context, query string) ([]models.Product, error) {
	token := s.tracker.Begin(OpSearchProducts)
	if s.client == nil {
		s.tracker.Reject(token)
		return nil, ErrFetchFailed
	}
	products, err := s.client.SearchProducts(ctx, query)
	if err != nil {
		s.tracker.Reject(token)
		return nil, err
	}
	s.tracker.Resolve(token)
	return products, nil
}

func (s *Store) replaceAll(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = products
	s.index = make(map[string]int, len(products))
	for i, p := range products {
		s.index[p.ID] = i
	}
}

// mergeByID 按 ID 整体替换已存在的商品，新商品追加到尾部
func (s *Store) mergeByID(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		if i, ok := s.index[p.ID]; ok {
			s.items[i] = p
			continue
		}
		s.items = append(s.items, p)
		s.index[p.ID] = len(s.items) - 1
	}
}
