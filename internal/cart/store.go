package cart

import (
	"context"
	"sync"
	"time"

	"github.com/giftshop-next/internal/inflight"
	"github.com/giftshop-next/internal/logger"
	"github.com/giftshop-next/internal/models"

	"go.uber.org/zap"
)

// 购物车异步操作名
const (
	OpAdd         = "cart.add"
	OpRemove      = "cart.remove"
	OpSetQuantity = "cart.set_quantity"
	OpClear       = "cart.clear"
)

// Persister 购物车快照持久化边界（localStorage 的服务端等价物）
// 持久化失败不回滚购物车变更，仅记日志。
type Persister interface {
	SaveSnapshot(items []models.CartLineItem) error
}

// Options 购物车仓库配置
type Options struct {
	// Latency 模拟网络延迟，0 表示立即生效（测试用）
	Latency time.Duration
	Tracker *inflight.Tracker
	// Persister 可选的快照持久化器
	Persister Persister
	// FailHook 故障注入口：当前设计里变更操作没有天然失败路径，
	// ERROR 状态只能经由这里触达（面向未来真实后端保留）。
	FailHook func(op string) error
	Logger   *zap.SugaredLogger
}

// Store 购物车仓库
// 行项按首次加入顺序保存，每个商品 ID 至多一行；所有变更都经由
// 单一互斥锁，外部只能通过这里的操作改写行项集合。
type Store struct {
	mu        sync.RWMutex
	items     []*models.CartLineItem
	index     map[string]*models.CartLineItem
	tracker   *inflight.Tracker
	latency   time.Duration
	persister Persister
	failHook  func(op string) error
	log       *zap.SugaredLogger
}

// NewStore 创建空购物车
func NewStore(opts Options) *Store {
	if opts.Tracker == nil {
		opts.Tracker = inflight.NewTracker(OpAdd, OpRemove, OpSetQuantity, OpClear)
	}
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	return &Store{
		index:     make(map[string]*models.CartLineItem),
		tracker:   opts.Tracker,
		latency:   opts.Latency,
		persister: opts.Persister,
		failHook:  opts.FailHook,
		log:       opts.Logger,
	}
}

// Tracker 返回购物车操作的在途状态跟踪器
func (s *Store) Tracker() *inflight.Tracker {
	return s.tracker
}

// Restore 用持久化快照重建行项（仅启动时调用，不走异步包装）
func (s *Store) Restore(items []models.CartLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
	s.index = make(map[string]*models.CartLineItem, len(items))
	for _, item := range items {
		if _, ok := s.index[item.ID]; ok {
			continue
		}
		line := item
		line.Quantity = models.ClampQuantity(line.Quantity)
		s.items = append(s.items, &line)
		s.index[line.ID] = &line
	}
}

// Add 加入商品：已存在则数量 +1，否则以数量 1 追加
func (s *Store) Add(ctx context.Context, product models.ProductSummary) error {
	return s.do(ctx, OpAdd, func() {
		if line, ok := s.index[product.ID]; ok {
			line.Quantity++
			return
		}
		line := &models.CartLineItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		}
		s.items = append(s.items, line)
		s.index[product.ID] = line
	})
}

// Remove 删除行项，商品不存在时静默跳过
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.do(ctx, OpRemove, func() {
		if _, ok := s.index[id]; !ok {
			return
		}
		delete(s.index, id)
		for i, line := range s.items {
			if line.ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
	})
}

// SetQuantity 设置行项数量（钳位到 ≥ 1，绝不隐式删行），商品不存在时跳过
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) error {
	return s.do(ctx, OpSetQuantity, func() {
		if line, ok := s.index[id]; ok {
			line.Quantity = models.ClampQuantity(quantity)
		}
	})
}

// Clear 清空购物车，幂等
func (s *Store) Clear(ctx context.Context) error {
	return s.do(ctx, OpClear, func() {
		s.items = s.items[:0]
		s.index = make(map[string]*models.CartLineItem)
	})
}

// Items 返回行项拷贝（首次加入顺序）
func (s *Store) Items() []models.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ItemCount 全部行项数量之和
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, line := range s.items {
		count += line.Quantity
	}
	return count
}

// Subtotal 全部行小计之和
func (s *Store) Subtotal() models.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subtotal := models.Money{}
	for _, line := range s.items {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// do 异步操作包装：PENDING → 模拟延迟 → 加锁变更 → SUCCESS/ERROR
// 延迟在取锁之前流逝，变更本身相对并发读取是原子的；同延迟下
// 多次调用按发起顺序生效。进入延迟后不可取消（与前端行为一致）。
func (s *Store) do(ctx context.Context, op string, mutate func()) error {
	token := s.tracker.Begin(op)

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			// 不取消在途变更：等满延迟后仍然生效
			<-timer.C
		}
	}

	s.mu.Lock()
	var err error
	if s.failHook != nil {
		err = s.failHook(op)
	}
	if err == nil {
		mutate()
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		s.tracker.Reject(token)
		return err
	}
	s.persist(op, snapshot)
	s.tracker.Resolve(token)
	return nil
}

// persist 尽力而为地保存快照
func (s *Store) persist(op string, items []models.CartLineItem) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveSnapshot(items); err != nil {
		s.log.Warnw("cart_snapshot_save_failed", "op", op, "error", err)
	}
}

func (s *Store) snapshotLocked() []models.CartLineItem {
	items := make([]models.CartLineItem, 0, len(s.items))
	for _, line := range s.items {
		items = append(items, *line)
	}
	return items
}
