package session

import (
	"fmt"
	"time"

	"github.com/giftshop-next/internal/models"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CartSnapshotItem 购物车快照行（CartLineItem 的逐字段持久化形式）
type CartSnapshotItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID string    `gorm:"uniqueIndex;not null" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     string    `gorm:"not null" json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Position  int       `gorm:"not null;index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (CartSnapshotItem) TableName() string {
	return "cart_snapshot_items"
}

// PoolConfig 数据库连接池配置
type PoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
}

// Store 会话快照仓库：购物车内容的 localStorage 等价物
// 保存时整表替换，读取时按写入位置还原顺序。
type Store struct {
	db *gorm.DB
}

// Open 打开会话库并迁移快照表
func Open(dsn string, pool PoolConfig) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}

	if err := db.AutoMigrate(&CartSnapshotItem{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore 用已有连接创建仓库（测试用）
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveSnapshot 以整表替换方式保存购物车快照
func (s *Store) SaveSnapshot(items []models.CartLineItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CartSnapshotItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]CartSnapshotItem, 0, len(items))
		for i, item := range items {
			rows = append(rows, CartSnapshotItem{
				ProductID: item.ID,
				Name:      item.Name,
				Price:     item.Price.String(),
				Image:     item.Image,
				Quantity:  item.Quantity,
				Position:  i,
			})
		}
		return tx.Create(&rows).Error
	})
}

// LoadSnapshot 读取购物车快照（按保存顺序）
// 价格字段解析失败的行视为数据损坏，跳过并继续。
func (s *Store) LoadSnapshot() ([]models.CartLineItem, error) {
	var rows []CartSnapshotItem
	if err := s.db.Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]models.CartLineItem, 0, len(rows))
	for _, row := range rows {
		price, err := models.ParseMoney(row.Price)
		if err != nil {
			continue
		}
		items = append(items, models.CartLineItem{
			ID:       row.ProductID,
			Name:     row.Name,
			Price:    price,
			Image:    row.Image,
			Quantity: row.Quantity,
		})
	}
	return items, nil
}

// ClearSnapshot 删除全部快照行
func (s *Store) ClearSnapshot() error {
	return s.db.Where("1 = 1").Delete(&CartSnapshotItem{}).Error
}
