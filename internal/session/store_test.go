package session

import (
	"testing"

	"github.com/giftshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&CartSnapshotItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewStore(db)
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.ParseMoney(s)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", s, err)
	}
	return m
}

func TestSaveAndLoadSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)

	items := []models.CartLineItem{
		{ID: "3", Name: "Sonic Pro Wireless", Price: mustMoney(t, "$89.99"), Image: "https://img/3", Quantity: 2},
		{ID: "1", Name: "Marble Desk Set", Price: mustMoney(t, "$45.00"), Image: "https://img/1", Quantity: 1},
	}
	if err := store.SaveSnapshot(items); err != nil {
		t.Fatalf("save snapshot failed: %v", err)
	}

	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("load snapshot failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}
	// 顺序按保存时的位置还原
	if loaded[0].ID != "3" || loaded[1].ID != "1" {
		t.Fatalf("loaded order = [%s %s], want [3 1]", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Quantity != 2 || loaded[0].Price.Cents() != 8999 {
		t.Fatalf("loaded[0] = %+v, want quantity 2 price $89.99", loaded[0])
	}
}

func TestSaveSnapshotReplacesPreviousRows(t *testing.T) {
	store := newTestStore(t)

	first := []models.CartLineItem{
		{ID: "1", Name: "a", Price: mustMoney(t, "$10.00"), Quantity: 1},
		{ID: "2", Name: "b", Price: mustMoney(t, "$20.00"), Quantity: 1},
	}
	if err := store.SaveSnapshot(first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := []models.CartLineItem{
		{ID: "2", Name: "b", Price: mustMoney(t, "$20.00"), Quantity: 5},
	}
	if err := store.SaveSnapshot(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "2" || loaded[0].Quantity != 5 {
		t.Fatalf("loaded = %v, want single id 2 with quantity 5", loaded)
	}
}

func TestSaveEmptySnapshotClearsTable(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveSnapshot([]models.CartLineItem{
		{ID: "1", Name: "a", Price: mustMoney(t, "$10.00"), Quantity: 1},
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.SaveSnapshot(nil); err != nil {
		t.Fatalf("empty save failed: %v", err)
	}

	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("loaded %d rows after empty save, want 0", len(loaded))
	}
}

func TestLoadSnapshotSkipsCorruptPriceRows(t *testing.T) {
	store := newTestStore(t)

	rows := []CartSnapshotItem{
		{ProductID: "1", Name: "ok", Price: "$10.00", Quantity: 1, Position: 0},
		{ProductID: "2", Name: "broken", Price: "ten dollars", Quantity: 1, Position: 1},
	}
	if err := store.db.Create(&rows).Error; err != nil {
		t.Fatalf("insert rows failed: %v", err)
	}

	loaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "1" {
		t.Fatalf("loaded = %v, want only the intact row", loaded)
	}
}
