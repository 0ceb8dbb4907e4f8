package inflight

import "sync"

// Status 异步操作状态
type Status string

// 状态机：INITIAL --invoke--> PENDING --resolve/reject--> SUCCESS/ERROR
// 终态可随时被新一次 invoke 重新拉回 PENDING，PENDING 只能经 resolve/reject 离开。
const (
	StatusInitial Status = "INITIAL"
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Terminal 是否为终态
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Token 单次调用凭据，结算时用于丢弃过期调用的结果
type Token struct {
	name string
	seq  uint64
}

// Tracker 按操作名跟踪异步操作状态
// 状态语义为 last-write-wins：并发重复调用同一操作时，只有最近一次
// 调用的结算会落到状态上，早先调用的结算被丢弃。
type Tracker struct {
	mu  sync.RWMutex
	ops map[string]Status
	seq map[string]uint64
}

// NewTracker 创建跟踪器并将给定操作登记为 INITIAL
func NewTracker(names ...string) *Tracker {
	t := &Tracker{
		ops: make(map[string]Status, len(names)),
		seq: make(map[string]uint64, len(names)),
	}
	for _, name := range names {
		t.ops[name] = StatusInitial
	}
	return t
}

// Begin 标记操作进入 PENDING，返回本次调用凭据
func (t *Tracker) Begin(name string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq[name]++
	t.ops[name] = StatusPending
	return Token{name: name, seq: t.seq[name]}
}

// Resolve 以成功结算本次调用
func (t *Tracker) Resolve(token Token) {
	t.settle(token, StatusSuccess)
}

// Reject 以失败结算本次调用
func (t *Tracker) Reject(token Token) {
	t.settle(token, StatusError)
}

func (t *Tracker) settle(token Token, status Status) {
	if token.name == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	// 仅最近一次调用可落状态
	if t.seq[token.name] != token.seq {
		return
	}
	t.ops[token.name] = status
}

// Status 读取操作状态，未登记的操作视为 INITIAL
func (t *Tracker) Status(name string) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s, ok := t.ops[name]; ok {
		return s
	}
	return StatusInitial
}

// IsPending 操作是否在途
func (t *Tracker) IsPending(name string) bool {
	return t.Status(name) == StatusPending
}

// IsAnyPending 一组操作中是否有任一在途（用于整表单禁用）
func (t *Tracker) IsAnyPending(names ...string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, name := range names {
		if t.ops[name] == StatusPending {
			return true
		}
	}
	return false
}

// Snapshot 导出全部操作状态
func (t *Tracker) Snapshot() map[string]Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snapshot := make(map[string]Status, len(t.ops))
	for name, status := range t.ops {
		snapshot[name] = status
	}
	return snapshot
}
