package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol 店面固定货币符号
const CurrencySymbol = "$"

// ErrMalformedMoney 价格字符串格式非法
var ErrMalformedMoney = errors.New("malformed money string")

// Money 统一金额类型（保留 2 位小数）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromCents 从最小货币单位（美分）创建金额
func NewMoneyFromCents(cents int64) Money {
	return Money{Decimal: decimal.New(cents, -2)}
}

// ParseMoney 解析 "$xx.yy" 格式的价格字符串
// 仅接受单个前导货币符号加十进制数字，其余一律返回 ErrMalformedMoney。
func ParseMoney(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, CurrencySymbol) {
		return Money{}, ErrMalformedMoney
	}
	numeric := trimmed[len(CurrencySymbol):]
	if numeric == "" || strings.HasPrefix(numeric, CurrencySymbol) {
		return Money{}, ErrMalformedMoney
	}
	if !isPlainDecimal(numeric) {
		return Money{}, ErrMalformedMoney
	}
	d, err := decimal.NewFromString(numeric)
	if err != nil {
		return Money{}, ErrMalformedMoney
	}
	return Money{Decimal: d.Round(2)}, nil
}

// isPlainDecimal 校验 <digits>(.<digits>)? 形式
func isPlainDecimal(s string) bool {
	intPart := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart := s[dot+1:]
		if fracPart == "" || !isDigits(fracPart) {
			return false
		}
	}
	return intPart != "" && isDigits(intPart)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Cents 返回最小货币单位表示
func (m Money) Cents() int64 {
	return m.Decimal.Round(2).Shift(2).IntPart()
}

// Add 金额相加
func (m Money) Add(other Money) Money {
	return NewMoneyFromDecimal(m.Decimal.Add(other.Decimal))
}

// MulInt 金额乘以整数数量
func (m Money) MulInt(n int) Money {
	return NewMoneyFromDecimal(m.Decimal.Mul(decimal.NewFromInt(int64(n))))
}

// String 返回 "$xx.yy" 格式
func (m Money) String() string {
	return CurrencySymbol + m.Decimal.Round(2).StringFixed(2)
}

// MarshalJSON 统一输出 "$xx.yy" 格式的价格字符串
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON 解析金额（带符号字符串、纯数字字符串或数字）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.HasPrefix(strings.TrimSpace(s), CurrencySymbol) {
			parsed, err := ParseMoney(s)
			if err != nil {
				return err
			}
			m.Decimal = parsed.Decimal
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return ErrMalformedMoney
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// ClampQuantity 数量下限为 1
func ClampQuantity(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ClampQuantityFloat 浮点数量向下取整后钳位，非有限值按 1 处理
func ClampQuantityFloat(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 1
	}
	return ClampQuantity(int(math.Floor(n)))
}
