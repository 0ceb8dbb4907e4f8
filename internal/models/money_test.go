package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"$45.00", 4500, true},
		{"$0.99", 99, true},
		{"$120", 12000, true},
		{"$28.50", 2850, true},
		{"$89.99", 8999, true},
		{"45.00", 0, false},
		{"$$45.00", 0, false},
		{"$", 0, false},
		{"$abc", 0, false},
		{"$45.", 0, false},
		{"$.99", 0, false},
		{"$45.00 USD", 0, false},
		{"", 0, false},
		{"€45.00", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseMoney(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseMoney(%q) error = %v, want nil", tc.in, err)
			}
			if m.Cents() != tc.cents {
				t.Fatalf("ParseMoney(%q) = %d cents, want %d", tc.in, m.Cents(), tc.cents)
			}
			continue
		}
		if !errors.Is(err, ErrMalformedMoney) {
			t.Fatalf("ParseMoney(%q) error = %v, want ErrMalformedMoney", tc.in, err)
		}
	}
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyFromCents(4500)
	if got := m.String(); got != "$45.00" {
		t.Fatalf("String() = %q, want $45.00", got)
	}
	if got := NewMoneyFromCents(5).String(); got != "$0.05" {
		t.Fatalf("String() = %q, want $0.05", got)
	}
}

func TestMoneyArithmeticStaysExact(t *testing.T) {
	// 浮点实现下 0.10 累加会漂移，分值实现不会
	sum := Money{}
	dime := NewMoneyFromCents(10)
	for i := 0; i < 100; i++ {
		sum = sum.Add(dime)
	}
	if sum.Cents() != 1000 {
		t.Fatalf("sum = %d cents, want 1000", sum.Cents())
	}

	line := NewMoneyFromCents(2850).MulInt(3)
	if line.Cents() != 8550 {
		t.Fatalf("28.50 * 3 = %d cents, want 8550", line.Cents())
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, err := ParseMoney("$89.99")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"$89.99"` {
		t.Fatalf("marshal = %s, want \"$89.99\"", data)
	}

	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Cents() != 8999 {
		t.Fatalf("round trip = %d cents, want 8999", back.Cents())
	}

	// 数字与无符号字符串同样可解析
	if err := json.Unmarshal([]byte(`12.5`), &back); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if back.Cents() != 1250 {
		t.Fatalf("numeric unmarshal = %d cents, want 1250", back.Cents())
	}
}

func TestClampQuantity(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {7, 7},
	}
	for _, tc := range cases {
		if got := ClampQuantity(tc.in); got != tc.want {
			t.Fatalf("ClampQuantity(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if got := ClampQuantityFloat(2.9); got != 2 {
		t.Fatalf("ClampQuantityFloat(2.9) = %d, want 2", got)
	}
	if got := ClampQuantityFloat(-1.5); got != 1 {
		t.Fatalf("ClampQuantityFloat(-1.5) = %d, want 1", got)
	}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ClampQuantityFloat(bad); got != 1 {
			t.Fatalf("ClampQuantityFloat(%v) = %d, want 1", bad, got)
		}
	}
}
