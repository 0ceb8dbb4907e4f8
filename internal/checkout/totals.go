package checkout

import (
	"github.com/giftshop-next/internal/models"

	"github.com/shopspring/decimal"
)

// 订单金额规则常量（本范围内不按地区配置）
var (
	// TaxRate 税率 8%
	TaxRate = decimal.NewFromFloat(0.08)
	// FreeShippingThreshold 满 $50.00 免运费
	FreeShippingThreshold = models.NewMoneyFromCents(5000)
	// FlatShippingFee 未达门槛的固定运费 $5.99
	FlatShippingFee = models.NewMoneyFromCents(599)
)

// ComputeTotals 由小计推导订单金额汇总
// 购物车页与结算页展示的所有金额都必须经由本函数，公式只存在这一份。
func ComputeTotals(subtotal models.Money) models.OrderTotals {
	tax := models.NewMoneyFromDecimal(subtotal.Decimal.Mul(TaxRate))

	shipping := FlatShippingFee
	if subtotal.Decimal.GreaterThanOrEqual(FreeShippingThreshold.Decimal) {
		shipping = models.NewMoneyFromCents(0)
	}

	total := subtotal.Add(tax).Add(shipping)

	remaining := models.NewMoneyFromCents(0)
	if diff := FreeShippingThreshold.Decimal.Sub(subtotal.Decimal); diff.IsPositive() {
		remaining = models.NewMoneyFromDecimal(diff)
	}

	progress := 100.0
	if subtotal.Decimal.LessThan(FreeShippingThreshold.Decimal) {
		ratio, _ := subtotal.Decimal.Div(FreeShippingThreshold.Decimal).Mul(decimal.NewFromInt(100)).Float64()
		progress = ratio
	}

	return models.OrderTotals{
		Subtotal:             subtotal,
		Tax:                  tax,
		Shipping:             shipping,
		Total:                total,
		AmountToFreeShipping: remaining,
		FreeShippingProgress: progress,
	}
}
