// Package pricing computes order money amounts. All arithmetic is decimal;
// amounts are rounded half-up to 2 places at the persistence boundary.
package pricing

import (
	"github.com/shopspring/decimal"
)

// CommissionRate is the fixed platform commission (20%), not configurable
// per restaurant.
var CommissionRate = decimal.RequireFromString("0.20")

// Line is one order line. UnitPrice is already post-discount; Discount is
// informational at this layer.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
	Discount  decimal.Decimal
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum.Round(2)
}

func PlatformFee(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(CommissionRate).Round(2)
}

func Total(subtotal, fee decimal.Decimal) decimal.Decimal {
	return subtotal.Add(fee)
}
