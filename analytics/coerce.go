package analytics

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce 将上游数值转换为 decimal。
// 非数字或缺失的值按 0 处理，第二个返回值为 false 表示发生了替换。
func Coerce(raw interface{}) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case bool:
		if v {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	case json.Number:
		return fromString(string(v))
	case string:
		return fromString(v)
	case interface{ String() string }:
		// mongo Decimal128 等类型
		return fromString(v.String())
	default:
		return decimal.Zero, false
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func fromString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// roundHalfUp 与前端 Math.round 一致：.5 向正无穷取整
func roundHalfUp(d decimal.Decimal, places int32) float64 {
	shift := decimal.New(1, places)
	f, _ := d.Mul(shift).Add(decimal.NewFromFloat(0.5)).Floor().Div(shift).Float64()
	return f
}
