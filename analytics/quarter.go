package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quarter 日历季度
type Quarter struct {
	Year   int
	Number int // 1-4
}

// QuarterOf 返回日期所在的季度（使用日期自身的时区）
func QuarterOf(t time.Time) Quarter {
	return Quarter{
		Year:   t.Year(),
		Number: (int(t.Month())-1)/3 + 1,
	}
}

// String 格式化为 "Qn YYYY"
func (q Quarter) String() string {
	return fmt.Sprintf("Q%d %d", q.Number, q.Year)
}

// Before 按 (年, 季度) 比较
func (q Quarter) Before(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}
	return q.Number < other.Number
}

// Label 将日期映射为季度标签
func Label(t time.Time) string {
	return QuarterOf(t).String()
}

// LabelSample 解析原始日期并生成季度标签，无法解析时返回 false
func LabelSample(raw interface{}) (string, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return "", false
	}
	return Label(t), true
}

// ParseQuarter 将 "Qn YYYY" 解析回季度
func ParseQuarter(label string) (Quarter, bool) {
	parts := strings.Fields(label)
	if len(parts) != 2 || len(parts[0]) != 2 || parts[0][0] != 'Q' {
		return Quarter{}, false
	}
	n := int(parts[0][1] - '0')
	if n < 1 || n > 4 {
		return Quarter{}, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return Quarter{}, false
	}
	return Quarter{Year: year, Number: n}, true
}

// labelLess 季度标签排序规则：有效标签按时间先后，无效标签排在最后并按字典序
func labelLess(a, b string) bool {
	qa, okA := ParseQuarter(a)
	qb, okB := ParseQuarter(b)
	switch {
	case okA && okB:
		if qa == qb {
			return a < b
		}
		return qa.Before(qb)
	case okA:
		return true
	case okB:
		return false
	default:
		return a < b
	}
}

// 支持的日期字符串格式
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// 标签固定为四位年份，超出范围的日期视为无效
const (
	minYear = 1000
	maxYear = 9999
)

// ValidDate 日期非零且年份在四位数范围内
func ValidDate(t time.Time) bool {
	return !t.IsZero() && t.Year() >= minYear && t.Year() <= maxYear
}

// ParseDate 解析上游传来的日期，无效日期返回 false
func ParseDate(raw interface{}) (time.Time, bool) {
	t, ok := parseDate(raw)
	if !ok || !ValidDate(t) {
		return time.Time{}, false
	}
	return t, true
}

func parseDate(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case interface{ Time() time.Time }:
		return v.Time(), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
