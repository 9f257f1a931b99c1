package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sample 上游原始观测值，日期和数值均保持存储时的形态
type Sample struct {
	Date  interface{} `json:"date" bson:"date"`
	Value interface{} `json:"value" bson:"value"`
}

// DatedSample 已规范化的观测值
type DatedSample struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Bucket 单个季度的累计值
type Bucket struct {
	Sum   decimal.Decimal
	Count int
}

// Mean 四舍五入后的均值，空桶返回 0
func (b *Bucket) Mean() float64 {
	if b == nil || b.Count == 0 {
		return 0
	}
	return roundHalfUp(b.Sum.Div(decimal.NewFromInt(int64(b.Count))), 0)
}

// Buckets 按季度标签索引的桶
type Buckets map[string]*Bucket

func (bs Buckets) add(label string, v decimal.Decimal) {
	b, ok := bs[label]
	if !ok {
		b = &Bucket{}
		bs[label] = b
	}
	b.Sum = b.Sum.Add(v)
	b.Count++
}

// Total 所有桶内的样本数
func (bs Buckets) Total() int {
	n := 0
	for _, b := range bs {
		n += b.Count
	}
	return n
}

// Aggregate 按季度对样本分组累加。
// 日期无效的样本被丢弃；数值无效的样本按 0 计入。
func Aggregate(samples []Sample) Buckets {
	buckets := make(Buckets)
	for _, s := range samples {
		label, ok := LabelSample(s.Date)
		if !ok {
			continue
		}
		v, _ := Coerce(s.Value)
		buckets.add(label, v)
	}
	return buckets
}

// AggregateDated Aggregate 的强类型版本
func AggregateDated(samples []DatedSample) Buckets {
	buckets := make(Buckets)
	for _, s := range samples {
		if !ValidDate(s.Date) {
			continue
		}
		buckets.add(Label(s.Date), s.Value)
	}
	return buckets
}

// Normalize 将原始样本转换为 DatedSample，并统计被丢弃和被置零的数量
func Normalize(samples []Sample) (out []DatedSample, droppedDates int, zeroedValues int) {
	out = make([]DatedSample, 0, len(samples))
	for _, s := range samples {
		t, ok := ParseDate(s.Date)
		if !ok {
			droppedDates++
			continue
		}
		v, ok := Coerce(s.Value)
		if !ok {
			zeroedValues++
		}
		out = append(out, DatedSample{Date: t, Value: v})
	}
	return out, droppedDates, zeroedValues
}

// Mean 样本集整体均值（保留两位小数），无有效样本时返回 0 和 0
func Mean(samples []Sample) (float64, int) {
	sum := decimal.Zero
	n := 0
	for _, s := range samples {
		if _, ok := ParseDate(s.Date); !ok {
			continue
		}
		v, _ := Coerce(s.Value)
		sum = sum.Add(v)
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return roundHalfUp(sum.Div(decimal.NewFromInt(int64(n))), 2), n
}
