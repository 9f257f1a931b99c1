package analytics

import "sort"

// SeriesPoint 图表上的一个点
type SeriesPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// NamedSeries 带名称的有序数据序列
type NamedSeries struct {
	ID    string        `json:"id"`
	Label string        `json:"label,omitempty"`
	Data  []SeriesPoint `json:"data"`
}

// Assemble 将季度桶转换为按时间排序的点序列
func Assemble(buckets Buckets) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(buckets))
	for label, b := range buckets {
		points = append(points, SeriesPoint{X: label, Y: b.Mean()})
	}
	sortPoints(points)
	return points
}

// AssembleSeries 聚合并组装一条命名序列
func AssembleSeries(id string, samples []Sample) NamedSeries {
	return NamedSeries{ID: id, Data: Assemble(Aggregate(samples))}
}

func sortPoints(points []SeriesPoint) {
	sort.Slice(points, func(i, j int) bool {
		return labelLess(points[i].X, points[j].X)
	})
}

// SortLabels 按季度先后排序标签
func SortLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		return labelLess(labels[i], labels[j])
	})
}
