package analytics

import "encoding/json"

// ComparisonRow 单个季度上多条序列对齐后的一行
type ComparisonRow struct {
	Quarter string
	Values  map[string]float64
}

// MarshalJSON 展开为 {"quarter": ..., "<序列ID>": 值}
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Values)+1)
	for id, v := range r.Values {
		flat[id] = v
	}
	flat["quarter"] = r.Quarter
	return json.Marshal(flat)
}

// Merge 将多条序列按季度合并为行，缺失值补 0。
// 同一序列在同一季度出现多次时求和，结果与输入顺序无关。
func Merge(series []NamedSeries) []ComparisonRow {
	byLabel := make(map[string]map[string]float64)
	ids := make(map[string]struct{}, len(series))
	for _, s := range series {
		ids[s.ID] = struct{}{}
		for _, p := range s.Data {
			values, ok := byLabel[p.X]
			if !ok {
				values = make(map[string]float64)
				byLabel[p.X] = values
			}
			values[s.ID] += p.Y
		}
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	SortLabels(labels)

	rows := make([]ComparisonRow, 0, len(labels))
	for _, label := range labels {
		values := make(map[string]float64, len(ids))
		for id := range ids {
			values[id] = byLabel[label][id]
		}
		rows = append(rows, ComparisonRow{Quarter: label, Values: values})
	}
	return rows
}
