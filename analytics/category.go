package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryScore 某个企业在某一评估类别下的一次得分
type CategoryScore struct {
	EntityID   string      `json:"entityId" bson:"enterpriseId"`
	EntityName string      `json:"entityName" bson:"enterpriseName"`
	Category   string      `json:"category" bson:"category"`
	Score      interface{} `json:"score" bson:"score"`
}

type meanAcc struct {
	sum   decimal.Decimal
	count int
}

func (m *meanAcc) add(raw interface{}) {
	v, _ := Coerce(raw)
	m.sum = m.sum.Add(v)
	m.count++
}

func (m *meanAcc) value() float64 {
	if m == nil || m.count == 0 {
		return 0
	}
	return roundHalfUp(m.sum.Div(decimal.NewFromInt(int64(m.count))), 2)
}

// BuildHeatMap 生成热力图数据：每个企业一行，每个类别一格，值为平均分。
// 行以企业ID区分，Label 为企业名称（缺失时用ID），按名称、ID 排序。
func BuildHeatMap(scores []CategoryScore) []NamedSeries {
	cells := make(map[string]map[string]*meanAcc)
	labels := make(map[string]string)
	categorySet := make(map[string]struct{})
	for _, s := range scores {
		row, ok := cells[s.EntityID]
		if !ok {
			row = make(map[string]*meanAcc)
			cells[s.EntityID] = row
		}
		if labels[s.EntityID] == "" {
			labels[s.EntityID] = s.EntityName
		}
		acc, ok := row[s.Category]
		if !ok {
			acc = &meanAcc{}
			row[s.Category] = acc
		}
		acc.add(s.Score)
		categorySet[s.Category] = struct{}{}
	}

	categories := sortedKeys(categorySet)
	result := make([]NamedSeries, 0, len(cells))
	for id, row := range cells {
		label := labels[id]
		if label == "" {
			label = id
		}
		data := make([]SeriesPoint, 0, len(categories))
		for _, category := range categories {
			data = append(data, SeriesPoint{X: category, Y: row[category].value()})
		}
		result = append(result, NamedSeries{ID: id, Label: label, Data: data})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Label != result[j].Label {
			return result[i].Label < result[j].Label
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// CategoryPair 两个企业在同一类别下的平均分
type CategoryPair struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
}

// CategoryComparison 两个企业的分类对比
type CategoryComparison struct {
	PrimaryID        string                  `json:"primaryId"`
	SecondaryID      string                  `json:"secondaryId"`
	ValuesByCategory map[string]CategoryPair `json:"valuesByCategory"`
}

// RadarRow 雷达图的一行
type RadarRow struct {
	Category  string  `json:"category"`
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
}

// CompareCategories 计算两个企业在各类别下的平均分，缺失一方补 0
func CompareCategories(primaryID, secondaryID string, scores []CategoryScore) CategoryComparison {
	primary := make(map[string]*meanAcc)
	secondary := make(map[string]*meanAcc)
	categorySet := make(map[string]struct{})

	for _, s := range scores {
		var target map[string]*meanAcc
		switch s.EntityID {
		case primaryID:
			target = primary
		case secondaryID:
			target = secondary
		default:
			continue
		}
		acc, ok := target[s.Category]
		if !ok {
			acc = &meanAcc{}
			target[s.Category] = acc
		}
		acc.add(s.Score)
		categorySet[s.Category] = struct{}{}
	}

	values := make(map[string]CategoryPair, len(categorySet))
	for category := range categorySet {
		values[category] = CategoryPair{
			Primary:   primary[category].value(),
			Secondary: secondary[category].value(),
		}
	}

	return CategoryComparison{
		PrimaryID:        primaryID,
		SecondaryID:      secondaryID,
		ValuesByCategory: values,
	}
}

// Rows 按类别名排序的雷达图数据
func (c CategoryComparison) Rows() []RadarRow {
	categories := make([]string, 0, len(c.ValuesByCategory))
	for category := range c.ValuesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rows := make([]RadarRow, 0, len(categories))
	for _, category := range categories {
		pair := c.ValuesByCategory[category]
		rows = append(rows, RadarRow{Category: category, Primary: pair.Primary, Secondary: pair.Secondary})
	}
	return rows
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
