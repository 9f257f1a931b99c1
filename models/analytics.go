package models

import (
	"time"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
)

// 图表序列名称
const (
	SeriesInflow           = "Inflow"
	SeriesOutflow          = "Outflow"
	SeriesRevenue          = "Revenue"
	SeriesExpenses         = "Expenses"
	SeriesEquity           = "Equity"
	SeriesImprovementScore = "Improvement Score"
)

// TimeSeriesChart 季度图表数据
type TimeSeriesChart struct {
	Series []analytics.NamedSeries   `json:"series"`
	Rows   []analytics.ComparisonRow `json:"rows"`
}

// HeatMapResponse 自评热力图
type HeatMapResponse struct {
	Categories []string                `json:"categories"`
	Rows       []analytics.NamedSeries `json:"rows"`
}

// ComparisonResponse 两个企业的雷达图对比
type ComparisonResponse struct {
	Primary    Enterprise                   `json:"primary"`
	Secondary  Enterprise                   `json:"secondary"`
	Comparison analytics.CategoryComparison `json:"comparison"`
	Radar      []analytics.RadarRow         `json:"radar"`
}

// EnterpriseReport 企业报告数据包
type EnterpriseReport struct {
	ReportID          string          `json:"reportId"`
	GeneratedAt       time.Time       `json:"generatedAt"`
	Enterprise        Enterprise      `json:"enterprise"`
	CashFlow          TimeSeriesChart `json:"cashFlow"`
	RevenueExpenses   TimeSeriesChart `json:"revenueExpenses"`
	Equity            TimeSeriesChart `json:"equity"`
	ImprovementScores TimeSeriesChart `json:"improvementScores"`
}
