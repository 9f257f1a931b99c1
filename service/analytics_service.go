package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/google/uuid"
)

// seriesDef 一条季度序列对应的指标
type seriesDef struct {
	id     string
	metric models.MetricName
}

var (
	cashFlowSeries = []seriesDef{
		{models.SeriesInflow, models.MetricInflow},
		{models.SeriesOutflow, models.MetricOutflow},
	}
	revenueExpenseSeries = []seriesDef{
		{models.SeriesRevenue, models.MetricRevenue},
		{models.SeriesExpenses, models.MetricExpenses},
	}
	equitySeries      = []seriesDef{{models.SeriesEquity, models.MetricEquity}}
	improvementSeries = []seriesDef{{models.SeriesImprovementScore, models.MetricImprovementScore}}
)

// AnalyticsService 看板统计服务。每次调用都从存储重新计算，不做缓存。
type AnalyticsService struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now}
}

// CashFlow 现金流入/流出季度图
func (s *AnalyticsService) CashFlow(ctx context.Context, enterpriseID string) (*models.TimeSeriesChart, error) {
	return s.enterpriseChart(ctx, enterpriseID, cashFlowSeries)
}

// RevenueExpenses 收入/支出季度图
func (s *AnalyticsService) RevenueExpenses(ctx context.Context, enterpriseID string) (*models.TimeSeriesChart, error) {
	return s.enterpriseChart(ctx, enterpriseID, revenueExpenseSeries)
}

// Equity 权益季度图
func (s *AnalyticsService) Equity(ctx context.Context, enterpriseID string) (*models.TimeSeriesChart, error) {
	return s.enterpriseChart(ctx, enterpriseID, equitySeries)
}

// ImprovementScores 改进得分季度图
func (s *AnalyticsService) ImprovementScores(ctx context.Context, enterpriseID string) (*models.TimeSeriesChart, error) {
	return s.enterpriseChart(ctx, enterpriseID, improvementSeries)
}

func (s *AnalyticsService) enterpriseChart(ctx context.Context, enterpriseID string, defs []seriesDef) (*models.TimeSeriesChart, error) {
	if _, err := s.repo.FindEnterprise(ctx, enterpriseID); err != nil {
		return nil, err
	}
	return s.buildChart(ctx, enterpriseID, defs)
}

// buildChart 依次加载各指标样本并组装为季度序列
func (s *AnalyticsService) buildChart(ctx context.Context, enterpriseID string, defs []seriesDef) (*models.TimeSeriesChart, error) {
	series := make([]analytics.NamedSeries, 0, len(defs))
	for _, def := range defs {
		samples, err := s.repo.FindMetricSamples(ctx, enterpriseID, def.metric)
		if err != nil {
			return nil, fmt.Errorf("加载%s数据失败: %w", def.id, err)
		}
		logMalformedSamples(enterpriseID, def.metric, samples)
		series = append(series, analytics.AssembleSeries(def.id, samples))
	}

	return &models.TimeSeriesChart{
		Series: series,
		Rows:   analytics.Merge(series),
	}, nil
}

// logMalformedSamples 记录被丢弃或被置零的样本数量
func logMalformedSamples(enterpriseID string, metric models.MetricName, samples []analytics.Sample) {
	_, dropped, zeroed := analytics.Normalize(samples)
	if dropped == 0 && zeroed == 0 {
		return
	}
	utils.Logger.Warn().
		Str("enterpriseId", enterpriseID).
		Str("metric", string(metric)).
		Int("total", len(samples)).
		Int("invalidDates", dropped).
		Int("invalidValues", zeroed).
		Msg("指标数据存在无效样本")
}

// HeatMap 全部企业的自评热力图
func (s *AnalyticsService) HeatMap(ctx context.Context) (*models.HeatMapResponse, error) {
	scores, err := s.repo.FindSelfAssessments(ctx)
	if err != nil {
		return nil, err
	}

	rows := analytics.BuildHeatMap(scores)
	categories := []string{}
	if len(rows) > 0 {
		for _, p := range rows[0].Data {
			categories = append(categories, p.X)
		}
	}

	return &models.HeatMapResponse{Categories: categories, Rows: rows}, nil
}

// CompareEnterprises 两个企业的自评雷达图对比
func (s *AnalyticsService) CompareEnterprises(ctx context.Context, primaryID, secondaryID string) (*models.ComparisonResponse, error) {
	if primaryID == "" || secondaryID == "" {
		return nil, utils.CreateBadRequestError("需要同时指定两个企业")
	}
	if primaryID == secondaryID {
		return nil, utils.CreateBadRequestError("不能与自身对比")
	}

	primary, err := s.repo.FindEnterprise(ctx, primaryID)
	if err != nil {
		return nil, err
	}
	secondary, err := s.repo.FindEnterprise(ctx, secondaryID)
	if err != nil {
		return nil, err
	}

	scores, err := s.repo.FindSelfAssessments(ctx, primaryID, secondaryID)
	if err != nil {
		return nil, err
	}

	comparison := analytics.CompareCategories(primaryID, secondaryID, scores)
	return &models.ComparisonResponse{
		Primary:    *primary,
		Secondary:  *secondary,
		Comparison: comparison,
		Radar:      comparison.Rows(),
	}, nil
}

// Leaderboard 按平均改进得分排名的企业排行榜
func (s *AnalyticsService) Leaderboard(ctx context.Context, page, limit int) (*analytics.LeaderboardPage, error) {
	enterprises, err := s.repo.ListEnterprises(ctx, "")
	if err != nil {
		return nil, err
	}

	samplesByEnterprise, err := s.repo.FindMetricSamplesByEnterprise(ctx, models.MetricImprovementScore)
	if err != nil {
		return nil, err
	}

	entries := make([]analytics.LeaderboardEntry, 0, len(enterprises))
	for _, e := range enterprises {
		id := e.ID.Hex()
		score, n := analytics.Mean(samplesByEnterprise[id])
		if n == 0 {
			continue
		}
		entries = append(entries, analytics.LeaderboardEntry{
			EntityID:   id,
			EntityName: e.Name,
			Score:      score,
			Samples:    n,
		})
	}

	result := analytics.Paginate(analytics.RankLeaderboard(entries), page, limit)
	return &result, nil
}

// Report 生成单个企业的报告数据包
func (s *AnalyticsService) Report(ctx context.Context, enterpriseID string) (*models.EnterpriseReport, error) {
	enterprise, err := s.repo.FindEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}

	report := &models.EnterpriseReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: s.now(),
		Enterprise:  *enterprise,
	}

	sections := []struct {
		target *models.TimeSeriesChart
		defs   []seriesDef
	}{
		{&report.CashFlow, cashFlowSeries},
		{&report.RevenueExpenses, revenueExpenseSeries},
		{&report.Equity, equitySeries},
		{&report.ImprovementScores, improvementSeries},
	}
	for _, section := range sections {
		chart, err := s.buildChart(ctx, enterpriseID, section.defs)
		if err != nil {
			return nil, err
		}
		*section.target = *chart
	}

	utils.Logger.Info().
		Str("enterpriseId", enterpriseID).
		Str("reportId", report.ReportID).
		Msg("企业报告已生成")

	return report, nil
}
