package mocks

import (
	"context"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
	"github.com/BerniceZTT/mentorship_analytics/models"

	"github.com/stretchr/testify/mock"
)

// AnalyticsRepository 测试用的数据访问桩
type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) FindEnterprise(ctx context.Context, id string) (*models.Enterprise, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*models.Enterprise); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) ListEnterprises(ctx context.Context, keyword string) ([]models.Enterprise, error) {
	args := m.Called(ctx, keyword)
	if list, ok := args.Get(0).([]models.Enterprise); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) CreateEnterprise(ctx context.Context, enterprise *models.Enterprise) error {
	return m.Called(ctx, enterprise).Error(0)
}

func (m *AnalyticsRepository) FindMetricSamples(ctx context.Context, enterpriseID string, metric models.MetricName) ([]analytics.Sample, error) {
	args := m.Called(ctx, enterpriseID, metric)
	if samples, ok := args.Get(0).([]analytics.Sample); ok {
		return samples, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) FindMetricSamplesByEnterprise(ctx context.Context, metric models.MetricName) (map[string][]analytics.Sample, error) {
	args := m.Called(ctx, metric)
	if samples, ok := args.Get(0).(map[string][]analytics.Sample); ok {
		return samples, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) InsertMetricRecords(ctx context.Context, records []models.MetricRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *AnalyticsRepository) FindSelfAssessments(ctx context.Context, enterpriseIDs ...string) ([]analytics.CategoryScore, error) {
	args := m.Called(ctx, enterpriseIDs)
	if scores, ok := args.Get(0).([]analytics.CategoryScore); ok {
		return scores, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) InsertSelfAssessment(ctx context.Context, assessment *models.SelfAssessment) error {
	return m.Called(ctx, assessment).Error(0)
}

func (m *AnalyticsRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AnalyticsRepository) InsertOperationLog(ctx context.Context, entry *models.OperationLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *AnalyticsRepository) DeleteOperationLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
