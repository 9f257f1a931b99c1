package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalyticsRepository 看板数据访问接口
type AnalyticsRepository interface {
	FindEnterprise(ctx context.Context, id string) (*models.Enterprise, error)
	ListEnterprises(ctx context.Context, keyword string) ([]models.Enterprise, error)
	CreateEnterprise(ctx context.Context, enterprise *models.Enterprise) error

	FindMetricSamples(ctx context.Context, enterpriseID string, metric models.MetricName) ([]analytics.Sample, error)
	FindMetricSamplesByEnterprise(ctx context.Context, metric models.MetricName) (map[string][]analytics.Sample, error)
	InsertMetricRecords(ctx context.Context, records []models.MetricRecord) error

	FindSelfAssessments(ctx context.Context, enterpriseIDs ...string) ([]analytics.CategoryScore, error)
	InsertSelfAssessment(ctx context.Context, assessment *models.SelfAssessment) error

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertOperationLog(ctx context.Context, entry *models.OperationLog) error
	DeleteOperationLogsBefore(ctx context.Context, before time.Time) (int64, error)
}

// MongoAnalyticsRepository 基于MongoDB的实现
type MongoAnalyticsRepository struct {
	db *mongo.Database
}

// NewAnalyticsRepository 创建数据访问对象
func NewAnalyticsRepository(database *mongo.Database) *MongoAnalyticsRepository {
	return &MongoAnalyticsRepository{db: database}
}

// FindEnterprise 根据ID查找企业
func (r *MongoAnalyticsRepository) FindEnterprise(ctx context.Context, id string) (*models.Enterprise, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.CreateBadRequestError("无效的企业ID")
	}

	var enterprise models.Enterprise
	err = r.db.Collection(EnterprisesCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&enterprise)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("企业")
		}
		return nil, fmt.Errorf("查询企业失败: %w", err)
	}

	return &enterprise, nil
}

// ListEnterprises 查询企业列表，按名称排序
func (r *MongoAnalyticsRepository) ListEnterprises(ctx context.Context, keyword string) ([]models.Enterprise, error) {
	filter := bson.M{}
	if keyword != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(keyword), "$options": "i"}
	}

	result, err := ExecuteDbOperation(func() (interface{}, error) {
		cursor, err := r.db.Collection(EnterprisesCollection).Find(ctx, filter,
			options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		enterprises := []models.Enterprise{}
		if err := cursor.All(ctx, &enterprises); err != nil {
			return nil, err
		}
		return enterprises, nil
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("查询企业列表失败: %w", err)
	}

	return result.([]models.Enterprise), nil
}

// CreateEnterprise 新建企业
func (r *MongoAnalyticsRepository) CreateEnterprise(ctx context.Context, enterprise *models.Enterprise) error {
	res, err := r.db.Collection(EnterprisesCollection).InsertOne(ctx, enterprise)
	if err != nil {
		return fmt.Errorf("创建企业失败: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		enterprise.ID = id
	}
	utils.LogDbOperation("insert", EnterprisesCollection, nil, res.InsertedID)
	return nil
}

// FindMetricSamples 查询某企业某项指标的全部原始样本
func (r *MongoAnalyticsRepository) FindMetricSamples(ctx context.Context, enterpriseID string, metric models.MetricName) ([]analytics.Sample, error) {
	filter := bson.M{"enterpriseId": enterpriseID, "metric": metric}

	result, err := ExecuteDbOperation(func() (interface{}, error) {
		cursor, err := r.db.Collection(MetricRecordsCollection).Find(ctx, filter,
			options.Find().SetProjection(bson.M{"date": 1, "value": 1}))
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		samples := []analytics.Sample{}
		if err := cursor.All(ctx, &samples); err != nil {
			return nil, err
		}
		return samples, nil
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("查询指标数据失败: %w", err)
	}

	samples := result.([]analytics.Sample)
	utils.LogDbOperation("find", MetricRecordsCollection, filter, len(samples))
	return samples, nil
}

// FindMetricSamplesByEnterprise 查询某项指标的全部样本并按企业分组
func (r *MongoAnalyticsRepository) FindMetricSamplesByEnterprise(ctx context.Context, metric models.MetricName) (map[string][]analytics.Sample, error) {
	filter := bson.M{"metric": metric}

	cursor, err := r.db.Collection(MetricRecordsCollection).Find(ctx, filter,
		options.Find().SetProjection(bson.M{"enterpriseId": 1, "date": 1, "value": 1}))
	if err != nil {
		return nil, fmt.Errorf("查询指标数据失败: %w", err)
	}
	defer cursor.Close(ctx)

	grouped := make(map[string][]analytics.Sample)
	for cursor.Next(ctx) {
		var record models.MetricRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("解析指标数据失败: %w", err)
		}
		grouped[record.EnterpriseID] = append(grouped[record.EnterpriseID], analytics.Sample{
			Date:  record.Date,
			Value: record.Value,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("遍历指标数据失败: %w", err)
	}

	return grouped, nil
}

// InsertMetricRecords 批量写入指标记录
func (r *MongoAnalyticsRepository) InsertMetricRecords(ctx context.Context, records []models.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}

	res, err := r.db.Collection(MetricRecordsCollection).InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("写入指标记录失败: %w", err)
	}
	utils.LogDbOperation("insertMany", MetricRecordsCollection, nil, len(res.InsertedIDs))
	return nil
}

// FindSelfAssessments 查询自评记录，不传ID时返回全部
func (r *MongoAnalyticsRepository) FindSelfAssessments(ctx context.Context, enterpriseIDs ...string) ([]analytics.CategoryScore, error) {
	filter := bson.M{}
	if len(enterpriseIDs) > 0 {
		filter["enterpriseId"] = bson.M{"$in": enterpriseIDs}
	}

	cursor, err := r.db.Collection(SelfAssessmentsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询自评记录失败: %w", err)
	}
	defer cursor.Close(ctx)

	scores := []analytics.CategoryScore{}
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("解析自评记录失败: %w", err)
	}

	return scores, nil
}

// InsertSelfAssessment 写入一条自评记录
func (r *MongoAnalyticsRepository) InsertSelfAssessment(ctx context.Context, assessment *models.SelfAssessment) error {
	res, err := r.db.Collection(SelfAssessmentsCollection).InsertOne(ctx, assessment)
	if err != nil {
		return fmt.Errorf("写入自评记录失败: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = id
	}
	return nil
}

// FindUserByUsername 根据用户名查找用户，不存在时返回 nil
func (r *MongoAnalyticsRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.Collection(UsersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// InsertOperationLog 写入一条接口操作日志
func (r *MongoAnalyticsRepository) InsertOperationLog(ctx context.Context, entry *models.OperationLog) error {
	if _, err := r.db.Collection(ApiOperationLogsCollection).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("写入操作日志失败: %w", err)
	}
	return nil
}

// DeleteOperationLogsBefore 删除指定时间之前的操作日志
func (r *MongoAnalyticsRepository) DeleteOperationLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.Collection(ApiOperationLogsCollection).DeleteMany(ctx, bson.M{
		"operationTime": bson.M{"$lt": before},
	})
	if err != nil {
		return 0, fmt.Errorf("清理操作日志失败: %w", err)
	}
	return res.DeletedCount, nil
}
