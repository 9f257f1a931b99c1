package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MetricName 指标名称
type MetricName string

const (
	MetricInflow           MetricName = "inflow"            // 现金流入
	MetricOutflow          MetricName = "outflow"           // 现金流出
	MetricRevenue          MetricName = "revenue"           // 收入
	MetricExpenses         MetricName = "expenses"          // 支出
	MetricEquity           MetricName = "equity"            // 权益
	MetricImprovementScore MetricName = "improvement_score" // 改进得分
)

// ValidMetrics 允许录入的指标
var ValidMetrics = map[MetricName]bool{
	MetricInflow:           true,
	MetricOutflow:          true,
	MetricRevenue:          true,
	MetricExpenses:         true,
	MetricEquity:           true,
	MetricImprovementScore: true,
}

// MetricRecord 企业上报的一条带日期的指标记录。
// Value 按原样保存，读取时再做解析；历史导入的数据 Date 也可能是字符串。
type MetricRecord struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EnterpriseID string             `json:"enterpriseId" bson:"enterpriseId"`
	Metric       MetricName         `json:"metric" bson:"metric"`
	Date         interface{}        `json:"date" bson:"date"`
	Value        interface{}        `json:"value" bson:"value"`
	CreatedBy    string             `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// MetricRecordRequest 指标录入请求
type MetricRecordRequest struct {
	Metric MetricName  `json:"metric" binding:"required"`
	Date   interface{} `json:"date"`
	Value  interface{} `json:"value"`
}

// SelfAssessment 企业自评记录
type SelfAssessment struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EnterpriseID   string             `json:"enterpriseId" bson:"enterpriseId"`
	EnterpriseName string             `json:"enterpriseName" bson:"enterpriseName"`
	Category       string             `json:"category" bson:"category"`
	Score          interface{}        `json:"score" bson:"score"`
	AssessedAt     time.Time          `json:"assessedAt" bson:"assessedAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
}

// SelfAssessmentRequest 自评录入请求
type SelfAssessmentRequest struct {
	Category string      `json:"category" binding:"required"`
	Score    interface{} `json:"score"`
}
