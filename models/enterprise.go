package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enterprise 社会企业
type Enterprise struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Sector     string             `json:"sector" bson:"sector"`
	Region     string             `json:"region,omitempty" bson:"region,omitempty"`
	MentorID   string             `json:"mentorId,omitempty" bson:"mentorId,omitempty"`
	MentorName string             `json:"mentorName,omitempty" bson:"mentorName,omitempty"`
	CohortYear int                `json:"cohortYear,omitempty" bson:"cohortYear,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EnterpriseCreateRequest 创建企业请求
type EnterpriseCreateRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Sector     string `json:"sector" binding:"required"`
	Region     string `json:"region"`
	CohortYear int    `json:"cohortYear" binding:"omitempty,min=2000,max=2100"`
}
