package utils

import (
	"testing"

	"github.com/BerniceZTT/mentorship_analytics/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVerifyPassword(t *testing.T) {
	assert.True(t, VerifyPassword("admin123", HashPassword("admin123")))
	assert.False(t, VerifyPassword("admin124", HashPassword("admin123")))

	salted := SimpleHash("s3cret", "abcd")
	assert.True(t, VerifyPassword("s3cret", salted))
	assert.False(t, VerifyPassword("other", salted))

	// 明文不再被接受
	assert.False(t, VerifyPassword("plain", "plain"))
}

func TestGenerateAndParseToken(t *testing.T) {
	SetJWTSecret("test-secret")

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     "mentor-1",
		Role:         models.UserRoleMENTOR,
		EnterpriseID: "se-1",
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "mentor-1", claims["username"])
	assert.Equal(t, "MENTOR", claims["role"])
	assert.Equal(t, "se-1", claims["enterpriseId"])

	SetJWTSecret("another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
	SetJWTSecret("test-secret")
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role     models.UserRole
		resource string
		action   string
		allowed  bool
	}{
		{models.UserRoleSUPER_ADMIN, "anything", "delete", true},
		{models.UserRoleMENTOR, "enterprises", "create", true},
		{models.UserRoleMENTOR, "analytics", "read", true},
		{models.UserRoleENTREPRENEUR, "enterprises", "create", false},
		{models.UserRoleENTREPRENEUR, "metrics", "create", true},
		{models.UserRole("GUEST"), "analytics", "read", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, HasPermission(tt.role, tt.resource, tt.action), "%s %s:%s", tt.role, tt.resource, tt.action)
	}
}
