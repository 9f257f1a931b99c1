package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/models"

	"github.com/dgrijalva/jwt-go"
)

var jwtSecret = []byte(defaultJWTKey())

// token 有效期
const tokenTTL = 24 * time.Hour * 7

func defaultJWTKey() string {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return key
	}
	return "your-secret-key"
}

// SetJWTSecret 设置JWT签名密钥
func SetJWTSecret(key string) {
	if key != "" {
		jwtSecret = []byte(key)
	}
}

// HashPassword 哈希密码
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// SimpleHash 简单哈希 (sha256 + 盐值)
func SimpleHash(password string, salt string) string {
	if salt == "" {
		salt = "69dc6ee0"
	}
	hash := sha256.Sum256([]byte(password + salt))
	return fmt.Sprintf("sha256$%s$%s", salt, hex.EncodeToString(hash[:]))
}

// VerifyPassword 验证密码，支持纯 SHA-256 和 sha256$salt$hash 两种格式
func VerifyPassword(password string, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) == 3 && parts[0] == "sha256" {
		return constantTimeEqual(SimpleHash(password, parts[1]), hashedPassword)
	}
	return constantTimeEqual(HashPassword(password), hashedPassword)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// GenerateToken 生成JWT令牌
func GenerateToken(user models.User) (string, error) {
	userID := user.ID.Hex()

	Logger.Info().
		Str("_id", userID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("开始生成token")

	claims := jwt.MapClaims{
		"id":           userID,
		"username":     user.Username,
		"role":         string(user.Role),
		"enterpriseId": user.EnterpriseID,
		"exp":          time.Now().Add(tokenTTL).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("生成token失败")
		return "", err
	}

	return tokenString, nil
}

// ParseToken 解析和验证JWT令牌
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的token")
}

// 各角色权限
var rolePermissions = map[models.UserRole]map[string][]string{
	models.UserRoleMENTOR: {
		"enterprises": {"read", "create"},
		"metrics":     {"create"},
		"analytics":   {"read"},
	},
	models.UserRoleENTREPRENEUR: {
		"enterprises": {"read"},
		"metrics":     {"create"},
		"analytics":   {"read"},
	},
}

// HasPermission 检查用户是否有权限
func HasPermission(role models.UserRole, resource string, action string) bool {
	// 超级管理员拥有所有权限
	if role == models.UserRoleSUPER_ADMIN {
		return true
	}

	if resourceActions, exists := rolePermissions[role]; exists {
		for _, a := range resourceActions[resource] {
			if a == action {
				return true
			}
		}
	}

	return false
}
