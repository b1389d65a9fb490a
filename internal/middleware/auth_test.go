package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency-server/internal/config"
	"agency-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("AGENCY_SERVER_MODE", "debug")
	config.InitConfig(t.TempDir())

	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		email := c.GetString("email")
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

// 测试内容：缺失或格式错误的认证头被拒绝。
func TestJWTAuth_RejectsBadHeaders(t *testing.T) {
	r := setupAuthRouter(t)

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer bad.token.here"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("期望 401（header=%q），实际为 %d", header, w.Code)
		}
	}
}

// 测试内容：合法令牌放行并注入邮箱。
func TestJWTAuth_AllowsValidToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := utils.GenerateLoginToken("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：过期令牌被拒绝。
func TestJWTAuth_RejectsExpiredToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := utils.GenerateLoginToken("alice@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}
