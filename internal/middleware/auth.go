package middleware

import (
	"net/http"
	"strings"

	"agency-server/internal/common/httpx"
	"agency-server/internal/model"
	"agency-server/internal/service"
	"agency-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

// ActiveUserCheck 逐请求按令牌邮箱重查用户并校验激活状态
// 授权状态不做缓存：封禁立即生效
func ActiveUserCheck(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
			c.Abort()
			return
		}

		emailStr, ok := email.(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户标识"})
			c.Abort()
			return
		}

		user, err := svc.ResolveActiveUser(emailStr)
		if err != nil {
			httpx.WriteServiceError(c, err, "无法验证登录凭证")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出 ActiveUserCheck 放入上下文的用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
