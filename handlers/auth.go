package handlers

import (
	"net/http"
	"time"

	"barberbook/config"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler serves admin login and logout.
type AuthHandler struct {
	Sessions *redis.Client
}

func NewAuthHandler(sessions *redis.Client) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// Login handles POST /api/auth/login. A wrong password yields success=false
// with 200, matching the dashboard client's expectations.
func (h *AuthHandler) Login(c *gin.Context) {
	var in models.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if !checkAdminPassword(in.Password) {
		c.JSON(http.StatusOK, models.LoginResponse{Success: false})
		return
	}

	token, err := utils.GenerateAdminToken(adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	if err := utils.SaveAdminSession(h.Sessions, utils.HashToken(token), adminTokenTTL); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
}

// Logout handles POST /api/auth/logout and revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenHash, ok := c.Get("adminTokenHash")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no active session")
		return
	}
	if err := utils.DeleteAdminSession(h.Sessions, tokenHash.(string)); err != nil {
		utils.GetLogger().Warn("failed to revoke admin session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// checkAdminPassword verifies against the bcrypt hash when configured,
// otherwise against the plain development password.
func checkAdminPassword(password string) bool {
	if hash := config.AppConfig.AdminPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	plain := config.AppConfig.AdminPassword
	return plain != "" && password == plain
}
