package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hatchery_backend/models"
)

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ObtainToken handles POST /api/auth/token/.
func ObtainToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pair, err := models.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active account found with the given credentials"})
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

// RefreshToken handles POST /api/auth/token/refresh/.
func RefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		access, err := models.RefreshAccess(c.Request.Context(), req.Refresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is invalid or expired"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": access})
	}
}
