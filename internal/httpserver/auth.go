package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dollshop-backend/internal/service/auth"
)

const userIDKey = "userID"

// requireAuth validates the bearer access token and stashes the user id in
// the request context.
func requireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{StatusCode: http.StatusUnauthorized, Message: "missing bearer token"})
			return
		}
		userID, err := svc.VerifyAccess(strings.TrimSpace(token))
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type authResponse struct {
	User   any         `json:"user"`
	Tokens auth.Tokens `json:"tokens"`
}

func signupHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		u, tokens, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, authResponse{User: u, Tokens: tokens})
	}
}

func signinHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in signinRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		u, tokens, err := svc.Signin(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, authResponse{User: u, Tokens: tokens})
	}
}

func logoutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func refreshHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in refreshRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		tokens, err := svc.Refresh(c.Request.Context(), in.RefreshToken)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tokens)
	}
}
