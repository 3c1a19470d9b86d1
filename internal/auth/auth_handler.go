package auth

import (
	"net/http"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var nowUnix = func() int64 { return time.Now().Unix() }

type Handler struct {
	service      Service
	secureCookie bool
}

// NewHandler: secureCookie marks the access_token cookie Secure (production).
func NewHandler(s Service, secureCookie bool) *Handler {
	return &Handler{service: s, secureCookie: secureCookie}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidationError, "Invalid input", err.Error())
		return
	}

	res, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// browser clients authenticate with the cookie, API clients with the bearer token
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Path:     "/",
		MaxAge:   int(res.ExpiresAt - nowUnix()),
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	userResp, err := ctrl.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}
