package handler

import (
	"net/http"
	"strings"

	"github.com/erp/erp-system/internal/application/identity"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	cookie      config.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, cookie config.CookieConfig, logger *zap.Logger) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = middleware.DefaultCookieName
	}
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
		cookie:      cookie,
	}
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with username and password. The token is returned and also set as an HttpOnly cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=LoginResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setTokenCookie(c, result.Token, int(h.cookie.MaxAge.Seconds()))
	h.Success(c, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	})
}

// Logout godoc
// @Summary      User logout
// @Description  Revoke the current token and clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	input := identity.LogoutInput{}
	if claims := middleware.GetJWTClaims(c); claims != nil {
		input.TokenJTI = claims.ID
		input.TokenTTL = claims.GetRemainingTTL()
		input.UserID, _ = claims.GetUserUUID()
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.setTokenCookie(c, "", -1)
	h.Message(c, "退出登录成功")
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user as currently stored
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "未登录")
		return
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "无效的令牌")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toUserResponse(*user))
}

// Bootstrap godoc
// @Summary      Bootstrap status
// @Description  Report whether the initial administrator can still be created
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=BootstrapResponse}
// @Router       /auth/bootstrap [get]
func (h *AuthHandler) Bootstrap(c *gin.Context) {
	status, err := h.authService.BootstrapStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, BootstrapResponse{
		HasUsers:    status.HasUsers,
		Initialized: status.Initialized,
		State:       string(status.State),
	})
}

// InitAdmin godoc
// @Summary      Create the initial administrator
// @Description  Create the first administrator account. Only possible once for the lifetime of the system.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body InitAdminRequest true "Administrator credentials"
// @Success      201 {object} dto.Response{data=UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/init-admin [post]
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	var req InitAdminRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.authService.InitAdmin(c.Request.Context(), identity.InitAdminInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toUserResponse(*user))
}

// CheckUsers godoc
// @Summary      Check for users
// @Description  Report whether any user account exists
// @Tags         users
// @Produce      json
// @Success      200 {object} dto.Response{data=HasUsersResponse}
// @Router       /users/check [get]
func (h *AuthHandler) CheckUsers(c *gin.Context) {
	hasUsers, err := h.authService.HasUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, HasUsersResponse{HasUsers: hasUsers})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, h.cookie.HTTPOnly)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
