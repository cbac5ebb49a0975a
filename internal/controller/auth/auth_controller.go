package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/internal/controller"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/middleware"
	"github.com/pathway-infinity/pathway-api/internal/model"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService  service.AuthService
	tokenService service.TokenService
	cookieSecure bool
}

func NewAuthController(as service.AuthService, ts service.TokenService, cfg *config.Config) *AuthController {
	return &AuthController{
		authService:  as,
		tokenService: ts,
		cookieSecure: cfg.Session.CookieSecure,
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	var resp dto.UserResponse
	_ = copier.Copy(&resp, u)
	return resp
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user with a bcrypt-hashed password. Does not start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.SignupRequest true "Name, email and password (min 8 characters)"
// @Success 200 {object} dto.SignupResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid email, short password or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Registration failed"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "auth.signup", err)
		return
	}
	user, err := c.authService.Signup(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		controller.RespondError(ctx, "auth.signup", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SignupResponse{User: toUserResponse(user), Message: "User created successfully"})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and sets the httpOnly auth-token session cookie (valid for 7 days).
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse "Email and password are required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "auth.login", err)
		return
	}
	user, err := c.authService.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		controller.RespondError(ctx, "auth.login", err)
		return
	}
	token, _, err := c.tokenService.Issue(user)
	if err != nil {
		controller.RespondError(ctx, "auth.login", err)
		return
	}
	c.setSessionCookie(ctx, token, int(c.tokenService.TTL().Seconds()))
	log.Info().Str("user_id", user.ID).Msg("AuthController: user logged in")
	ctx.JSON(http.StatusOK, dto.UserEnvelope{User: toUserResponse(user)})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie and revokes the token when a session store is configured.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if tok := middleware.TokenFromRequest(ctx); tok != "" {
		if claims, err := c.tokenService.Parse(ctx.Request.Context(), tok); err == nil {
			if err := c.tokenService.Revoke(ctx.Request.Context(), claims); err != nil {
				log.Error().Err(err).Msg("AuthController: failed to revoke session")
			}
		}
	}
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session godoc
// @Summary Current user
// @Description Returns the user of the current session.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	claims, ok := middleware.CurrentSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	user, err := c.authService.CurrentUser(ctx.Request.Context(), claims.UID)
	if err != nil {
		controller.RespondError(ctx, "auth.session", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserEnvelope{User: toUserResponse(user)})
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", c.cookieSecure, true)
}
