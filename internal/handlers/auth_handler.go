package handlers

import (
	"net/http"

	"tappyid_backend/internal/auth"
	"tappyid_backend/internal/dto"
	"tappyid_backend/internal/middleware"
	"tappyid_backend/internal/models"
	"tappyid_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.JWTService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokens *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
	}
}

// RegisterRoutes registers the authentication endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/verificar-login", h.VerifyLogin)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/session", middleware.SessionMiddleware(h.tokens), h.Session)
	}
}

// Register cria uma conta de assinante com perfil zerado.
// @Summary      Registro de assinante
// @Accept       json
// @Produce      json
// @Success      201 {object} dto.RegisterResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Conta criada com sucesso",
		User:    *user,
	})
}

// VerifyLogin valida credenciais e devolve o destino pós-login. A sessão
// em si é estabelecida pelo endpoint /login.
func (h *AuthHandler) VerifyLogin(c *gin.Context) {
	var req dto.VerifyLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.VerifyLogin(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Login valida credenciais e grava o cookie de sessão assinado.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.VerifyLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.SetCookie(auth.SessionCookieName, response.Token, h.tokens.CookieMaxAge(), "/", "", false, true)
	c.JSON(http.StatusOK, response)
}

// Logout limpa o cookie de sessão.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada"})
}

// Session devolve as claims da sessão corrente.
func (h *AuthHandler) Session(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	role, _ := c.Get(middleware.CtxRole)
	profileID := c.GetString(middleware.CtxProfileID)

	c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:    userID,
		Role:      roleString(role),
		ProfileID: profileID,
	})
}

func roleString(v interface{}) string {
	switch r := v.(type) {
	case models.UserRole:
		return string(r)
	case string:
		return r
	default:
		return ""
	}
}
