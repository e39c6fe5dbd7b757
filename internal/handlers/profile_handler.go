package handlers

import (
	"net/http"

	"tappyid_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes registers the public engagement counter endpoints. These
// are called from visitor-facing cards, so they carry no session.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/assinante/profile")
	{
		profile.POST("/view", h.RegisterView)
		profile.POST("/click", h.RegisterClick)
		profile.POST("/share", h.RegisterShare)
	}
}

// RegisterView incrementa o contador de visualizações do perfil.
func (h *ProfileHandler) RegisterView(c *gin.Context) {
	userID, ok := h.RequireQuery(c, "userId")
	if !ok {
		return
	}

	if err := h.profileService.RegisterView(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterClick incrementa o contador de cliques. O parâmetro opcional
// "type" alimenta a contagem por tipo de link.
func (h *ProfileHandler) RegisterClick(c *gin.Context) {
	userID, ok := h.RequireQuery(c, "userId")
	if !ok {
		return
	}
	clickType := c.Query("type")

	if err := h.profileService.RegisterClick(h.GetDB(c), userID, clickType); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterShare incrementa o contador de compartilhamentos.
func (h *ProfileHandler) RegisterShare(c *gin.Context) {
	userID, ok := h.RequireQuery(c, "userId")
	if !ok {
		return
	}

	if err := h.profileService.RegisterShare(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
