package handlers

import (
	"net/http"

	"tappyid_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	*BaseHandler
	planService services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService services.PlanService) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		planService: planService,
	}
}

// RegisterRoutes registers the public plan catalog endpoints.
func (h *PlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	planos := rg.Group("/planos")
	{
		planos.GET("", h.ListPlans)
		planos.GET("/tappy", h.ListTappyPlans)
	}
}

// ListPlans devolve os planos ativos em ordem crescente de preço.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.planService.ListPlans(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// ListTappyPlans devolve os planos no formato de apresentação (preço
// localizado, parcelas, selo popular, URL de checkout). Catálogo vazio é
// uma condição distinta (404) e falha de consulta responde 503.
func (h *PlanHandler) ListTappyPlans(c *gin.Context) {
	plans, err := h.planService.ListPlanPresentation(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}
