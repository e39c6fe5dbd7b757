package handlers

import (
	"net/http"

	"tappyid_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// RegisterRoutes registers the back-office sales report. requireSession is
// the session middleware built at wiring time.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	vendas := rg.Group("/dashboard/vendas")
	vendas.Use(requireSession)
	{
		vendas.GET("/pedidos", h.ListRecentOrders)
	}
}

// ListRecentOrders devolve os 100 pedidos mais recentes com os métodos de
// pagamento já traduzidos para exibição.
func (h *OrderHandler) ListRecentOrders(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	orders, err := h.orderService.RecentOrders(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
