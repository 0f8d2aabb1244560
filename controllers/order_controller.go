package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"handyman-orders/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderWorkflow is what the HTTP layer needs from the order service.
type OrderWorkflow interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	MoveToInProgress(ctx context.Context, id uuid.UUID) (*models.Order, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type OrderController struct {
	service OrderWorkflow
}

func NewOrderController(service OrderWorkflow) *OrderController {
	return &OrderController{service: service}
}

func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var conflict *models.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: validation.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: conflict.Error()})
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found."})
	default:
		log.Printf("Order request failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error."})
	}
}

// @Summary List orders
// @Description Get all orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.service.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Create order
// @Description Create a new order in status New
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body."})
		return
	}

	order, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/orders/"+order.ID.String())
	c.JSON(http.StatusCreated, order)
}

// @Summary Move order to InProgress
// @Description Transition an order from New to InProgress
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/in-progress [post]
func (ctrl *OrderController) MoveToInProgress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid order ID."})
		return
	}

	order, err := ctrl.service.MoveToInProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
