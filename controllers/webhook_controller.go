package controllers

import (
	"net/http"

	"handyman-orders/models"

	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	service OrderWorkflow
}

func NewWebhookController(service OrderWorkflow) *WebhookController {
	return &WebhookController{service: service}
}

// @Summary Payment webhook
// @Description Mark an order as Paid; idempotent on repeated delivery
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param payment body models.PaymentWebhookRequest true "Payment notification"
// @Param X-Webhook-Key header string true "Shared webhook secret"
// @Success 200 {object} models.Order
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /webhooks/payment [post]
func (ctrl *WebhookController) PaymentWebhook(c *gin.Context) {
	var req models.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body."})
		return
	}

	order, err := ctrl.service.MarkPaid(c.Request.Context(), req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
