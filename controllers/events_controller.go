package controllers

import (
	"io"

	"handyman-orders/realtime"

	"github.com/gin-gonic/gin"
)

type EventsController struct {
	hub *realtime.Hub
}

func NewEventsController(hub *realtime.Hub) *EventsController {
	return &EventsController{hub: hub}
}

// @Summary Subscribe to order updates
// @Description Server-sent event stream; an OrderUpdated event is pushed whenever an order is created or changes status. No backlog is replayed: fetch the current list separately on connect.
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (ctrl *EventsController) Stream(c *gin.Context) {
	events, cancel := ctrl.hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case order, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("OrderUpdated", order)
			return true
		}
	})
}
