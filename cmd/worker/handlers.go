package main

import (
	"github.com/hibiken/asynq"

	paymentJob "bookstore-storefront/internal/domains/payment/job"
	"bookstore-storefront/internal/shared"
	"bookstore-storefront/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Payment
	settleCheck *paymentJob.SettleCheckHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		// The reconciler records the outcome exactly like the return page does
		settleCheck: paymentJob.NewSettleCheckHandler(c.OrderService, c.Sessions, c.Reconciler),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Payment tasks
	mux.HandleFunc(shared.TypePaymentSettleCheck, h.settleCheck.ProcessTask)
}
