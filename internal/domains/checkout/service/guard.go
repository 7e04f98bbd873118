package service

import (
	"context"

	authmodel "bookstore-storefront/internal/domains/auth/model"
	"bookstore-storefront/internal/domains/checkout/model"
	"bookstore-storefront/pkg/logger"
)

// AuthChecker is the part of the auth service the guard needs
type AuthChecker interface {
	IsAuthenticated(ctx context.Context) bool
	RememberRedirect(ctx context.Context, path string) error
}

// AddressChecker is the part of the address service the guard needs
type AddressChecker interface {
	HasAny(ctx context.Context) (bool, error)
}

type GuardInterface interface {
	// Check verifies authentication then address existence, short-circuiting
	// on the first unmet precondition.
	Check(ctx context.Context, returnPath string) model.GuardResult
}

type Guard struct {
	auth      AuthChecker
	addresses AddressChecker
}

func NewGuard(auth AuthChecker, addresses AddressChecker) GuardInterface {
	return &Guard{auth: auth, addresses: addresses}
}

func (g *Guard) Check(ctx context.Context, returnPath string) model.GuardResult {
	if returnPath == "" {
		returnPath = model.CheckoutPath
	}
	returnPath = authmodel.SafeRedirect(returnPath)

	// Step 1: authentication
	if !g.auth.IsAuthenticated(ctx) {
		if err := g.auth.RememberRedirect(ctx, returnPath); err != nil {
			logger.Error("Failed to remember post-login redirect", err)
		}
		return model.LoginRequired(returnPath)
	}

	// Step 2: at least one address. A failed lookup counts as "none".
	hasAddress, err := g.addresses.HasAny(ctx)
	if err != nil {
		logger.Warn("Address lookup failed, prompting for address", map[string]interface{}{
			"error": err.Error(),
		})
		return model.AddressRequired(returnPath)
	}
	if !hasAddress {
		return model.AddressRequired(returnPath)
	}

	return model.Allowed()
}
