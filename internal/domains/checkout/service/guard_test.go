package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore-storefront/internal/domains/checkout/model"
)

type fakeAuth struct {
	authenticated bool
	remembered    []string
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.authenticated }

func (f *fakeAuth) RememberRedirect(_ context.Context, path string) error {
	f.remembered = append(f.remembered, path)
	return nil
}

type fakeAddresses struct {
	hasAny bool
	err    error
	calls  int
}

func (f *fakeAddresses) HasAny(context.Context) (bool, error) {
	f.calls++
	return f.hasAny, f.err
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	auth := &fakeAuth{}
	addresses := &fakeAddresses{hasAny: true}

	res := NewGuard(auth, addresses).Check(context.Background(), "/checkout")

	assert.Equal(t, model.OutcomeLoginRequired, res.Outcome)
	assert.False(t, res.Allowed)
	assert.Equal(t, "/login?redirect=%2Fcheckout", res.RedirectTo)
	assert.Equal(t, []string{"/checkout"}, auth.remembered)
	assert.Zero(t, addresses.calls, "address lookup must not run before authentication")
}

func TestGuard_AddressPrompt(t *testing.T) {
	tests := []struct {
		name      string
		addresses *fakeAddresses
	}{
		{name: "empty address list", addresses: &fakeAddresses{hasAny: false}},
		{name: "address lookup fails", addresses: &fakeAddresses{err: errors.New("backend unavailable")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewGuard(&fakeAuth{authenticated: true}, tt.addresses).Check(context.Background(), "")

			assert.Equal(t, model.OutcomeAddressRequired, res.Outcome)
			assert.False(t, res.Allowed)
			if assert.NotNil(t, res.Prompt) {
				assert.Equal(t, "/account/addresses/new?returnTo=%2Fcheckout", res.Prompt.ConfirmTo)
			}
		})
	}
}

func TestGuard_Allowed(t *testing.T) {
	res := NewGuard(&fakeAuth{authenticated: true}, &fakeAddresses{hasAny: true}).Check(context.Background(), "/checkout")

	assert.Equal(t, model.Allowed(), res)
	assert.True(t, res.Allowed)
	assert.Nil(t, res.Prompt)
}
