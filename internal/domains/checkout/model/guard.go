package model

import "net/url"

// Outcome of the checkout precondition check
type Outcome string

const (
	OutcomeAllowed         Outcome = "allowed"
	OutcomeLoginRequired   Outcome = "login_required"
	OutcomeAddressRequired Outcome = "address_required"
)

const (
	CheckoutPath    = "/checkout"
	LoginPath       = "/login"
	AddressFormPath = "/account/addresses/new"
)

// AddressPrompt is the modal offered when no shipping address exists
type AddressPrompt struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	ConfirmLabel string `json:"confirmLabel"`
	ConfirmTo    string `json:"confirmTo"`
	CancelLabel  string `json:"cancelLabel"`
}

type GuardResult struct {
	Outcome    Outcome        `json:"outcome"`
	Allowed    bool           `json:"allowed"`
	RedirectTo string         `json:"redirectTo,omitempty"`
	Prompt     *AddressPrompt `json:"prompt,omitempty"`
}

func Allowed() GuardResult {
	return GuardResult{Outcome: OutcomeAllowed, Allowed: true}
}

// LoginRequired redirects to login carrying returnPath
func LoginRequired(returnPath string) GuardResult {
	return GuardResult{
		Outcome:    OutcomeLoginRequired,
		RedirectTo: LoginPath + "?redirect=" + url.QueryEscape(returnPath),
	}
}

// AddressRequired routes to address entry and back to returnPath
func AddressRequired(returnPath string) GuardResult {
	return GuardResult{
		Outcome: OutcomeAddressRequired,
		Prompt: &AddressPrompt{
			Title:        "Shipping address required",
			Message:      "Add a shipping address before placing your order.",
			ConfirmLabel: "Add address",
			ConfirmTo:    AddressFormPath + "?returnTo=" + url.QueryEscape(returnPath),
			CancelLabel:  "Back to cart",
		},
	}
}
