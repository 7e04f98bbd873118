package model

import (
	"fmt"
	"time"

	"bookstore-storefront/internal/domains/payment/gateway/vnpay"
)

// Tone drives the visual treatment of a state
type Tone string

const (
	ToneNeutral   Tone = "neutral"
	ToneSuccess   Tone = "success"
	ToneFailure   Tone = "failure"
	ToneAmbiguous Tone = "ambiguous"
)

type Action struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

func ActionViewOrders() Action {
	return Action{Kind: "view_orders", Label: "View my orders", Href: "/orders"}
}

func ActionViewOrder(code string) Action {
	return Action{Kind: "view_order", Label: "View order", Href: "/orders/" + code}
}

func ActionRetryCheckout() Action {
	return Action{Kind: "retry_checkout", Label: "Try paying again", Href: "/checkout"}
}

func ActionGoHome() Action {
	return Action{Kind: "go_home", Label: "Back to store", Href: "/"}
}

// StatusView is what the return page renders for each state
type StatusView struct {
	State        State    `json:"state"`
	Tone         Tone     `json:"tone"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	OrderCode    string   `json:"orderCode,omitempty"`
	ResponseCode string   `json:"responseCode,omitempty"`
	BankCode     string   `json:"bankCode,omitempty"`
	Polls        int      `json:"polls"`
	ElapsedMs    int64    `json:"elapsedMs"`
	Actions      []Action `json:"actions"`
}

func VerifyingView() StatusView {
	return StatusView{
		State:   StateVerifying,
		Tone:    ToneNeutral,
		Title:   "Verifying your payment",
		Message: "Reading the result sent back by the payment gateway...",
		Actions: []Action{},
	}
}

// ErrorView: the redirect could not be interpreted
func ErrorView(reason string) StatusView {
	return StatusView{
		State:   StateError,
		Tone:    ToneFailure,
		Title:   "We couldn't read the payment result",
		Message: fmt.Sprintf("The payment response could not be verified (%s). Check your orders before paying again.", reason),
		Actions: []Action{ActionViewOrders(), ActionGoHome()},
	}
}

// GatewayFailedView: the gateway itself reported failure
func GatewayFailedView(d ReturnDescriptor) StatusView {
	return StatusView{
		State:        StateFailed,
		Tone:         ToneFailure,
		Title:        "Payment failed",
		Message:      fmt.Sprintf("The payment gateway reported a failure (code %s: %s). You have not been charged.", d.ResponseCode, vnpay.GetResponseMessage(d.ResponseCode)),
		OrderCode:    d.OrderCode,
		ResponseCode: d.ResponseCode,
		BankCode:     d.BankCode,
		Actions:      []Action{ActionRetryCheckout(), ActionViewOrders()},
	}
}

func WaitingView(d ReturnDescriptor, polls int, elapsed time.Duration) StatusView {
	return StatusView{
		State:        StateWaiting,
		Tone:         ToneNeutral,
		Title:        "Confirming your payment",
		Message:      "The gateway accepted your payment. Waiting for the bookstore to confirm it...",
		OrderCode:    d.OrderCode,
		ResponseCode: d.ResponseCode,
		BankCode:     d.BankCode,
		Polls:        polls,
		ElapsedMs:    elapsed.Milliseconds(),
		Actions:      []Action{},
	}
}

func SuccessView(d ReturnDescriptor, polls int, elapsed time.Duration) StatusView {
	return StatusView{
		State:        StateSuccess,
		Tone:         ToneSuccess,
		Title:        "Payment successful",
		Message:      fmt.Sprintf("Order %s has been paid. Thank you for your purchase!", d.OrderCode),
		OrderCode:    d.OrderCode,
		ResponseCode: d.ResponseCode,
		BankCode:     d.BankCode,
		Polls:        polls,
		ElapsedMs:    elapsed.Milliseconds(),
		Actions:      []Action{ActionViewOrder(d.OrderCode), ActionGoHome()},
	}
}

// SettledFailedView: the gateway said yes but the order settled negatively
func SettledFailedView(d ReturnDescriptor, paymentStatus string, polls int, elapsed time.Duration) StatusView {
	return StatusView{
		State:        StateFailed,
		Tone:         ToneFailure,
		Title:        "Payment not completed",
		Message:      fmt.Sprintf("The bookstore marked the payment for order %s as %s. If you were charged, the amount will be refunded.", d.OrderCode, paymentStatus),
		OrderCode:    d.OrderCode,
		ResponseCode: d.ResponseCode,
		BankCode:     d.BankCode,
		Polls:        polls,
		ElapsedMs:    elapsed.Milliseconds(),
		Actions:      []Action{ActionRetryCheckout(), ActionViewOrders()},
	}
}

// TimedOutView is a soft outcome: the order may still settle later
func TimedOutView(d ReturnDescriptor, polls int, elapsed time.Duration) StatusView {
	return StatusView{
		State:        StateTimedOut,
		Tone:         ToneAmbiguous,
		Title:        "Confirmation is taking longer than usual",
		Message:      fmt.Sprintf("Payment confirmation for order %s is delayed. Please check your orders again in a few minutes; do not pay twice.", d.OrderCode),
		OrderCode:    d.OrderCode,
		ResponseCode: d.ResponseCode,
		BankCode:     d.BankCode,
		Polls:        polls,
		ElapsedMs:    elapsed.Milliseconds(),
		Actions:      []Action{ActionViewOrders(), ActionGoHome()},
	}
}
