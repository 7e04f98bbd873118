package shared

// Queues
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// Background task types (asynq)
const (
	TypePaymentSettleCheck = "payment:settle_check"
)

// SettleCheckPayload asks the worker to re-read an order whose payment
// had not settled when the return page gave up waiting.
type SettleCheckPayload struct {
	SessionID string `json:"sessionId"`
	OrderCode string `json:"orderCode"`
}
