package service

// Outcome labels shared by the metrics recorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// MetricsRecorder counts business outcomes of account and wishlist operations.
type MetricsRecorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
	RecordWishlistChange(operation, outcome string)
}
