package domain

import "github.com/shopspring/decimal"

// Status tags the outcome of a ledger mutation.
type Status string

// All outcomes a ledger mutation can report.
const (
	StatusSuccess          Status = "SUCCESS"
	StatusFailure          Status = "FAILURE"
	StatusMaxBalanceExceed Status = "MAX_BALANCE_EXCEED"
	StatusNotNegative      Status = "NOT_NEGATIVE"
	StatusNotEnough        Status = "NOT_ENOUGH"
	StatusNotImplemented   Status = "NOT_IMPLEMENTED"
)

// Result reports the outcome of a single ledger mutation.
//
// Validation failures are reported here rather than as errors so that
// callers can branch on Status without error handling. Message is empty
// on success.
type Result struct {
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
	Status  Status          `json:"status"`
	Message string          `json:"message,omitempty"`
}

// Success reports whether the mutation went through.
func (r Result) Success() bool {
	return r.Status == StatusSuccess
}
