// Package claimview decides which screen a claim page shows for a QR code,
// and follows a claim while its mint is pending.
package claimview

// View is the state of a claim page.
type View string

const (
	ViewNeedCode    View = "need-code"
	ViewFormEntry   View = "form-entry"
	ViewPendingMint View = "pending-mint"
	ViewFinished    View = "finished"
	ViewError       View = "error"
)

// Input gathers what is known about a claim once verification completed.
type Input struct {
	// Claim is nil when no claim was fetched.
	Claim *Claim

	// FetchFailed is set when the last claim fetch failed.
	FetchFailed bool

	// HasToken is set when the beneficiary already holds the event token.
	HasToken bool
}

// Select maps the input to a view. Rows are checked in order; the first match wins.
func Select(in Input) View {
	switch c := in.Claim; {
	case c == nil && in.FetchFailed:
		return ViewError
	case c == nil:
		return ViewNeedCode
	case !c.Claimed:
		return ViewFormEntry
	case c.TxStatus == TxStatusPassed || in.HasToken || c.ClaimedWithEmail():
		return ViewFinished
	default:
		return ViewPendingMint
	}
}
