package claimview

import (
	"context"
	"errors"

	"github.com/gabapcia/claimwatch/internal/pkg/validator"
)

// ErrClaimNotFound is returned by a Backend when no claim matches the QR hash.
var ErrClaimNotFound = errors.New("claim not found")

// TxStatus is the mint transaction state reported with a claim.
type TxStatus string

const (
	TxStatusUnknown TxStatus = ""
	TxStatusPending TxStatus = "pending"
	TxStatusPassed  TxStatus = "passed"
	TxStatusFailed  TxStatus = "failed"
)

type Event struct {
	ID       int64  `json:"id"`
	FancyID  string `json:"fancy_id,omitempty"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Claim is a QR-code backed claim for an event token.
type Claim struct {
	ID          int64    `json:"id"`
	QRHash      string   `json:"qr_hash"`
	TxHash      string   `json:"tx_hash,omitempty"`
	TxStatus    TxStatus `json:"tx_status,omitempty"`
	EventID     int64    `json:"event_id"`
	Event       Event    `json:"event"`
	Beneficiary string   `json:"beneficiary,omitempty"`
	UserInput   string   `json:"user_input,omitempty"`
	Claimed     bool     `json:"claimed"`
	QueueUID    string   `json:"queue_uid,omitempty"`
}

// ClaimedWithEmail reports whether the claim was redeemed to an e-mail address.
func (c Claim) ClaimedWithEmail() bool {
	return c.Claimed && validator.IsEmail(c.UserInput)
}

// MintPending reports whether the backend has not settled the mint yet.
func (c Claim) MintPending() bool {
	return c.TxStatus == TxStatusUnknown || c.TxStatus == TxStatusPending
}

// beneficiary returns who the token is minted to: the address when set,
// otherwise a valid e-mail from the user input.
func (c Claim) beneficiary() string {
	if c.Beneficiary != "" {
		return c.Beneficiary
	}
	if validator.IsEmail(c.UserInput) {
		return c.UserInput
	}
	return ""
}

func (c Claim) eventID() int64 {
	if c.EventID != 0 {
		return c.EventID
	}
	return c.Event.ID
}

// Token is a collectible held by an address or e-mail.
type Token struct {
	TokenID string `json:"tokenId"`
	Owner   string `json:"owner"`
	Event   Event  `json:"event"`
	Layer   string `json:"layer,omitempty"`
}

// Backend reads claims and token holdings.
type Backend interface {
	// FetchClaim returns the claim for qrHash, or ErrClaimNotFound.
	FetchClaim(ctx context.Context, qrHash string) (Claim, error)

	// FetchTokens returns the tokens held by owner, an address or e-mail.
	FetchTokens(ctx context.Context, owner string) ([]Token, error)
}
