package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gabapcia/claimwatch/internal/claimview"
)

var _ claimview.Backend = (*client)(nil)

// FetchClaim reads GET /actions/claim-qr?qr_hash={qrHash}.
func (c *client) FetchClaim(ctx context.Context, qrHash string) (claimview.Claim, error) {
	var claim claimview.Claim
	err := c.getJSON(ctx, "/actions/claim-qr", url.Values{"qr_hash": {qrHash}}, &claim)
	if errors.Is(err, ErrNotFound) {
		return claimview.Claim{}, fmt.Errorf("%w: %w", claimview.ErrClaimNotFound, err)
	}
	return claim, err
}

// FetchTokens reads GET /actions/scan/{owner}.
func (c *client) FetchTokens(ctx context.Context, owner string) ([]claimview.Token, error) {
	var tokens []claimview.Token
	if err := c.getJSON(ctx, "/actions/scan/"+url.PathEscape(owner), nil, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
