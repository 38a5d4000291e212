package claimview

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/claimwatch/internal/pkg/logger"
	"github.com/gabapcia/claimwatch/internal/pkg/validator"
	"github.com/gabapcia/claimwatch/internal/pkg/x/chflow"
)

const defaultFollowInterval = 5 * time.Second

// Resolution is the outcome of resolving a QR hash.
type Resolution struct {
	QRHash   string `json:"qrHash"`
	View     View   `json:"view"`
	Claim    *Claim `json:"claim,omitempty"`
	HasToken bool   `json:"hasToken"`
	Error    string `json:"error,omitempty"`
}

type Service interface {
	// Resolve fetches the claim behind qrHash, checks whether its beneficiary
	// already holds the event token and selects the view.
	Resolve(ctx context.Context, qrHash string) (Resolution, error)

	// Follow resolves qrHash and keeps re-fetching the claim while its mint is
	// pending. The channel is closed once the view settles or ctx is done.
	Follow(ctx context.Context, qrHash string) (<-chan Resolution, error)
}

type service struct {
	backend        Backend
	followInterval time.Duration
}

var _ Service = (*service)(nil)

func normalize(qrHash string) (string, error) {
	qrHash = strings.ToLower(strings.TrimSpace(qrHash))
	if err := validator.Var(qrHash, "required,alphanum"); err != nil {
		return "", err
	}
	return qrHash, nil
}

func (s *service) Resolve(ctx context.Context, qrHash string) (Resolution, error) {
	qrHash, err := normalize(qrHash)
	if err != nil {
		return Resolution{}, err
	}

	return s.resolve(ctx, qrHash), nil
}

func (s *service) resolve(ctx context.Context, qrHash string) Resolution {
	res := Resolution{QRHash: qrHash}

	claim, err := s.backend.FetchClaim(ctx, qrHash)
	switch {
	case errors.Is(err, ErrClaimNotFound):
		res.Error = err.Error()
		res.View = Select(Input{})
		return res
	case err != nil:
		logger.Warn(ctx, "claim fetch failed", "claim.qr_hash", qrHash, "error", err)
		res.Error = err.Error()
		res.View = Select(Input{FetchFailed: true})
		return res
	}

	res.Claim = &claim
	res.HasToken = s.verify(ctx, claim)
	res.View = Select(Input{Claim: res.Claim, HasToken: res.HasToken})
	return res
}

// verify reports whether the claim's beneficiary already holds the event
// token. Lookup failures count as not holding it.
func (s *service) verify(ctx context.Context, claim Claim) bool {
	owner := claim.beneficiary()
	if owner == "" {
		return false
	}

	tokens, err := s.backend.FetchTokens(ctx, owner)
	if err != nil {
		logger.Warn(ctx, "token lookup failed", "claim.qr_hash", claim.QRHash, "error", err)
		return false
	}

	eventID := claim.eventID()
	return slices.ContainsFunc(tokens, func(t Token) bool {
		return t.Event.ID == eventID
	})
}

// shouldFollow reports whether a resolution warrants another fetch.
func shouldFollow(res Resolution) bool {
	return res.View == ViewPendingMint && res.Claim != nil && res.Claim.MintPending()
}

func (s *service) Follow(ctx context.Context, qrHash string) (<-chan Resolution, error) {
	qrHash, err := normalize(qrHash)
	if err != nil {
		return nil, err
	}

	resolutionCh := make(chan Resolution)
	go s.follow(ctx, qrHash, resolutionCh)

	return resolutionCh, nil
}

func (s *service) follow(ctx context.Context, qrHash string, out chan<- Resolution) {
	defer close(out)

	ctx = logger.Derive(ctx, "claim.qr_hash", qrHash)

	last := s.resolve(ctx, qrHash)
	if ctx.Err() != nil || !chflow.Send(ctx, out, last) {
		return
	}

	ticker := time.NewTicker(s.followInterval)
	defer ticker.Stop()

	for shouldFollow(last) {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		next := s.resolve(ctx, qrHash)
		if ctx.Err() != nil {
			return
		}

		// A failed refresh keeps the claim already shown.
		if next.Claim == nil {
			logger.Debug(ctx, "claim refresh failed, keeping last claim", "error", next.Error)
			continue
		}

		last = next
		if !chflow.Send(ctx, out, last) {
			return
		}
	}

	logger.Debug(ctx, "claim settled", "claim.view", last.View)
}

type config struct {
	followInterval time.Duration
}

type Option func(*config)

// New builds a claim Service backed by backend.
func New(backend Backend, opts ...Option) *service {
	cfg := config{
		followInterval: defaultFollowInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		backend:        backend,
		followInterval: cfg.followInterval,
	}
}

// WithFollowInterval sets how often Follow re-fetches a pending claim. Default: 5 seconds.
func WithFollowInterval(d time.Duration) Option {
	return func(c *config) {
		c.followInterval = d
	}
}
