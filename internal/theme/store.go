package theme

import (
	"context"
	"log"
	"sync"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

// TokenStore holds the global theme tokens for one session. Load is a
// one-shot fetch at session start; there is no live reload, other
// sessions pick a changed token up on their next load.
type TokenStore struct {
	gw Gateway

	mu     sync.RWMutex
	tokens Tokens
}

func NewTokenStore(gw Gateway) *TokenStore {
	return &TokenStore{gw: gw, tokens: DefaultTokens()}
}

// Load fetches the settings document and applies its tokens. On any
// failure the built-in defaults stay applied and no error escapes, so
// the application remains usable without the backend. Cancelling ctx
// (user navigated away) counts as failure and discards the fetch.
func (s *TokenStore) Load(ctx context.Context) {
	settings, err := s.gw.GetSettings(ctx)
	if err != nil {
		log.Printf("⚠️ Warning: theme tokens unavailable, using defaults: %v", err)
		return
	}

	s.mu.Lock()
	s.tokens = TokensFrom(settings)
	s.mu.Unlock()
}

// Tokens returns the currently applied token set.
func (s *TokenStore) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// Save patches the global tokens on the settings document. The local
// set is updated only after the write is confirmed; on failure the
// caller gets the error and nothing changes locally.
func (s *TokenStore) Save(ctx context.Context, t Tokens) error {
	patch := &core.SettingsPatch{
		PrimaryColor:   &t.PrimaryColor,
		SecondaryColor: &t.SecondaryColor,
		FontFamily:     &t.FontFamily,
		ButtonStyle: &core.ButtonStyle{
			BorderRadius: t.ButtonBorderRadius,
			Padding:      t.ButtonPadding,
		},
	}
	if err := s.gw.UpdateSettings(ctx, patch); err != nil {
		return err
	}

	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()
	return nil
}
