// Package session obtains and refreshes the backend session token used
// for authenticated platform calls.
package session

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config configures the backend session.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Service hands out an auto-refreshing token source for the platform.
type Service struct {
	cfg    clientcredentials.Config
	source oauth2.TokenSource
}

// NewService creates a session service from config.
func NewService(cfg Config) (*Service, error) {
	if cfg.TokenURL == "" {
		return nil, fmt.Errorf("token URL is required")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("client credentials are required")
	}

	return &Service{
		cfg: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		},
	}, nil
}

// TokenSource returns a reusable, auto-refreshing token source.
func (s *Service) TokenSource(ctx context.Context) oauth2.TokenSource {
	if s.source == nil {
		s.source = oauth2.ReuseTokenSource(nil, s.cfg.TokenSource(ctx))
	}
	return s.source
}

// Token fetches a currently valid token, refreshing if necessary.
func (s *Service) Token(ctx context.Context) (*oauth2.Token, error) {
	token, err := s.TokenSource(ctx).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain session token: %w", err)
	}
	return token, nil
}
