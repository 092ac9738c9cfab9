package auth

import (
	"context"

	"github.com/MichaelAJay/go-logger"
	"github.com/MichaelAJay/go-metrics"
	interfaces "github.com/MichaelAJay/go-provider-registration"
	"github.com/MichaelAJay/go-provider-registration/errors"
)

// CredentialPrompt is a SecurityAuthority that asks the user for credentials
// through an authentication window of the UI service.
type CredentialPrompt struct {
	ui       interfaces.UIService
	provider interfaces.ProtocolProvider
	logger   logger.Logger
	metrics  metrics.Registry
}

// NewCredentialPrompt creates a prompt that requests windows from ui on behalf of provider.
// The prompt keeps non-owning references to both.
func NewCredentialPrompt(
	ui interfaces.UIService,
	provider interfaces.ProtocolProvider,
	logger logger.Logger,
	metrics metrics.Registry,
) *CredentialPrompt {
	return &CredentialPrompt{
		ui:       ui,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// ObtainCredentials shows an authentication window for realm and blocks until the
// user dismisses it. The window fills defaults in place and, when the user
// confirms, the same record is returned. No validation is performed here.
//
// A missing window or a window dismissed without confirmation yields an
// authentication canceled error and nil credentials. A nil defaults record is
// replaced by an empty one so the window and the caller share the same record.
func (p *CredentialPrompt) ObtainCredentials(ctx context.Context, realm string, defaults *interfaces.UserCredentials) (*interfaces.UserCredentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewAuthenticationCanceledErrorWithCause(realm, err)
	}

	if defaults == nil {
		defaults = &interfaces.UserCredentials{}
	}

	window := p.ui.GetAuthenticationWindow(p.provider, realm, defaults)
	if window == nil {
		p.logger.Warn("No authentication window available",
			logger.Field{Key: "realm", Value: realm},
			logger.Field{Key: "account_id", Value: p.provider.AccountID()})
		p.counter("credential_prompt.window_unavailable").Inc()
		return nil, errors.NewAuthenticationCanceledError(realm)
	}

	p.counter("credential_prompt.shown").Inc()
	window.SetVisible(true)

	if reporter, ok := window.(interfaces.CancelReporter); ok && reporter.Canceled() {
		p.logger.Info("Authentication window dismissed by user",
			logger.Field{Key: "realm", Value: realm},
			logger.Field{Key: "account_id", Value: p.provider.AccountID()})
		p.counter("credential_prompt.canceled").Inc()
		return nil, errors.NewAuthenticationCanceledError(realm)
	}

	p.counter("credential_prompt.confirmed").Inc()
	return defaults, nil
}

func (p *CredentialPrompt) counter(name string) metrics.Counter {
	return p.metrics.Counter(metrics.Options{
		Name: name,
		Tags: map[string]string{
			"protocol": p.provider.ProtocolName(),
		},
	})
}

// Ensure CredentialPrompt implements SecurityAuthority
var _ interfaces.SecurityAuthority = (*CredentialPrompt)(nil)
