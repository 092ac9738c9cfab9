// Package interfaces contains the external interface definitions used by the go-provider-registration module.
// This file serves as a central location for the contracts between a protocol provider,
// the security authority it consults and the UI service that prompts the user.
package interfaces

import "context"

// UserCredentials carries the values an authentication window proposes to the user
// and, once the window is dismissed, the values the user entered.
// The record is mutated in place by the window that displays it.
type UserCredentials struct {
	// UserName is the account identifier presented to the provider
	UserName string `json:"user_name"`

	// Password is the secret. Stored as bytes so it can be wiped after use.
	Password []byte `json:"-"`

	// StorePassword is the "remember" flag chosen by the user
	StorePassword bool `json:"store_password"`
}

// PasswordString returns the secret as a string.
func (c *UserCredentials) PasswordString() string {
	if c == nil {
		return ""
	}
	return string(c.Password)
}

// ClearPassword zeroes the secret bytes and drops them.
func (c *UserCredentials) ClearPassword() {
	if c == nil {
		return
	}
	for i := range c.Password {
		c.Password[i] = 0
	}
	c.Password = nil
}

// SecurityAuthority is consulted by a protocol provider whenever it needs
// credentials to complete a registration.
type SecurityAuthority interface {
	// ObtainCredentials returns credentials for the given realm. The defaults
	// record holds the values to propose to the user.
	ObtainCredentials(ctx context.Context, realm string, defaults *UserCredentials) (*UserCredentials, error)
}

// ProtocolProvider is the handle of a single protocol account.
// Implementations live outside this module (SIP, XMPP, ...).
type ProtocolProvider interface {
	// Register blocks until the account is registered with its service or the
	// attempt fails. Failures should carry an errors.AppError code so they can be
	// classified.
	Register(ctx context.Context, authority SecurityAuthority) error

	// AccountID returns the identifier of the account this provider serves
	AccountID() string

	// ProtocolName returns the protocol name, e.g. "SIP"
	ProtocolName() string
}

// UIService hands out the windows used to interact with the user.
type UIService interface {
	// GetAuthenticationWindow returns a window that asks the user for the
	// credentials of provider in realm, pre-filled from defaults.
	// A nil window means the UI cannot prompt right now.
	GetAuthenticationWindow(provider ProtocolProvider, realm string, defaults *UserCredentials) ExportedWindow
}

// ExportedWindow is a window exported by a UIService.
type ExportedWindow interface {
	// SetVisible shows or hides the window. Showing an authentication window
	// blocks until the user dismisses it.
	SetVisible(visible bool)
}

// CancelReporter is implemented by windows that know whether the user
// dismissed them without confirming.
type CancelReporter interface {
	Canceled() bool
}
