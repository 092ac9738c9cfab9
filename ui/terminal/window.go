package terminal

import (
	"errors"
	"fmt"

	"github.com/MichaelAJay/go-logger"
	interfaces "github.com/MichaelAJay/go-provider-registration"
	"github.com/MichaelAJay/go-provider-registration/validation"
	"github.com/charmbracelet/huh"
)

// Window is a terminal authentication window. Showing it runs a form that edits
// the credentials record in place.
type Window struct {
	service  *UIService
	provider interfaces.ProtocolProvider
	realm    string
	creds    *interfaces.UserCredentials

	canceled bool
}

// formValues holds what the user types before it is copied into the record.
type formValues struct {
	userName      string
	password      string
	storePassword bool
}

// SetVisible shows the window and blocks until the form is submitted or aborted.
// Hiding is a no-op since the form is gone once SetVisible(true) returns.
func (w *Window) SetVisible(visible bool) {
	if !visible {
		return
	}

	w.service.mu.Lock()
	defer w.service.mu.Unlock()

	values := &formValues{
		userName:      w.creds.UserName,
		password:      w.creds.PasswordString(),
		storePassword: w.creds.StorePassword,
	}

	err := w.service.runForm(w.buildForm(values), values)
	if err != nil {
		w.canceled = true
		if !errors.Is(err, huh.ErrUserAborted) {
			w.service.logger.Error("Authentication form failed",
				logger.Field{Key: "realm", Value: w.realm},
				logger.Field{Key: "error", Value: err})
		}
		return
	}

	w.canceled = false
	w.creds.UserName = validation.SanitizeString(values.userName)
	w.creds.ClearPassword()
	w.creds.Password = []byte(values.password)
	if w.service.config.AllowStorePassword {
		w.creds.StorePassword = values.storePassword
	} else {
		w.creds.StorePassword = false
	}
}

// Canceled reports whether the last showing was dismissed without submitting.
func (w *Window) Canceled() bool {
	return w.canceled
}

func (w *Window) description() string {
	account := w.provider.AccountID()
	if w.realm == "" {
		return fmt.Sprintf("%s account %s", w.provider.ProtocolName(), account)
	}
	return fmt.Sprintf("%s account %s\nRealm: %s", w.provider.ProtocolName(), account, w.realm)
}

func (w *Window) buildForm(values *formValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("User name").
			Value(&values.userName).
			Validate(validation.ValidateUserName),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&values.password),
	}

	if w.service.config.AllowStorePassword {
		fields = append(fields, huh.NewConfirm().
			Title("Remember password?").
			Affirmative("Yes").
			Negative("No").
			Value(&values.storePassword))
	}

	group := huh.NewGroup(fields...).
		Title(w.service.config.Title).
		Description(w.description())

	return huh.NewForm(group).WithAccessible(w.service.config.Accessible)
}

// Ensure Window implements the window interfaces
var (
	_ interfaces.ExportedWindow = (*Window)(nil)
	_ interfaces.CancelReporter = (*Window)(nil)
)
