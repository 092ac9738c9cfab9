// Package terminal provides a UIService that prompts for credentials on the
// controlling terminal. It is used when the client runs without a graphical tray.
package terminal

import (
	"os"
	"sync"

	"github.com/MichaelAJay/go-config"
	"github.com/MichaelAJay/go-logger"
	interfaces "github.com/MichaelAJay/go-provider-registration"
	"github.com/charmbracelet/huh"
)

// Config contains configuration options for the terminal UI service.
type Config struct {
	// Title shown above the credential form
	Title string `json:"title" default:"Authentication required"`

	// AllowStorePassword shows the "remember password" question
	AllowStorePassword bool `json:"allow_store_password" default:"true"`

	// Accessible renders the form in huh's screen-reader friendly mode
	Accessible bool `json:"accessible" default:"false"`
}

// UIService hands out terminal authentication windows.
// Only one window is displayed at a time, whichever goroutine asks for it.
type UIService struct {
	logger logger.Logger
	config *Config

	// mu serializes access to the terminal
	mu sync.Mutex

	runForm func(form *huh.Form, values *formValues) error
}

// NewUIService creates a terminal UI service.
func NewUIService(cfg config.Config, logger logger.Logger) *UIService {
	return &UIService{
		logger:  logger,
		config:  loadConfig(cfg),
		runForm: runHuhForm,
	}
}

// IsInteractive checks if we're running in an interactive terminal.
func (s *UIService) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// GetAuthenticationWindow returns a window asking for the credentials of provider in realm.
func (s *UIService) GetAuthenticationWindow(
	provider interfaces.ProtocolProvider,
	realm string,
	defaults *interfaces.UserCredentials,
) interfaces.ExportedWindow {
	if defaults == nil {
		defaults = &interfaces.UserCredentials{}
	}
	return &Window{
		service:  s,
		provider: provider,
		realm:    realm,
		creds:    defaults,
	}
}

func runHuhForm(form *huh.Form, _ *formValues) error {
	return form.Run()
}

// loadConfig loads terminal UI configuration with defaults.
func loadConfig(cfg config.Config) *Config {
	uiConfig := &Config{
		Title:              "Authentication required",
		AllowStorePassword: true,
		Accessible:         false,
	}

	if cfg == nil {
		return uiConfig
	}

	if title, ok := cfg.GetString("terminal_ui.title"); ok && title != "" {
		uiConfig.Title = title
	}
	if allow, ok := cfg.GetBool("terminal_ui.allow_store_password"); ok {
		uiConfig.AllowStorePassword = allow
	}
	if accessible, ok := cfg.GetBool("terminal_ui.accessible"); ok {
		uiConfig.Accessible = accessible
	}

	return uiConfig
}

// Ensure UIService implements interfaces.UIService
var _ interfaces.UIService = (*UIService)(nil)
