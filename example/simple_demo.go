package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MichaelAJay/go-config"
	"github.com/MichaelAJay/go-logger"
	"github.com/MichaelAJay/go-metrics"
	interfaces "github.com/MichaelAJay/go-provider-registration"
	"github.com/MichaelAJay/go-provider-registration/errors"
	"github.com/MichaelAJay/go-provider-registration/registration"
	"github.com/MichaelAJay/go-provider-registration/ui/terminal"
)

// This demo registers a pretend SIP account in the background and prompts for
// its password on the terminal, the way the tray does it with a real provider.

// demoProvider asks its authority for credentials and accepts any non-empty password.
type demoProvider struct {
	account string
}

func (p *demoProvider) Register(ctx context.Context, authority interfaces.SecurityAuthority) error {
	defaults := &interfaces.UserCredentials{UserName: p.account}

	creds, err := authority.ObtainCredentials(ctx, "sip.example.com", defaults)
	if err != nil {
		return errors.NewOperationFailedError(errors.CodeGeneralError, "no credentials supplied", err)
	}
	defer creds.ClearPassword()

	if len(creds.Password) == 0 {
		return errors.NewOperationFailedError(errors.CodeInvalidAccountProperties, "empty password", nil)
	}

	// Pretend to talk to the registrar.
	time.Sleep(200 * time.Millisecond)
	return nil
}

func (p *demoProvider) AccountID() string    { return p.account }
func (p *demoProvider) ProtocolName() string { return "SIP" }

func main() {
	fmt.Println("=== Provider Registration Demo ===")

	log := logger.New(logger.DefaultConfig)
	registry := metrics.NewRegistry()

	cfg := config.New()
	if err := cfg.Load(&config.DefaultSource{Values: map[string]any{
		"terminal_ui.title":                "SIP sign in",
		"terminal_ui.allow_store_password": true,
	}}); err != nil {
		log.Fatal("Failed to load configuration", logger.Field{Key: "error", Value: err})
	}

	ui := terminal.NewUIService(cfg, log)
	if !ui.IsInteractive() {
		fmt.Println("stdin is not a terminal; the credential prompt needs one")
		os.Exit(1)
	}

	task := registration.NewTask(ui, &demoProvider{account: "alice@example.com"}, log, registry)
	task.Start(context.Background())
	fmt.Printf("✓ Registration task %s started, caller keeps running\n", task.ID())

	task.Wait()
	if err := task.Err(); err != nil {
		fmt.Printf("✗ Registration failed (%s)\n", registration.Classify(err))
		return
	}
	fmt.Println("✓ Registered")
}
