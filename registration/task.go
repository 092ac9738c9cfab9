// Package registration registers a protocol account in the background so the
// caller, usually the system tray, keeps running while the provider talks to its service.
package registration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MichaelAJay/go-logger"
	"github.com/MichaelAJay/go-metrics"
	interfaces "github.com/MichaelAJay/go-provider-registration"
	"github.com/MichaelAJay/go-provider-registration/auth"
	"github.com/MichaelAJay/go-provider-registration/errors"
	"github.com/google/uuid"
)

// Task is a one-shot registration of a single provider.
// It holds non-owning references to the provider and the UI service.
type Task struct {
	id        string
	provider  interfaces.ProtocolProvider
	authority interfaces.SecurityAuthority
	logger    logger.Logger
	metrics   metrics.Registry

	once sync.Once
	done chan struct{}
	err  error
}

// NewTask creates a registration task for provider. Credentials requested by the
// provider during registration are obtained through ui.
func NewTask(
	ui interfaces.UIService,
	provider interfaces.ProtocolProvider,
	logger logger.Logger,
	metrics metrics.Registry,
) *Task {
	return newTask(provider, auth.NewCredentialPrompt(ui, provider, logger, metrics), logger, metrics)
}

func newTask(
	provider interfaces.ProtocolProvider,
	authority interfaces.SecurityAuthority,
	log logger.Logger,
	metrics metrics.Registry,
) *Task {
	id := uuid.New().String()
	return &Task{
		id:        id,
		provider:  provider,
		authority: authority,
		logger: log.With(
			logger.Field{Key: "task_id", Value: id},
			logger.Field{Key: "account_id", Value: provider.AccountID()},
			logger.Field{Key: "protocol", Value: provider.ProtocolName()},
		),
		metrics: metrics,
		done:    make(chan struct{}),
	}
}

// ID returns the unique identifier attached to the task's log lines.
func (t *Task) ID() string {
	return t.id
}

// Authority returns the security authority handed to the provider.
func (t *Task) Authority() interfaces.SecurityAuthority {
	return t.authority
}

// Start schedules the registration and returns immediately. Only the first call
// has an effect.
func (t *Task) Start(ctx context.Context) {
	t.once.Do(func() {
		go t.run(ctx)
	})
}

// Done returns a channel that is closed once the registration attempt finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the registration attempt finished.
func (t *Task) Wait() {
	<-t.done
}

// Err returns the registration failure, if any. It is only meaningful after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)

	startTime := time.Now()
	defer func() {
		timer := t.metrics.Timer(metrics.Options{
			Name: "registration_task.register",
		})
		timer.RecordSince(startTime)
	}()

	t.err = t.register(ctx)
	if t.err != nil {
		t.logFailure(t.err)
		return
	}

	t.logger.Info("Provider registered")
	counter := t.metrics.Counter(metrics.Options{
		Name: "registration_task.register.success",
	})
	counter.Inc()
}

// register calls the provider, turning a panic into an internal error.
func (t *Task) register(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewOperationFailedError(errors.CodeInternalError,
				"provider panicked during registration", fmt.Errorf("%v", r))
		}
	}()
	return t.provider.Register(ctx, t.authority)
}

func (t *Task) logFailure(err error) {
	category := Classify(err)

	t.logger.Error(category.Message(),
		logger.Field{Key: "category", Value: string(category)},
		logger.Field{Key: "error", Value: err})

	counter := t.metrics.Counter(metrics.Options{
		Name: "registration_task.register.failed",
		Tags: map[string]string{
			"category": string(category),
		},
	})
	counter.Inc()
}
