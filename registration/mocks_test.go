package registration

import (
	"context"
	"sync"
	"time"

	"github.com/MichaelAJay/go-logger"
	"github.com/MichaelAJay/go-metrics"
	interfaces "github.com/MichaelAJay/go-provider-registration"
)

// mockProvider implements interfaces.ProtocolProvider for testing
type mockProvider struct {
	mu           sync.Mutex
	registerFunc func(ctx context.Context, authority interfaces.SecurityAuthority) error
	calls        int
	authorities  []interfaces.SecurityAuthority
}

func (m *mockProvider) Register(ctx context.Context, authority interfaces.SecurityAuthority) error {
	m.mu.Lock()
	m.calls++
	m.authorities = append(m.authorities, authority)
	fn := m.registerFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, authority)
	}
	return nil
}

func (m *mockProvider) AccountID() string    { return "alice@example.com" }
func (m *mockProvider) ProtocolName() string { return "SIP" }

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockUIService implements interfaces.UIService for testing
type mockUIService struct {
	window interfaces.ExportedWindow
}

func (m *mockUIService) GetAuthenticationWindow(provider interfaces.ProtocolProvider, realm string, defaults *interfaces.UserCredentials) interfaces.ExportedWindow {
	return m.window
}

// mockWindow fills in credentials when shown
type mockWindow struct {
	onShow func()
}

func (m *mockWindow) SetVisible(visible bool) {
	if visible && m.onShow != nil {
		m.onShow()
	}
}

// LogEntry is a captured log line
type LogEntry struct {
	Level   string
	Message string
	Fields  []logger.Field
}

// field returns the value of key, searching the entry's fields
func (e LogEntry) field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

type logStore struct {
	mu   sync.Mutex
	logs []LogEntry
}

// MockLogger implements logger.Logger for testing
type MockLogger struct {
	store  *logStore
	fields []logger.Field
}

func NewMockLogger() *MockLogger {
	return &MockLogger{store: &logStore{}}
}

func (m *MockLogger) record(level, msg string, fields []logger.Field) {
	all := append(append([]logger.Field{}, m.fields...), fields...)
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.logs = append(m.store.logs, LogEntry{Level: level, Message: msg, Fields: all})
}

func (m *MockLogger) Debug(msg string, fields ...logger.Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logger.Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logger.Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logger.Field) { m.record("ERROR", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...logger.Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) With(fields ...logger.Field) logger.Logger {
	return &MockLogger{
		store:  m.store,
		fields: append(append([]logger.Field{}, m.fields...), fields...),
	}
}

func (m *MockLogger) WithContext(ctx context.Context) logger.Logger {
	return m
}

func (m *MockLogger) Entries(level string) []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var entries []LogEntry
	for _, e := range m.store.logs {
		if e.Level == level {
			entries = append(entries, e)
		}
	}
	return entries
}

// MockMetrics implements metrics.Registry for testing
type MockMetrics struct {
	mu       sync.Mutex
	counters map[string]*MockCounter
	timers   map[string]*MockTimer
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		counters: make(map[string]*MockCounter),
		timers:   make(map[string]*MockTimer),
	}
}

func counterKey(opts metrics.Options) string {
	key := opts.Name
	for k, v := range opts.Tags {
		key += "," + k + "=" + v
	}
	return key
}

func (m *MockMetrics) Counter(opts metrics.Options) metrics.Counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := counterKey(opts)
	if counter, exists := m.counters[key]; exists {
		return counter
	}
	counter := &MockCounter{name: opts.Name}
	m.counters[key] = counter
	return counter
}

func (m *MockMetrics) Timer(opts metrics.Options) metrics.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if timer, exists := m.timers[opts.Name]; exists {
		return timer
	}
	timer := &MockTimer{name: opts.Name}
	m.timers[opts.Name] = timer
	return timer
}

func (m *MockMetrics) Gauge(opts metrics.Options) metrics.Gauge {
	return &MockGauge{name: opts.Name}
}

func (m *MockMetrics) Histogram(opts metrics.Options) metrics.Histogram {
	return &MockHistogram{name: opts.Name}
}

func (m *MockMetrics) Unregister(name string) {}

func (m *MockMetrics) Each(fn func(metrics.Metric)) {}

func (m *MockMetrics) CounterValue(key string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if counter, exists := m.counters[key]; exists {
		return counter.Value()
	}
	return 0
}

func (m *MockMetrics) TimerCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if timer, exists := m.timers[name]; exists {
		return timer.Count()
	}
	return 0
}

// Mock metric implementations
type MockCounter struct {
	mu    sync.Mutex
	name  string
	value float64
}

func (c *MockCounter) Inc() { c.Add(1) }
func (c *MockCounter) Add(value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += value
}
func (c *MockCounter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
func (c *MockCounter) With(tags metrics.Tags) metrics.Counter { return c }
func (c *MockCounter) Name() string                           { return c.name }
func (c *MockCounter) Description() string                    { return "" }
func (c *MockCounter) Type() metrics.Type                     { return metrics.TypeCounter }
func (c *MockCounter) Tags() metrics.Tags                     { return metrics.Tags{} }

type MockTimer struct {
	mu        sync.Mutex
	name      string
	durations []time.Duration
}

func (t *MockTimer) Record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.durations = append(t.durations, d)
}
func (t *MockTimer) RecordSince(start time.Time) { t.Record(time.Since(start)) }
func (t *MockTimer) Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	t.Record(d)
	return d
}
func (t *MockTimer) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.durations)
}
func (t *MockTimer) With(tags metrics.Tags) metrics.Timer { return t }
func (t *MockTimer) Name() string                         { return t.name }
func (t *MockTimer) Description() string                  { return "" }
func (t *MockTimer) Type() metrics.Type                   { return metrics.TypeTimer }
func (t *MockTimer) Tags() metrics.Tags                   { return metrics.Tags{} }

type MockGauge struct {
	name string
}

func (g *MockGauge) Set(float64)                          {}
func (g *MockGauge) Add(float64)                          {}
func (g *MockGauge) Inc()                                 {}
func (g *MockGauge) Dec()                                 {}
func (g *MockGauge) With(tags metrics.Tags) metrics.Gauge { return g }
func (g *MockGauge) Name() string                         { return g.name }
func (g *MockGauge) Description() string                  { return "" }
func (g *MockGauge) Type() metrics.Type                   { return metrics.TypeGauge }
func (g *MockGauge) Tags() metrics.Tags                   { return metrics.Tags{} }

type MockHistogram struct {
	name string
}

func (h *MockHistogram) Observe(float64)                          {}
func (h *MockHistogram) With(tags metrics.Tags) metrics.Histogram { return h }
func (h *MockHistogram) Name() string                             { return h.name }
func (h *MockHistogram) Description() string                      { return "" }
func (h *MockHistogram) Type() metrics.Type                       { return metrics.TypeHistogram }
func (h *MockHistogram) Tags() metrics.Tags                       { return metrics.Tags{} }
