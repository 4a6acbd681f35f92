package providers

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-ort/engine"
)

// fakeEngine implements Engine against in-memory state so registration paths
// can be exercised without a native runtime.
type fakeEngine struct {
	available    []string
	availableErr error

	missingSymbols map[string]bool
	registrarErr   map[string]error
	appendErr      map[string]error

	created  int
	released int

	registrarCalls []registrarCall
	appendCalls    []appendCall
}

type registrarCall struct {
	symbol string
	args   []any
}

type appendCall struct {
	name   string
	keys   []string
	values []string
	v2     bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		missingSymbols: make(map[string]bool),
		registrarErr:   make(map[string]error),
		appendErr:      make(map[string]error),
	}
}

func (f *fakeEngine) AvailableProviders() ([]string, error) {
	return f.available, f.availableErr
}

func (f *fakeEngine) NewSessionOptions() (engine.SessionHandle, error) {
	f.created++
	return engine.SessionHandle(0xfeed), nil
}

func (f *fakeEngine) ReleaseSessionOptions(h engine.SessionHandle) {
	f.released++
}

func (f *fakeEngine) AppendProvider(h engine.SessionHandle, name string, keys, values []string) error {
	f.appendCalls = append(f.appendCalls, appendCall{name: name, keys: keys, values: values})
	return f.appendErr[name]
}

func (f *fakeEngine) AppendProviderV2(h engine.SessionHandle, name string, keys, values []string) error {
	f.appendCalls = append(f.appendCalls, appendCall{name: name, keys: keys, values: values, v2: true})
	return f.appendErr[name]
}

func (f *fakeEngine) Registrar(symbol string) (engine.Registrar, error) {
	if f.missingSymbols[symbol] {
		return nil, errors.Wrapf(engine.ErrSymbolNotFound, "%s", symbol)
	}
	return func(h engine.SessionHandle, args ...any) error {
		f.registrarCalls = append(f.registrarCalls, registrarCall{symbol: symbol, args: args})
		return f.registrarErr[symbol]
	}, nil
}

// stubProvider is a scriptable ExecutionProvider for dispatcher tests.
type stubProvider struct {
	backend     ProviderBackend
	identifier  string
	supported   bool
	registerErr error
	registered  int
}

func (s *stubProvider) Backend() ProviderBackend {
	return s.backend
}

func (s *stubProvider) Identifier() string {
	return s.identifier
}

func (s *stubProvider) SupportedByPlatform() bool {
	return s.supported
}

func (s *stubProvider) Register(o *SessionOptions) error {
	s.registered++
	return s.registerErr
}

// newTestSession returns a SessionOptions bound to eng, closed on cleanup.
func newTestSession(t *testing.T, eng Engine) *SessionOptions {
	t.Helper()
	o, err := NewSessionOptions(eng)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

// captureLogs redirects the package logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logger
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { logger = previous })
	return &buf
}
