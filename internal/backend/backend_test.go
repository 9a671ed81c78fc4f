package backend

import (
	"encoding/gob"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linearModel struct {
	Weights   []float64 `json:"weights" yaml:"weights"`
	Intercept float64   `json:"intercept" yaml:"intercept"`
}

func init() {
	gob.Register(&linearModel{})
}

// fakeBackend fails or succeeds on demand, recording calls.
type fakeBackend struct {
	name    string
	saveErr error
	loadErr error
	model   any
	saves   int
	loads   int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Save(any, string) error {
	f.saves++
	return f.saveErr
}

func (f *fakeBackend) Load(string) (any, error) {
	f.loads++
	return f.model, f.loadErr
}

func TestRegistry_SaveFirstSuccessWins(t *testing.T) {
	first := &fakeBackend{name: "first"}
	second := &fakeBackend{name: "second"}
	reg := NewRegistry(first, second)

	require.NoError(t, reg.Save(struct{}{}, "ignored"))
	assert.Equal(t, 1, first.saves)
	assert.Equal(t, 0, second.saves, "persistence stops at the first success")
}

func TestRegistry_SaveFallsThrough(t *testing.T) {
	broken := &fakeBackend{name: "broken", saveErr: errors.New("disk full")}
	working := &fakeBackend{name: "working"}
	reg := NewRegistry(broken, working)

	require.NoError(t, reg.Save(struct{}{}, "ignored"))
	assert.Equal(t, 1, broken.saves)
	assert.Equal(t, 1, working.saves)
}

func TestRegistry_SaveExhausted(t *testing.T) {
	firstErr := errors.New("first failure")
	lastErr := errors.New("last failure")
	reg := NewRegistry(
		&fakeBackend{name: "a", saveErr: firstErr},
		&fakeBackend{name: "b", saveErr: lastErr},
	)

	err := reg.Save(struct{}{}, "ignored")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "save", exhausted.Op)
	assert.ErrorIs(t, err, lastErr, "the last backend error is surfaced")
	assert.NotErrorIs(t, err, firstErr)
}

func TestRegistry_LoadSurfacesLastError(t *testing.T) {
	lastErr := errors.New("corrupt file")
	reg := NewRegistry(
		&fakeBackend{name: "a", loadErr: errors.New("unknown format")},
		&fakeBackend{name: "b", loadErr: lastErr},
	)

	_, err := reg.Load("ignored")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.ErrorIs(t, err, lastErr)
}

func TestRegistry_LoadNilModelIsFailure(t *testing.T) {
	nilBackend := &fakeBackend{name: "nil"}
	good := &fakeBackend{name: "good", model: "the-model"}
	reg := NewRegistry(nilBackend, good)

	model, err := reg.Load("ignored")
	require.NoError(t, err)
	assert.Equal(t, "the-model", model)
	assert.Equal(t, 1, nilBackend.loads)
}

func TestRegistry_Empty(t *testing.T) {
	reg := NewRegistry()

	err := reg.Save(struct{}{}, "ignored")
	assert.ErrorIs(t, err, ErrNoBackends)

	_, err = reg.Load("ignored")
	assert.ErrorIs(t, err, ErrNoBackends)
}

func TestRegistry_RegisterOrder(t *testing.T) {
	first := &fakeBackend{name: "first", saveErr: errors.New("nope")}
	reg := NewRegistry(first)
	second := &fakeBackend{name: "second"}
	reg.Register(second)

	require.NoError(t, reg.Save(struct{}{}, "ignored"))
	assert.Equal(t, 1, second.saves)
}

func TestGobBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model")
	original := &linearModel{Weights: []float64{0.5, -1.25}, Intercept: 3.0}

	b := NewGobBackend()
	require.NoError(t, b.Save(original, path))

	loaded, err := b.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestJSONBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model")
	original := &linearModel{Weights: []float64{1, 2}, Intercept: -0.5}

	b := NewJSONBackend(func() any { return &linearModel{} })
	require.NoError(t, b.Save(original, path))

	loaded, err := b.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestJSONBackend_LoadNeedsFactory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model")
	b := NewJSONBackend(nil)
	require.NoError(t, b.Save(&linearModel{}, path))

	_, err := b.Load(path)
	assert.Error(t, err)
}

func TestYAMLBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model")
	original := &linearModel{Weights: []float64{0.25}, Intercept: 1}

	b := NewYAMLBackend(func() any { return &linearModel{} })
	require.NoError(t, b.Save(original, path))

	loaded, err := b.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
