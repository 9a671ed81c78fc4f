package container

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlleLindgren/model-persistence/internal/backend"
	"github.com/OlleLindgren/model-persistence/internal/depspec"
)

// meanModel predicts the mean of the training targets.
type meanModel struct {
	Mean float64
}

func init() {
	gob.Register(&meanModel{})
}

func (m *meanModel) Fit(_, y [][]float64) error {
	var sum float64
	var n int
	for _, row := range y {
		for _, v := range row {
			sum += v
			n++
		}
	}
	if n > 0 {
		m.Mean = sum / float64(n)
	}
	return nil
}

func (m *meanModel) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.Mean
	}
	return out, nil
}

func mustLeaf(t *testing.T, names ...string) *depspec.Leaf {
	t.Helper()
	leaf, err := depspec.NewLeaf(names, nil)
	require.NoError(t, err)
	return leaf
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c, err := New(
		&meanModel{Mean: 0.5},
		mustLeaf(t, "f1", "f2"),
		mustLeaf(t, "target"),
		90*time.Second,
		map[string]float64{"acc": 0.9},
	)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	x := mustLeaf(t, "f1")
	y := mustLeaf(t, "target")

	_, err := New(nil, x, y, 0, nil)
	assert.ErrorIs(t, err, ErrNilModel)

	_, err = New(&meanModel{}, nil, y, 0, nil)
	assert.ErrorIs(t, err, ErrNilSpec)

	_, err = New(&meanModel{}, x, nil, 0, nil)
	assert.ErrorIs(t, err, ErrNilSpec)

	c, err := New(&meanModel{}, x, y, 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, c.EvalMetrics)
}

func TestContainer_RoundTrip(t *testing.T) {
	reg := backend.Default()
	dir := filepath.Join(t.TempDir(), "model_dir")
	original := newTestContainer(t)

	require.NoError(t, original.Save(dir, reg))

	loaded, err := Load(dir, reg)
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f2"}, loaded.XSpec.Dependencies())
	assert.Equal(t, []string{"target"}, loaded.YSpec.Dependencies())
	assert.Equal(t, map[string]float64{"acc": 0.9}, loaded.EvalMetrics)
	assert.Equal(t, 90*time.Second, loaded.Elapsed)

	pred, err := loaded.Model.Predict([][]float64{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, pred)
}

func TestContainer_SaveLayout(t *testing.T) {
	reg := backend.Default()
	dir := filepath.Join(t.TempDir(), "model_dir")
	require.NoError(t, newTestContainer(t).Save(dir, reg))

	for _, name := range []string{ModelFilename, XSpecFilename, YSpecFilename, ExtrasFilename} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}

	// No staging leftovers next to the container.
	entries, err := os.ReadDir(filepath.Dir(dir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestContainer_SaveOverwrites(t *testing.T) {
	reg := backend.Default()
	dir := filepath.Join(t.TempDir(), "model_dir")

	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "stale-file")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	require.NoError(t, newTestContainer(t).Save(dir, reg))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "existing contents are replaced without confirmation")
}

func TestLoad_MissingFile(t *testing.T) {
	reg := backend.Default()
	dir := filepath.Join(t.TempDir(), "model_dir")
	require.NoError(t, newTestContainer(t).Save(dir, reg))

	require.NoError(t, os.Remove(filepath.Join(dir, ExtrasFilename)))

	_, err := Load(dir, reg)
	var missing *MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ExtrasFilename, missing.File)
	assert.Equal(t, dir, missing.Dir)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nowhere"), backend.Default())
	var missing *MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ModelFilename, missing.File)
}

func TestTimedelta(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want Timedelta
	}{
		{
			name: "zero",
			d:    0,
			want: Timedelta{},
		},
		{
			name: "seconds only",
			d:    90 * time.Second,
			want: Timedelta{Seconds: 90},
		},
		{
			name: "full decomposition",
			d:    49*time.Hour + 3*time.Second + 250*time.Microsecond,
			want: Timedelta{Days: 2, Seconds: 3603, Microseconds: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTimedelta(tt.d)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.d, got.Duration(), "decomposition must round-trip exactly")
		})
	}
}

func TestReadExtras(t *testing.T) {
	reg := backend.Default()
	dir := filepath.Join(t.TempDir(), "model_dir")
	require.NoError(t, newTestContainer(t).Save(dir, reg))

	extras, err := ReadExtras(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"acc": 0.9}, extras.EvalMetrics)
	assert.Equal(t, Timedelta{Seconds: 90}, extras.DT)

	_, err = time.Parse("2006-01-02", extras.SaveTimestamp)
	assert.NoError(t, err, "save timestamp has date-only granularity")
}
