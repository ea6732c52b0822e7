package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Prediction{{"a.jpg", 1}, {"b.jpg", 0}})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg \t\t 1\nb.jpg \t\t 0\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0644))

	require.NoError(t, WriteFile(path, []Prediction{{"x.jpg.bak", 0}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x.jpg.bak \t\t 0\n", string(data))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", DefaultPath), nil)
	assert.Error(t, err)
}

func TestZip(t *testing.T) {
	p, err := Zip([]string{"a.jpg", "b.jpg"}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Prediction{{"a.jpg", 0}, {"b.jpg", 1}}, p)

	_, err = Zip([]string{"a.jpg"}, nil)
	assert.Error(t, err)
}
