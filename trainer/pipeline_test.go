package trainer

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/logofinder/datasets"
	"github.com/neurlang/logofinder/learning"
	"github.com/neurlang/logofinder/linear"
	"github.com/neurlang/logofinder/report"
)

// halves draws an image bright on the left (logo) or on the right (background).
func halves(w, h int, brightLeft bool, shade uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{30, 40 + shade, 30, 255}
			if (x < w/2) == brightLeft {
				c = color.RGBA{220, 210 - shade, 200, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func writeImages(t *testing.T, dir string, n int, brightLeft bool) {
	require.NoError(t, os.MkdirAll(dir, 0755))
	for i := 0; i < n; i++ {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("img%02d.jpg", i)))
		require.NoError(t, err)
		require.NoError(t, jpeg.Encode(f, halves(60+i*9, 40+i*5, brightLeft, uint8(i*3)), nil))
		require.NoError(t, f.Close())
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0644))
}

func TestEndToEnd(t *testing.T) {
	root := t.TempDir()
	logoDir := filepath.Join(root, "logo")
	backDir := filepath.Join(root, "back")
	heldDir := filepath.Join(root, "held")
	writeImages(t, logoDir, 10, true)
	writeImages(t, backDir, 10, false)
	writeImages(t, heldDir, 5, true)

	o := Options{Threads: 4}
	d, err := LoadDataset(logoDir, backDir, o)
	require.NoError(t, err)
	require.Equal(t, 20, d.Len())
	assert.Equal(t, [2]int{10, 10}, d.Split())
	assert.Equal(t, datasets.Background, d.Labels[0])
	assert.Equal(t, datasets.Logo, d.Labels[19])

	m, err := Fit(d, learning.Defaults(), o)
	require.NoError(t, err)

	success, errsum, err := Evaluate(m, d)
	require.NoError(t, err)
	assert.Equal(t, 100, success)
	assert.Zero(t, errsum)

	modelPath := filepath.Join(root, "model.txt")
	require.NoError(t, m.WriteCompressedWeightsToFile(modelPath))
	info, err := os.Stat(modelPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	loaded, err := linear.ReadCompressedWeightsFromFile(modelPath)
	require.NoError(t, err)

	// loaded and in-memory models agree on the training rows
	for i := range d.Rows {
		want, err := m.Decision(d.Rows[i].Float64s(nil))
		require.NoError(t, err)
		got, err := loaded.Decision(d.Rows[i].Float64s(nil))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	predictions, err := Infer(loaded, heldDir, Options{Threads: 1})
	require.NoError(t, err)
	require.Len(t, predictions, 5)
	for _, p := range predictions {
		assert.Equal(t, 1, p.Label, p.Name)
	}

	reportPath := filepath.Join(root, report.DefaultPath)
	require.NoError(t, report.WriteFile(reportPath, predictions))
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 5)
	line := regexp.MustCompile(`^img\d\d\.jpg \t\t [01]$`)
	for _, l := range lines {
		assert.Regexp(t, line, l)
	}
}

func TestLoadDatasetMissingDirectory(t *testing.T) {
	root := t.TempDir()
	writeImages(t, filepath.Join(root, "logo"), 2, true)

	_, err := LoadDataset(filepath.Join(root, "logo"), filepath.Join(root, "missing"), Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "background")
}

func TestEvaluateEmpty(t *testing.T) {
	success, errsum, err := Evaluate(linear.New(0.001, nil, 0), datasets.Assemble(nil, nil))
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, errsum)
}
