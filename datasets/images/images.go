// Package images implements the logo/background image loader: every image is
// resized to a fixed 50x50 RGB raster and flattened into a feature vector.
package images

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/neurlang/logofinder/parallel"
)

// Raster dimensions every image is coerced to.
const (
	ImgSize  = 50
	Channels = 3
	Len      = ImgSize * ImgSize * Channels
)

// Pattern is the substring a file name must contain to be loaded.
const Pattern = ".jpg"

// Features holds one flattened image: rows top to bottom, pixels left to right,
// R, G and B interleaved per pixel.
type Features [Len]byte

// Float64s converts the intensities into dst, allocating it when too short.
func (f *Features) Float64s(dst []float64) []float64 {
	if len(dst) < Len {
		dst = make([]float64, Len)
	}
	dst = dst[:Len]
	for i, v := range f {
		dst[i] = float64(v)
	}
	return dst
}

// Sample is a loaded image and the name it was listed under.
type Sample struct {
	Name     string
	Features Features
}

// List returns the regular files of dir whose name contains Pattern, in
// directory order.
func List(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open image directory")
	}
	names, err := d.Readdirnames(-1)
	d.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list image directory %s", dir)
	}

	var files []string
	for _, name := range names {
		if !strings.Contains(name, Pattern) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

// Decode reads the image at path and flattens its resized raster.
func Decode(path string) (*Features, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode image %s", path)
	}
	return Flatten(img), nil
}

// Flatten resizes img to ImgSize x ImgSize and returns its RGB intensities.
func Flatten(img image.Image) *Features {
	resized := resize.Resize(ImgSize, ImgSize, img, resize.Bilinear)
	bounds := resized.Bounds()

	var out Features
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			out[n] = byte(r >> 8)
			out[n+1] = byte(g >> 8)
			out[n+2] = byte(b >> 8)
			n += Channels
		}
	}
	return &out
}

// Load decodes every listed image of dir using up to threads workers. The
// result keeps the order of List; the first failing file aborts the load.
func Load(dir string, threads int) ([]Sample, error) {
	names, err := List(dir)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, len(names))
	err = parallel.ForEach(len(names), parallel.Limit(threads), func(i int) error {
		features, err := Decode(filepath.Join(dir, names[i]))
		if err != nil {
			return err
		}
		samples[i] = Sample{Name: names[i], Features: *features}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// Names returns the file names of samples, in order.
func Names(samples []Sample) []string {
	names := make([]string, len(samples))
	for i := range samples {
		names[i] = samples[i].Name
	}
	return names
}
