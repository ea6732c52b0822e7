// Package datasets assembles labelled logo/background training tables.
package datasets

import (
	"gonum.org/v1/gonum/mat"

	"github.com/neurlang/logofinder/datasets/images"
)

// Label is the class of an image.
type Label uint8

const (
	Background Label = 0
	Logo       Label = 1
)

// Dataset is the training table: feature rows followed by one label column.
// Background rows always precede logo rows.
type Dataset struct {
	Rows   []images.Features
	Labels []Label
}

// Assemble labels background samples 0 and logo samples 1 and concatenates
// them in that order. Classes are neither shuffled nor balanced.
func Assemble(background, logo []images.Sample) *Dataset {
	d := &Dataset{
		Rows:   make([]images.Features, 0, len(background)+len(logo)),
		Labels: make([]Label, 0, len(background)+len(logo)),
	}
	for i := range background {
		d.Rows = append(d.Rows, background[i].Features)
		d.Labels = append(d.Labels, Background)
	}
	for i := range logo {
		d.Rows = append(d.Rows, logo[i].Features)
		d.Labels = append(d.Labels, Logo)
	}
	return d
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Split counts the rows of each class, indexed by Label.
func (d *Dataset) Split() (o [2]int) {
	for _, l := range d.Labels {
		o[l&1]++
	}
	return
}

// Matrix returns the feature columns as a Len() x images.Len dense matrix.
func (d *Dataset) Matrix() *mat.Dense {
	if d.Len() == 0 {
		return nil
	}
	data := make([]float64, d.Len()*images.Len)
	for i := range d.Rows {
		d.Rows[i].Float64s(data[i*images.Len : (i+1)*images.Len])
	}
	return mat.NewDense(d.Len(), images.Len, data)
}

// Targets returns the label column as floats.
func (d *Dataset) Targets() []float64 {
	o := make([]float64, len(d.Labels))
	for i, l := range d.Labels {
		o[i] = float64(l)
	}
	return o
}
