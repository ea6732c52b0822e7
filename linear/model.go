// Package linear implements the fitted logistic regression model: prediction
// and its persisted weights.
package linear

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/logofinder/datasets/images"
)

// ErrShapeMismatch is returned when a feature row does not have the width the
// model was trained on.
var ErrShapeMismatch = errors.New("feature vector length does not match model")

// Model is a binary logistic regression classifier. It is not modified after
// training.
type Model struct {
	C         float64
	Coef      []float64
	Intercept float64
}

// New returns a model over the given coefficients.
func New(c float64, coef []float64, intercept float64) *Model {
	return &Model{C: c, Coef: coef, Intercept: intercept}
}

// Features returns the expected row width.
func (m *Model) Features() int {
	return len(m.Coef)
}

func (m *Model) check(x []float64) error {
	if len(x) != len(m.Coef) {
		return errors.Wrapf(ErrShapeMismatch, "got %d values, want %d", len(x), len(m.Coef))
	}
	return nil
}

// Decision returns w.x + b.
func (m *Model) Decision(x []float64) (float64, error) {
	if err := m.check(x); err != nil {
		return 0, err
	}
	return floats.Dot(m.Coef, x) + m.Intercept, nil
}

// Probability returns the probability of label 1.
func (m *Model) Probability(x []float64) (float64, error) {
	z, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	return Sigmoid(z), nil
}

// Predict returns 1 when the decision value is positive and 0 otherwise.
func (m *Model) Predict(x []float64) (int, error) {
	z, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return 1, nil
	}
	return 0, nil
}

// PredictBatch predicts every row, in order. Any mismatched row fails the
// whole batch.
func (m *Model) PredictBatch(rows [][]float64) ([]int, error) {
	out := make([]int, len(rows))
	for i, x := range rows {
		p, err := m.Predict(x)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		out[i] = p
	}
	return out, nil
}

// PredictSamples predicts loaded images, in order.
func (m *Model) PredictSamples(samples []images.Sample) ([]int, error) {
	out := make([]int, len(samples))
	x := make([]float64, images.Len)
	for i := range samples {
		p, err := m.Predict(samples[i].Features.Float64s(x))
		if err != nil {
			return nil, errors.Wrapf(err, "image %s", samples[i].Name)
		}
		out[i] = p
	}
	return out, nil
}

// Sigmoid is the logistic function, stable for large |z|.
func Sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
