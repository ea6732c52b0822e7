package trainer

import (
	"github.com/neurlang/logofinder/datasets"
	"github.com/neurlang/logofinder/datasets/images"
	"github.com/neurlang/logofinder/linear"
)

// Evaluate returns the percentage of rows predicted correctly and the number
// of wrong predictions.
func Evaluate(m *linear.Model, d *datasets.Dataset) (success int, errsum int, err error) {
	if d.Len() == 0 {
		return 0, 0, nil
	}
	x := make([]float64, images.Len)
	for i := range d.Rows {
		p, err := m.Predict(d.Rows[i].Float64s(x))
		if err != nil {
			return 0, 0, err
		}
		if p != int(d.Labels[i]) {
			errsum++
		}
	}
	success = (d.Len() - errsum) * 100 / d.Len()
	return success, errsum, nil
}
