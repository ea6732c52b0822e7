// Package learning fits the L2-regularized logistic regression behind the logo
// classifier.
package learning

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/neurlang/logofinder/datasets"
	"github.com/neurlang/logofinder/linear"
)

var (
	// ErrEmptyDataset is returned when there is nothing to train on.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrSingleClass is returned when only one label is present.
	ErrSingleClass = errors.New("dataset needs samples of both classes")
)

// objective is
//
//	0.5*|w|^2 + 0.5*b^2 + C * sum_i log(1 + exp(-y_i*(w.x_i + b)))
//
// with y_i in {-1, +1}. The intercept is regularized like a constant feature.
type objective struct {
	x       *mat.Dense
	targets []float64
	c       float64

	z mat.VecDense
	r mat.VecDense
}

func newObjective(x *mat.Dense, targets []float64, c float64) *objective {
	n, _ := x.Dims()
	o := &objective{x: x, targets: targets, c: c}
	o.z.ReuseAsVec(n)
	o.r.ReuseAsVec(n)
	return o
}

func (o *objective) features() int {
	_, cols := o.x.Dims()
	return cols
}

// decisions fills o.z with X.w + b for params = [w..., b].
func (o *objective) decisions(params []float64) {
	cols := o.features()
	o.z.MulVec(o.x, mat.NewVecDense(cols, params[:cols]))
	b := params[cols]
	for i := 0; i < o.z.Len(); i++ {
		o.z.SetVec(i, o.z.AtVec(i)+b)
	}
}

func (o *objective) Func(params []float64) float64 {
	o.decisions(params)
	var loss float64
	for i, t := range o.targets {
		m := o.z.AtVec(i)
		if t == 0 {
			m = -m
		}
		loss += softplus(-m)
	}
	return 0.5*floats.Dot(params, params) + o.c*loss
}

func (o *objective) Grad(grad, params []float64) {
	o.decisions(params)
	for i, t := range o.targets {
		o.r.SetVec(i, o.c*(linear.Sigmoid(o.z.AtVec(i))-t))
	}
	cols := o.features()
	gw := mat.NewVecDense(cols, grad[:cols])
	gw.MulVec(o.x.T(), &o.r)
	grad[cols] = mat.Sum(&o.r)
	floats.Add(grad, params)
}

// softplus returns log(1 + exp(v)) without overflow.
func softplus(v float64) float64 {
	if v > 0 {
		return v + math.Log1p(math.Exp(-v))
	}
	return math.Log1p(math.Exp(v))
}

type recorder struct {
	l *zap.SugaredLogger
}

func (r recorder) Init() error { return nil }

func (r recorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if op&optimize.MajorIteration == 0 {
		return nil
	}
	var norm float64
	if loc.Gradient != nil {
		norm = floats.Norm(loc.Gradient, math.Inf(1))
	}
	r.l.Debugw("solver iteration", "iteration", stats.MajorIterations, "objective", loc.F, "gradient", norm)
	return nil
}

// Training fits a logistic regression on the dataset.
func (h *HyperParameters) Training(d *datasets.Dataset) (*linear.Model, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if split := d.Split(); split[datasets.Background] == 0 || split[datasets.Logo] == 0 {
		return nil, errors.Wrapf(ErrSingleClass, "%d background, %d logo", split[datasets.Background], split[datasets.Logo])
	}
	l := h.logger()

	obj := newObjective(d.Matrix(), d.Targets(), h.C)
	problem := optimize.Problem{
		Func: obj.Func,
		Grad: obj.Grad,
	}
	settings := &optimize.Settings{
		MajorIterations:   h.MaxIterations,
		GradientThreshold: h.Tolerance,
		Recorder:          recorder{l},
	}
	x0 := make([]float64, obj.features()+1)

	result, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if err != nil && (result == nil || !allFinite(result.X)) {
		return nil, errors.Wrap(err, "logistic regression solver failed")
	}
	switch {
	case err != nil:
		l.Warnw("solver stopped early, keeping last location", "status", result.Status.String(), "error", err)
	case result.Status == optimize.IterationLimit:
		l.Warnw("solver did not converge, increase the number of iterations", "iterations", result.MajorIterations)
	default:
		l.Debugw("solver converged", "status", result.Status.String(), "iterations", result.MajorIterations)
	}

	cols := obj.features()
	coef := make([]float64, cols)
	copy(coef, result.X[:cols])
	return linear.New(h.C, coef, result.X[cols]), nil
}

func allFinite(x []float64) bool {
	if len(x) == 0 {
		return false
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
