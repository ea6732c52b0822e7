package trainer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/logofinder/datasets"
	"github.com/neurlang/logofinder/datasets/images"
	"github.com/neurlang/logofinder/learning"
	"github.com/neurlang/logofinder/linear"
	"github.com/neurlang/logofinder/report"
)

// Options controls how directories are loaded.
type Options struct {
	Threads int
	Logger  *zap.SugaredLogger
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// LoadDataset reads both directories and assembles the labelled table.
func LoadDataset(logoDir, backDir string, o Options) (*datasets.Dataset, error) {
	back, err := LoadImages(backDir, o)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load background images")
	}
	logo, err := LoadImages(logoDir, o)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load logo images")
	}
	d := datasets.Assemble(back, logo)
	split := d.Split()
	o.logger().Infow("dataset assembled", "background", split[datasets.Background], "logo", split[datasets.Logo])
	return d, nil
}

// Fit trains a model on d with h, routing solver progress to the options logger.
func Fit(d *datasets.Dataset, h learning.HyperParameters, o Options) (*linear.Model, error) {
	h.SetLogger(o.logger())
	return h.Training(d)
}

// LoadImages reads every image of dir, in listing order.
func LoadImages(dir string, o Options) ([]images.Sample, error) {
	samples, err := images.Load(dir, o.Threads)
	if err != nil {
		return nil, err
	}
	o.logger().Infow("images loaded", "dir", dir, "count", len(samples))
	return samples, nil
}

// Predict labels samples with m, keeping their order.
func Predict(m *linear.Model, samples []images.Sample) ([]report.Prediction, error) {
	labels, err := m.PredictSamples(samples)
	if err != nil {
		return nil, err
	}
	return report.Zip(images.Names(samples), labels)
}

// Infer predicts every image of dir, in listing order.
func Infer(m *linear.Model, dir string, o Options) ([]report.Prediction, error) {
	samples, err := LoadImages(dir, o)
	if err != nil {
		return nil, err
	}
	return Predict(m, samples)
}
