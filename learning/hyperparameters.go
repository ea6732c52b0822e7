package learning

import "go.uber.org/zap"

// DefaultC is the inverse regularization strength used by the logo classifier.
const DefaultC = 0.001

// SetLogger routes solver progress to l.
func (h *HyperParameters) SetLogger(l *zap.SugaredLogger) {
	h.l = l
}

func (h *HyperParameters) logger() *zap.SugaredLogger {
	if h.l == nil {
		return zap.NewNop().Sugar()
	}
	return h.l
}

// Defaults returns the hyperparameters of the logo classifier.
func Defaults() HyperParameters {
	return HyperParameters{
		C:             DefaultC,
		MaxIterations: 100,
		Tolerance:     1e-4,
	}
}

type HyperParameters struct {
	C float64 // inverse regularization strength, smaller is stronger

	MaxIterations int     // solver major iterations before giving up
	Tolerance     float64 // stop once every gradient component is below this

	l *zap.SugaredLogger
}
