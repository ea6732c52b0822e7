package linear

import (
	"encoding/json"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Format tags the persisted weights; Version is bumped on incompatible changes.
const (
	Format  = "logofinder/logistic"
	Version = 1
)

var (
	// ErrFormat is returned for files that are not logistic model weights.
	ErrFormat = errors.New("not a logistic model file")
	// ErrVersion is returned for weights written by an unsupported version.
	ErrVersion = errors.New("unsupported model file version")
)

type weights struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	C         float64   `json:"c"`
	Features  int       `json:"features"`
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
}

// WriteCompressedWeightsToFile writes model weights to a snappy file
func (m *Model) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "cannot create model file")
	}
	err = m.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer
func (m *Model) WriteCompressedWeights(w io.Writer) error {
	sw := snappy.NewBufferedWriter(w)
	err := json.NewEncoder(sw).Encode(weights{
		Format:    Format,
		Version:   Version,
		C:         m.C,
		Features:  len(m.Coef),
		Intercept: m.Intercept,
		Coef:      m.Coef,
	})
	if err != nil {
		sw.Close()
		return errors.Wrap(err, "cannot encode model weights")
	}
	return sw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a snappy file
func ReadCompressedWeightsFromFile(name string) (*Model, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open model file")
	}
	defer file.Close()
	m, err := ReadCompressedWeights(file)
	if err != nil {
		return nil, errors.Wrapf(err, "model file %s", name)
	}
	return m, nil
}

// ReadCompressedWeights reads model weights from a reader
func ReadCompressedWeights(r io.Reader) (*Model, error) {
	var w weights
	if err := json.NewDecoder(snappy.NewReader(r)).Decode(&w); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	if w.Format != Format {
		return nil, errors.Wrapf(ErrFormat, "format %q", w.Format)
	}
	if w.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "version %d", w.Version)
	}
	if w.Features <= 0 || len(w.Coef) != w.Features {
		return nil, errors.Wrapf(ErrFormat, "%d coefficients for %d features", len(w.Coef), w.Features)
	}
	return New(w.C, w.Coef, w.Intercept), nil
}
