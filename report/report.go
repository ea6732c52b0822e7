// Package report writes the per-image prediction report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultPath is where the prediction program writes its report.
const DefaultPath = "predictions.txt"

// Prediction is the label predicted for one file.
type Prediction struct {
	Name  string
	Label int
}

// Zip pairs names with labels, which must be of equal length.
func Zip(names []string, labels []int) ([]Prediction, error) {
	if len(names) != len(labels) {
		return nil, errors.Errorf("%d names for %d labels", len(names), len(labels))
	}
	out := make([]Prediction, len(names))
	for i := range names {
		out[i] = Prediction{Name: names[i], Label: labels[i]}
	}
	return out, nil
}

// Write writes one "name \t\t label" line per prediction.
func Write(w io.Writer, predictions []Prediction) error {
	bw := bufio.NewWriter(w)
	for _, p := range predictions {
		if _, err := fmt.Fprintf(bw, "%s \t\t %d\n", p.Name, p.Label); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the report to path, replacing any existing file.
func WriteFile(path string, predictions []Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create report")
	}
	err = Write(f, predictions)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "cannot write report %s", path)
}
