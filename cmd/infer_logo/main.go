package main

import (
	"fmt"

	arg "github.com/alexflint/go-arg"

	"github.com/neurlang/logofinder/linear"
	"github.com/neurlang/logofinder/report"
	"github.com/neurlang/logofinder/trainer"
)

func main() {
	var args struct {
		ImagesPath string `arg:"positional,required" help:"path to the images"`
		ModelFile  string `arg:"positional,required" help:"file with the saved model"`
		Output     string `default:"predictions.txt" help:"report destination file"`
		Threads    int    `help:"image decoding workers, 0 for one per logical core"`
		Verbose    bool   `arg:"-v" help:"log every prediction"`
	}
	arg.MustParse(&args)

	l := trainer.NewLogger(args.Verbose)
	defer l.Sync()
	fail := func(err error) {
		if err != nil {
			l.Fatalf("%+v", err)
		}
	}

	fmt.Println("Loading model...")
	net, err := linear.ReadCompressedWeightsFromFile(args.ModelFile)
	fail(err)
	l.Debugw("model loaded", "features", net.Features(), "c", net.C)

	fmt.Println("Loading images...")
	samples, err := trainer.LoadImages(args.ImagesPath, trainer.Options{Threads: args.Threads, Logger: l})
	fail(err)

	fmt.Println("Predicting...")
	predictions, err := trainer.Predict(net, samples)
	fail(err)
	for _, p := range predictions {
		l.Debugw("prediction", "file", p.Name, "label", p.Label)
	}

	fail(report.WriteFile(args.Output, predictions))

	fmt.Println("Finished! You can see the results in", args.Output)
}
