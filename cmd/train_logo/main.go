package main

import (
	"fmt"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"

	"github.com/neurlang/logofinder/learning"
	"github.com/neurlang/logofinder/trainer"
)

func main() {
	var args struct {
		LogoPath       string `arg:"positional,required" help:"path to the logo images"`
		BackgroundPath string `arg:"positional,required" help:"path to the background images"`
		Model          string `default:"model.txt" help:"model destination file"`
		Threads        int    `help:"image decoding workers, 0 for one per logical core"`
		Verbose        bool   `arg:"-v" help:"log solver progress"`
	}
	arg.MustParse(&args)

	l := trainer.NewLogger(args.Verbose)
	defer l.Sync()
	fail := func(err error) {
		if err != nil {
			l.Fatalf("%+v", err)
		}
	}
	o := trainer.Options{Threads: args.Threads, Logger: l}

	fmt.Println("Reading images...")
	d, err := trainer.LoadDataset(args.LogoPath, args.BackgroundPath, o)
	fail(err)

	fmt.Println("Training model...")
	net, err := trainer.Fit(d, learning.Defaults(), o)
	fail(err)

	success, errsum, err := trainer.Evaluate(net, d)
	fail(err)
	println("[train success rate]", success, "%", "with", errsum, "errors")

	fail(net.WriteCompressedWeightsToFile(args.Model))
	if info, err := os.Stat(args.Model); err == nil {
		l.Infow("model saved", "path", args.Model, "size", humanize.Bytes(uint64(info.Size())))
	}

	fmt.Println("Finished! Model has been saved in:", args.Model)
}
