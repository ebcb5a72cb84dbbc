// Command siiscore computes Speech Intelligibility Index values per
// ANSI S3.5-1997 for simple free-field listening conditions.
//
// Examples:
//
//	siiscore
//	siiscore -e shout -n 40 -b
//	siiscore -e normal -b -d 1,2,4,8,16
//	siiscore -m spin -n 30
//	siiscore --list
package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-sii/bands"
	"github.com/cwbudde/algo-sii/sii"
)

type cli struct {
	Effort    string    `short:"e" default:"normal" help:"Vocal effort: normal, raised, loud or shout."`
	Distances []float64 `short:"d" default:"1" help:"Talker-to-listener distances in meters."`
	Noise     float64   `short:"n" default:"-50" help:"Flat background noise spectrum level in dB."`
	Loss      float64   `short:"t" default:"0" help:"Flat hearing threshold level in dB HL."`
	Binaural  bool      `short:"b" help:"Binaural listening."`
	Material  string    `short:"m" default:"standard" help:"Band-importance test material (name or number 1-8)."`
	List      bool      `help:"List the available test materials and exit."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("siiscore"),
		kong.Description("Speech Intelligibility Index calculator (ANSI S3.5-1997, 1/3-octave bands)."),
		kong.UsageOnError(),
	)

	if args.List {
		printMaterials()
		return
	}

	ctx.FatalIfErrorf(run(args))
}

func run(args cli) error {
	effort, err := bands.ParseVocalEffort(args.Effort)
	if err != nil {
		return err
	}

	selector, err := materialSelector(args.Material)
	if err != nil {
		return err
	}

	channels := 1
	if args.Binaural {
		channels = 2
	}

	cfg := sii.DirectConfig{
		Noise:            uniform(args.Noise),
		HearingThreshold: uniform(args.Loss),
		Channels:         channels,
		Warnf: func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
		},
	}

	if len(args.Distances) == 1 {
		index, err := scoreAt(effort, args.Distances[0], cfg, selector)
		if err != nil {
			return err
		}
		fmt.Printf("SII = %.4f\n", index)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Distance [m]\tSII\t")
	for _, d := range args.Distances {
		index, err := scoreAt(effort, d, cfg, selector)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.1f\t%.4f\t\n", d, index)
	}
	return w.Flush()
}

func scoreAt(effort bands.VocalEffort, distance float64, cfg sii.DirectConfig, selector bands.Selector) (float64, error) {
	cfg.Distance = distance

	levels, err := sii.DirectMeasurement(sii.EffortSource(effort), cfg)
	if err != nil {
		return 0, err
	}
	return sii.ScoreLevels(levels, sii.ScoreConfig{Importance: selector})
}

func materialSelector(arg string) (bands.Selector, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return bands.SelectMaterial(bands.TestMaterial(n)), nil
	}

	m, err := bands.ParseTestMaterial(arg)
	if err != nil {
		return bands.Selector{}, err
	}
	return bands.SelectMaterial(m), nil
}

func printMaterials() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tName\t")
	for m := bands.AverageSpeech; m <= bands.CST; m++ {
		fmt.Fprintf(w, "%d\t%s\t\n", int(m), m)
	}
	w.Flush()
}

func uniform(level float64) []float64 {
	out := make([]float64, bands.Count)
	for i := range out {
		out[i] = level
	}
	return out
}
