// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

// utfconv converts text between UTF-8, UTF-16 and UTF-32.
package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.mindeco.de/logging"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/pipeline"
	"github.com/ssbc/utfstream/transcode"
)

var check = logging.CheckFatal

// flags of the root command
type flags struct {
	from      string
	fromOrder string
	to        string
	toOrder   string
	bom       bool
	keepBOM   bool
	replace   bool
	verbose   bool
}

var cliFlags flags

var rootCmd = &cobra.Command{
	Use:   "utfconv [flags] [infile [outfile]]",
	Short: "convert text between UTF-8, UTF-16 and UTF-32",
	Long: "utfconv reads text from infile (or stdin) and writes it re-encoded to outfile (or stdout).\n" +
		"Byte order marks are stripped from the input unless --keep-bom is given.",
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cliFlags, args)
	},
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVarP(&cliFlags.from, "from", "f", "utf8", "input encoding: utf8, utf16, utf32 or auto")
	fs.StringVar(&cliFlags.fromOrder, "from-order", "native", "byte order of the input: native, little or big")
	fs.StringVarP(&cliFlags.to, "to", "t", "utf8", "output encoding: utf8, utf16 or utf32")
	fs.StringVar(&cliFlags.toOrder, "to-order", "native", "byte order of the output: native, little or big")
	fs.BoolVar(&cliFlags.bom, "bom", false, "write a byte order mark")
	fs.BoolVar(&cliFlags.keepBOM, "keep-bom", false, "pass a byte order mark in the input through")
	fs.BoolVar(&cliFlags.replace, "replace", false, "replace ill-formed input with U+FFFD instead of failing")
	fs.BoolVarP(&cliFlags.verbose, "verbose", "v", false, "log pipeline setup to stderr")
}

// buildOptions turns the command line flags into pipeline options.
func buildOptions(f flags) ([]pipeline.Option, error) {
	var opts []pipeline.Option

	if strings.EqualFold(f.from, "auto") {
		opts = append(opts, pipeline.FromAuto())
	} else {
		enc, err := utfstream.ParseEncoding(f.from)
		if err != nil {
			return nil, errors.Wrap(err, "bad --from")
		}
		order, err := utfstream.ParseOrder(f.fromOrder)
		if err != nil {
			return nil, errors.Wrap(err, "bad --from-order")
		}
		opts = append(opts, pipeline.From(enc), pipeline.FromOrder(order))
	}

	enc, err := utfstream.ParseEncoding(f.to)
	if err != nil {
		return nil, errors.Wrap(err, "bad --to")
	}
	order, err := utfstream.ParseOrder(f.toOrder)
	if err != nil {
		return nil, errors.Wrap(err, "bad --to-order")
	}
	opts = append(opts,
		pipeline.To(enc),
		pipeline.ToOrder(order),
		pipeline.WithBOM(f.bom),
		pipeline.DetectBOM(!f.keepBOM),
	)

	if f.replace {
		opts = append(opts, pipeline.WithPolicy(transcode.Replace))
	}
	return opts, nil
}

func run(ctx context.Context, f flags, args []string) error {
	opts, err := buildOptions(f)
	if err != nil {
		return err
	}

	log := logging.Logger("utfconv")
	if f.verbose {
		opts = append(opts, pipeline.WithLogger(log))
	}

	var r io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "error opening input")
		}
		defer in.Close()
		r = in
	}

	var w io.Writer = os.Stdout
	if len(args) > 1 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			return errors.Wrap(err, "error creating output")
		}
		defer out.Close()
		w = out
	}

	n, err := pipeline.Copy(ctx, w, r, opts...)
	if err != nil {
		return errors.Wrapf(err, "conversion failed after %d bytes", n)
	}
	if f.verbose {
		log.Log("event", "done", "written", n)
	}
	return nil
}

func main() {
	logging.SetupLogging(nil)
	check(rootCmd.ExecuteContext(context.Background()))
}
