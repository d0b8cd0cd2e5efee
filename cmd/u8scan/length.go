package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/mnightingale/u8scan"
)

// DecodeFlags are shared by commands that decode their input.
type DecodeFlags struct {
	ASCII      bool `help:"Treat every byte as a character" short:"a"`
	NoValidate bool `help:"Do not check continuation bytes"`
}

func (f DecodeFlags) options() []u8scan.Option {
	var opts []u8scan.Option
	if f.ASCII {
		opts = append(opts, u8scan.WithMode(u8scan.ModeASCII))
	}
	if f.NoValidate {
		opts = append(opts, u8scan.WithoutValidation())
	}
	return opts
}

// LengthCLI counts characters in one or more inputs.
type LengthCLI struct {
	Decode DecodeFlags `embed:""`

	Files []string `arg:"" optional:"" help:"Input files (default stdin)"`
}

func (c *LengthCLI) Run(kctx *kong.Context, logger *slog.Logger) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	srcs := make([][]byte, len(files))
	for i, name := range files {
		data, err := readInput(name)
		if err != nil {
			return err
		}
		logger.Debug("read input", "file", name, "bytes", len(data))
		srcs[i] = data
	}

	lengths, err := u8scan.LengthBatch(context.Background(), srcs, c.Decode.options()...)
	if err != nil {
		return fmt.Errorf("failed to count characters: %w", err)
	}

	for i, n := range lengths {
		if len(files) == 1 {
			fmt.Fprintln(kctx.Stdout, n)
			continue
		}
		fmt.Fprintf(kctx.Stdout, "%d\t%s\n", n, files[i])
	}
	return nil
}
