package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/mnightingale/u8scan"
)

// FilterCLI streams its input through a scan built from the flags.
type FilterCLI struct {
	Decode DecodeFlags `embed:""`

	ReplaceInvalid string `help:"Replace invalid bytes with this string" placeholder:"STRING"`
	DropInvalid    bool   `help:"Drop invalid bytes"`
	Upper          bool   `help:"Uppercase ASCII letters" short:"U" xor:"case"`
	Lower          bool   `help:"Lowercase ASCII letters" short:"L" xor:"case"`
	StripEmoji     bool   `help:"Drop emoji characters"`
	StopAt         string `help:"Stop before the first occurrence of this character" placeholder:"CHAR"`
	KeepBOM        bool   `help:"Copy a leading byte order mark to the output" name:"keep-bom"`
	MaxOutput      int    `help:"Stop once this many bytes have been written" default:"0"`
	BufferSize     int    `help:"Initial read buffer size in bytes" default:"32768"`

	File string `arg:"" optional:"" help:"Input file (default stdin)"`
}

// asciiBytes lets a processor replace a character with one ASCII byte
// without allocating.
var asciiBytes = func() (b [128]byte) {
	for i := range b {
		b[i] = byte(i)
	}
	return
}()

func (c *FilterCLI) Validate() error {
	if c.ReplaceInvalid != "" && c.DropInvalid {
		return fmt.Errorf("--replace-invalid and --drop-invalid are mutually exclusive")
	}
	if c.StopAt != "" && u8scan.Length([]byte(c.StopAt)) != 1 {
		return fmt.Errorf("--stop-at must be a single character, got %q", c.StopAt)
	}
	if c.MaxOutput < 0 {
		return fmt.Errorf("--max-output must not be negative")
	}
	return nil
}

func (c *FilterCLI) processor() u8scan.Processor {
	replacement := []byte(c.ReplaceInvalid)

	var stop u8scan.Predicate
	if c.StopAt != "" {
		first, _ := u8scan.Front([]byte(c.StopAt))
		stop = u8scan.HasCodepoint(first.Codepoint)
	}

	return func(ch u8scan.Char, raw []byte) u8scan.Result {
		if stop != nil && ch.Valid && stop(ch) {
			return u8scan.Stop
		}
		if !ch.Valid {
			switch {
			case c.DropInvalid:
				return u8scan.Drop
			case len(replacement) > 0:
				return u8scan.Replace(replacement)
			}
			return u8scan.Keep
		}
		if c.StripEmoji && u8scan.IsEmoji(ch) {
			return u8scan.Drop
		}

		var cp rune
		switch {
		case c.Upper:
			cp = u8scan.ToUpperASCII(ch)
		case c.Lower:
			cp = u8scan.ToLowerASCII(ch)
		default:
			return u8scan.Keep
		}
		if cp == ch.Codepoint {
			return u8scan.Keep
		}
		return u8scan.Replace(asciiBytes[cp : cp+1])
	}
}

func (c *FilterCLI) options() []u8scan.Option {
	opts := c.Decode.options()
	if c.KeepBOM {
		opts = append(opts, u8scan.WithBOMAction(u8scan.BOMCopy))
	}
	if c.MaxOutput > 0 {
		opts = append(opts, u8scan.WithMaxOutput(c.MaxOutput))
	}
	return append(opts, u8scan.WithBufferSize(c.BufferSize))
}

func (c *FilterCLI) Run(kctx *kong.Context, logger *slog.Logger) error {
	in, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := u8scan.NewDecoder(in, c.processor(), c.options()...)
	if _, err := dec.WriteTo(kctx.Stdout); err != nil {
		return fmt.Errorf("failed to filter input: %w", err)
	}

	stats := dec.Stats()
	logger.Info("filter complete",
		"consumed", stats.BytesConsumed,
		"produced", stats.BytesProduced,
		"chars", stats.Chars,
		"invalid", stats.Invalid,
		"bom", stats.BOM,
		"stopped", stats.Stopped,
	)
	if stats.Invalid > 0 && !c.DropInvalid && c.ReplaceInvalid == "" {
		logger.Warn("input contains invalid sequences", "count", stats.Invalid)
	}
	return nil
}
