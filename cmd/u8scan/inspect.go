package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mnightingale/u8scan"
)

// InspectCLI prints the decoded characters of its input.
type InspectCLI struct {
	Decode DecodeFlags `embed:""`

	JSON    bool   `help:"Output in JSON format" short:"j"`
	ShowBOM bool   `help:"Include a leading byte order mark" name:"show-bom"`
	File    string `arg:"" optional:"" help:"Input file (default stdin)"`
}

type charJSON struct {
	Offset    int    `json:"offset"`
	Size      int    `json:"size"`
	Codepoint string `json:"codepoint"`
	Text      string `json:"text,omitempty"`
	ASCII     bool   `json:"ascii"`
	Valid     bool   `json:"valid"`
	Emoji     bool   `json:"emoji,omitempty"`
}

func (c *InspectCLI) Run(kctx *kong.Context, logger *slog.Logger) error {
	data, err := readInput(c.File)
	if err != nil {
		return err
	}

	opts := c.Decode.options()
	if c.ShowBOM {
		opts = append(opts, u8scan.WithoutBOMSkip())
	}
	r := u8scan.NewRange(data, opts...)

	logger.Info("inspecting input", "bytes", len(data), "bom", u8scan.HasBOM(data), "mode", modeOf(c.Decode.ASCII))

	if c.JSON {
		chars := make([]charJSON, 0, len(data))
		for ch := range r.All() {
			chars = append(chars, toJSON(ch))
		}
		enc := json.NewEncoder(kctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(chars)
	}

	invalid := 0
	for ch := range r.All() {
		if !ch.Valid {
			invalid++
		}
		fmt.Fprintf(kctx.Stdout, "%6d  %d  U+%04X  %s\n", ch.Start, ch.Size, ch.Codepoint, flags(ch))
	}
	if invalid > 0 {
		logger.Warn("input contains invalid sequences", "count", invalid)
	}
	return nil
}

func modeOf(ascii bool) u8scan.Mode {
	if ascii {
		return u8scan.ModeASCII
	}
	return u8scan.ModeUTF8
}

func toJSON(ch u8scan.Char) charJSON {
	out := charJSON{
		Offset:    ch.Start,
		Size:      ch.Size,
		Codepoint: fmt.Sprintf("U+%04X", ch.Codepoint),
		ASCII:     ch.ASCII,
		Valid:     ch.Valid,
		Emoji:     u8scan.IsEmoji(ch),
	}
	if ch.Valid {
		out.Text = ch.String()
	}
	return out
}

func flags(ch u8scan.Char) string {
	var f []string
	switch {
	case !ch.Valid:
		f = append(f, "invalid")
	case ch.ASCII:
		f = append(f, "ascii")
	default:
		f = append(f, "utf8")
	}
	if u8scan.IsEmoji(ch) {
		f = append(f, "emoji")
	}
	return strings.Join(f, ",")
}
