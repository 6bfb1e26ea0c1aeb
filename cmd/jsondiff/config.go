package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/qri-io/jsondiff"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Mode    string `cli:"name=mode desc='comparison mode: strict, inclusive or contains'"`
	Float   bool   `cli:"name=float desc='compare integers and floats as floats'"`
	Color   bool   `cli:"name=color desc='always color output'"`
	NoColor bool   `cli:"name=nocolor desc='never color output'"`
	JSON    bool   `cli:"name=json desc='print differences as compact json'"`
	Stats   bool   `cli:"name=stats desc='print comparison statistics'"`
	Verbose bool   `cli:"name=v desc='log debug output to stderr'"`

	Main *cli.Command
}

// compareOpts turns flags into compare options. an unknown mode is a usage
// error
func (cfg *MainConfig) compareOpts() ([]jsondiff.Option, error) {
	mode, err := jsondiff.ParseCompareMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := []jsondiff.Option{jsondiff.OptionMode(mode)}
	if cfg.Float {
		opts = append(opts, jsondiff.OptionAssumeFloat())
	}
	return opts, nil
}

// useColor reports whether output to w should be colored. explicit flags
// win, otherwise color is on for terminals
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// logger writes to w at warn level, or debug with -v
func (cfg *MainConfig) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
