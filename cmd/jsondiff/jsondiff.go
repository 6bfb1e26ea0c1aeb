package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/qri-io/jsondiff"
	"github.com/scott-cotton/cli"
)

// exit statuses
const (
	exitEqual   = 0
	exitDiffers = 1
	exitError   = 2
)

func jsondiffMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <actual> <expected>, got %d args", cli.ErrUsage, len(args))
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	opts, err := cfg.compareOpts()
	if err != nil {
		return err
	}

	code, err := run(cfg, opts, cc.Out, cc.Err, cc.In, args[0], args[1])
	if err != nil {
		fmt.Fprintf(cc.Err, "jsondiff: %s\n", err)
	}
	if code != exitEqual {
		return cli.ExitCodeErr(code)
	}
	return nil
}

// exitCode maps the result of a run to an exit status. usage errors share
// the status of load errors so 1 always means the documents differ
func exitCode(cc *cli.Context, err error) int {
	var xc cli.ExitCodeErr
	switch {
	case err == nil:
		return exitEqual
	case errors.As(err, &xc):
		return int(xc)
	case errors.Is(err, cli.ErrUsage):
		return exitError
	}
	fmt.Fprintf(cc.Err, "jsondiff: %s\n", err)
	return exitError
}

// run compares the documents at actualPath & expectedPath with opts, writing
// a report to w & logs to errw. stdin is read for a path of "-". errors are
// returned only for documents that can't be loaded, differences are reported
// through the exit code
func run(cfg *MainConfig, opts []jsondiff.Option, w, errw io.Writer, stdin io.Reader, actualPath, expectedPath string) (int, error) {
	if actualPath == "-" && expectedPath == "-" {
		return exitError, errStdinReused
	}
	log := cfg.logger(errw)

	actual, err := loadDocument(log, actualPath, stdin)
	if err != nil {
		return exitError, err
	}
	expected, err := loadDocument(log, expectedPath, stdin)
	if err != nil {
		return exitError, err
	}

	stats := &jsondiff.Stats{}
	diffs := jsondiff.Compare(actual, expected, append(opts, jsondiff.OptionSetStats(stats))...)
	log.Debug("compared documents",
		"mode", jsondiff.NewConfig(opts...).Mode,
		"differences", len(diffs),
		"leftNodes", stats.Left,
		"rightNodes", stats.Right)

	if err := writeReport(cfg, w, diffs, stats); err != nil {
		return exitError, err
	}
	if len(diffs) > 0 {
		return exitDiffers, nil
	}
	return exitEqual, nil
}

func writeReport(cfg *MainConfig, w io.Writer, diffs jsondiff.Differences, stats *jsondiff.Stats) error {
	color := cfg.useColor(w)

	if cfg.JSON {
		if diffs == nil {
			diffs = jsondiff.Differences{}
		}
		data, err := json.Marshal(diffs)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	} else if err := jsondiff.FormatPretty(w, diffs, color); err != nil {
		return err
	}

	if cfg.Stats {
		s := jsondiff.FormatPrettyStats(stats)
		if color {
			s = jsondiff.FormatPrettyStatsColor(stats)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// errStdinReused is returned when both documents are "-"
var errStdinReused = errors.New("stdin can only be read once")

// loadDocument reads a json or yaml document. json is a subset of yaml, so one
// decoder serves both
func loadDocument(log *slog.Logger, path string, stdin io.Reader) (jsondiff.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return jsondiff.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug("read document", "path", path, "bytes", len(data))

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return jsondiff.Value{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	v, err := jsondiff.FromInterface(doc)
	if err != nil {
		return jsondiff.Value{}, fmt.Errorf("converting %s: %w", path, err)
	}
	log.Debug("loaded document", "path", path, "kind", v.Kind())
	return v, nil
}
