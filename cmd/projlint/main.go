package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"github.com/projlint/projlint"
	"github.com/projlint/projlint/check"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var logger = loggo.GetLogger("projlint.cmd")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return checkCmd(ctx, args[1:], stdout, stderr)
	case "classify":
		return classifyCmd(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, "projlint", version)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "projlint checks proj:transform values in example items")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  projlint check [--config file] [--root dir] [--pattern glob] [--exclude patterns]")
	fmt.Fprintln(w, "                 [--jobs n] [--dup ignore|warn|error] [--format text|json|yaml]")
	fmt.Fprintln(w, "                 [--log-level spec] [root]")
	fmt.Fprintln(w, "  projlint classify n0,n1,n2,n3,n4,n5")
	fmt.Fprintln(w, "  projlint version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - check searches every directory under the root, hidden ones included;")
	fmt.Fprintln(w, "    use --exclude (or exclude: in the config file) to skip some.")
}

func checkCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := gnuflag.NewFlagSet("check", gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath string
		logLevel   string
		exclude    string
		flagCfg    check.Config
	)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.StringVar(&flagCfg.Root, "root", "", "directory searched for fixtures")
	fs.StringVar(&flagCfg.Pattern, "pattern", "", "fixture glob relative to the root")
	fs.StringVar(&exclude, "exclude", "", "comma-separated directory name patterns to skip, e.g. '.*,_*,vendor'")
	fs.IntVar(&flagCfg.Jobs, "jobs", 0, "files validated concurrently")
	fs.StringVar(&flagCfg.DuplicateKeys, "dup", "", "duplicate key policy: ignore, warn or error")
	fs.StringVar(&flagCfg.Format, "format", "", "output format: text, json or yaml")
	fs.StringVar(&logLevel, "log-level", "<root>=WARNING", "loggo configuration, e.g. projlint=DEBUG")
	if err := fs.Parse(true, args); err != nil {
		return exitUsage
	}
	if err := loggo.ConfigureLoggers(logLevel); err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return exitUsage
	}

	cfg := check.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = check.LoadConfig(configPath); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitUsage
		}
		logger.Debugf("loaded config %s", configPath)
	}
	// explicitly set flags win over the file
	fs.Visit(func(f *gnuflag.Flag) {
		switch f.Name {
		case "root":
			cfg.Root = flagCfg.Root
		case "pattern":
			cfg.Pattern = flagCfg.Pattern
		case "exclude":
			cfg.Exclude = splitCSV(exclude)
		case "jobs":
			cfg.Jobs = flagCfg.Jobs
		case "dup":
			cfg.DuplicateKeys = flagCfg.DuplicateKeys
		case "format":
			cfg.Format = flagCfg.Format
		}
	})
	if fs.NArg() > 0 {
		cfg.Root = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	rep, err := check.Run(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}
	if err := rep.Write(stdout, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "writing report: %v\n", err)
		return exitUsage
	}
	if !rep.Passed() {
		return exitFailed
	}
	return exitOK
}

func classifyCmd(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		usage(stderr)
		return exitUsage
	}
	var vals []float64
	for _, f := range strings.Split(strings.Trim(args[0], "[] "), ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			fmt.Fprintf(stderr, "invalid number %q\n", f)
			return exitUsage
		}
		vals = append(vals, v)
	}
	t, err := projlint.ParseTransform(vals)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}
	if t.LooksLikeGDAL() {
		fmt.Fprintf(stdout, "gdal %s\n", t)
		return exitFailed
	}
	fmt.Fprintf(stdout, "affine %s\n", t)
	return exitOK
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
