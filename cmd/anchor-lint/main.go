package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Abdullah1738/anchor-lint/offchain/keylint"
)

const (
	defaultAnchorFile = "Anchor.toml"
	envPrefix         = "ANCHOR_LINT"

	exitOK       = 0
	exitFailures = 1
	exitFatal    = 2
)

// Injected via go build `ldflags` at build time.
var (
	version = "dev"
	commit  = ""
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		// cobra falls back to os.Args when given nil
		argv = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	if err := cmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitFatal
	}
	return exitOK
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "anchor-lint",
		Short:         "Checks that Base58 values in Anchor.toml decode to 32-byte public keys",
		Args:          cobra.NoArgs,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return lint(v, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	registerFlags(flags)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("file", defaultAnchorFile, "Path to the Anchor workspace config to check")
	flags.String("log-level", "", "Log level written to stderr (debug, info, warn, error). Empty disables logging")
}

func lint(v *viper.Viper, stdout, stderr io.Writer) error {
	path := v.GetString("file")

	logger, err := newLogger(v.GetString("log-level"), stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "%s not found\n", path)
		} else {
			fmt.Fprintf(stderr, "cannot read %s: %v\n", path, err)
		}
		logger.Debug("read failed", zap.String("file", path), zap.Error(err))
		return &exitError{code: exitFatal}
	}

	rep := keylint.NewChecker(logger).Check(string(raw))
	logger.Info("check complete",
		zap.String("file", path),
		zap.Int("checked", rep.Checked),
		zap.Int("valid", len(rep.Valid)),
		zap.Int("failed", len(rep.Failures)),
		zap.Error(rep.Err()),
	)

	if _, err := rep.WriteTo(stdout); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !rep.OK() {
		return &exitError{code: exitFailures}
	}
	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).Named("anchor-lint"), nil
}

func versionString() string {
	if len(commit) >= 7 {
		return fmt.Sprintf("%s (Commit %s)", version, commit[0:7])
	}
	return version
}
