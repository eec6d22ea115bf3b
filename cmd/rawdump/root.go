// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jcdyer/rawbson/logger"
)

// NewRootCommand builds the rawdump command tree. stdin/stdout/stderr are
// threaded through explicitly, rather than read from os.Std*, so tests can
// exercise the tree without touching the real console.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "rawdump",
		Short: "Inspect, validate, and convert BSON documents without fully decoding them.",
		Long: `rawdump reads BSON documents lazily: inspect lists the top-level keys and
types of a document without validating anything it doesn't print, validate
forces full traversal and reports the first framing error found, and
convert re-encodes a document as extended JSON via the trusted driver
encoder.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(viper.New(), cmd.Flags())
		},
		SilenceUsage: true,
	}
	rc.PersistentFlags().StringP("config", "c", "", "configuration file to read from (toml)")
	rc.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rc.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr, reopening it on SIGHUP")

	rc.AddCommand(newInspectCommand(stdin, stdout, stderr))
	rc.AddCommand(newValidateCommand(stdin, stdout, stderr))
	rc.AddCommand(newConvertCommand(stdin, stdout, stderr))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// bindConfig mirrors the layered precedence (flags > env > config file)
// that the rest of the corpus's cobra/viper commands use, scoped down to
// the handful of flags rawdump actually defines.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix("RAWDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if c, _ := flags.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration file %q: %w", c, err)
		}
	}
	// Copy env and config-file values back onto flags the user did not set
	// explicitly, so subcommands reading cmd.Flags() see the merged result.
	var setErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		setErr = flags.Set(f.Name, v.GetString(f.Name))
	})
	return setErr
}

// loggerFor builds the logger a subcommand should use. With --log-file
// set, logs go to a reopenable file handle instead of stderr, and SIGHUP
// triggers a reopen — the convention operators use to rotate a running
// process's log file out from under it without restarting.
func loggerFor(cmd *cobra.Command) (logger.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	path, _ := cmd.Flags().GetString("log-file")

	var w io.Writer = cmd.ErrOrStderr()
	if path != "" {
		fw, err := logger.NewFileWriter(path)
		if err != nil {
			return nil, fmt.Errorf("opening log file %q: %w", path, err)
		}
		w = fw
		watchForReopen(fw)
	}
	if verbose {
		return logger.NewVerboseLogger(w), nil
	}
	return logger.NewStandardLogger(w), nil
}

func watchForReopen(fw *logger.FileWriter) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)
	go func() {
		for range ch {
			fw.Reopen()
		}
	}()
}
