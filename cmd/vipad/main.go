package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vipad/config"
	"github.com/lixenwraith/vipad/core"
	"github.com/lixenwraith/vipad/editor"
	"github.com/lixenwraith/vipad/logger"
	"github.com/lixenwraith/vipad/persistence"
	"github.com/lixenwraith/vipad/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "vipad: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "vipad [file]",
		Short:         "Modal terminal text editor",
		Long:          "vipad edits one file with vi-style navigation and insertion modes.\nCtrl-S saves, Ctrl-Q quits.",
		Version:       editor.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// More than one file: usage only, never touch the terminal
			if len(args) > 1 {
				return cmd.Usage()
			}
			return run(config.Load(v), args, os.Stdin, os.Stdout, os.Stderr)
		},
	}
	cmd.SetOut(os.Stdout)
	cobra.CheckErr(config.BindFlags(cmd, v))
	return cmd
}

// run drives one editing session on the given terminal files. Fatal errors after the
// terminal is touched exit through the crash handler; a user quit returns nil.
func run(cfg config.Config, args []string, in, out, errOut *os.File) error {
	log, closer, err := logger.New(logger.Options{Debug: cfg.Debug, Path: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	session := terminal.NewSession(in, out, cfg.ReadTimeout, log)
	crash := core.NewCrashHandler(session, out, errOut, log)
	crash.OnExit(func() { closer.Close() })
	defer func() {
		if r := recover(); r != nil {
			crash.HandleCrash(r)
		}
	}()

	if err := session.Enter(); err != nil {
		crash.Fatal(err)
	}

	resize := terminal.WatchResize()
	defer resize.Stop()
	crash.OnExit(resize.Stop)

	ed, err := editor.New(session, terminal.NewDecoder(session), persistence.NewFileStore(), log)
	if err != nil {
		crash.Fatal(err)
	}
	ed.SetResizeSource(resize)

	if len(args) == 1 {
		if err := ed.Open(args[0]); err != nil {
			crash.Fatal(err)
		}
	}

	if err := ed.Run(); err != nil {
		crash.Fatal(err)
	}
	return session.Exit()
}
