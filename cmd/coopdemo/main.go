// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command coopdemo runs a parent task that forks counting children on
// sub-stacks carved from its own frame, and prints every driver round.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"code.hybscloud.com/coop"
)

func main() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("COOP")
	v.AutomaticEnv()

	var configPath string
	cmd := &cobra.Command{
		Use:   "coopdemo",
		Short: "Fork counting tasks over one fixed-size stack buffer",
		Long: strings.TrimSpace(`
Runs a parent task that carves one sub-stack per child out of its own locals
and joins the children with ALL (every child must finish) or ANY (the first
finished child wins). Child i yields --repeat[i] times before completing.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfigFile(v, configPath); err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			color.NoColor = color.NoColor || cfg.NoColor

			log, sync, err := buildLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer sync()
			coop.SetLogger(log)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, log.WithName("driver"))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "Optional config file (yaml, toml or json)")
	fs.Int("capacity", 64, "Size of the stack buffer in bytes, header included")
	fs.IntSlice("repeat", []int{1, 2, 3}, "Yields per child; one child per value")
	fs.String("mode", modeAll, "Join policy: all or any")
	fs.Int("max-rounds", 0, "Stop after this many rounds (0 = unbounded)")
	fs.Bool("dump", false, "Hex dump the stack after every round")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.Bool("no-color", false, "Disable colored output")
	return cmd
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	return nil
}
