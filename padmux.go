// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

// Padmux combines the input from keyboards, game controllers and recordings
// into a single controller frame, once per frame.
//
// Usage:
//
//	padmux [command] [flags]
//
// The poll command runs the input system and prints each change of the
// controller frame. The config and playback commands inspect and change the
// configuration file and recordings.
//
// The set of input sources depends on how the program was built. The default
// build uses SDL for the keyboard and game controllers. Building with the
// headless tag reads the keyboard from the terminal and, on Linux, reads a
// joystick device directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/paths"
	"github.com/jetsetilly/padmux/prefs"
	"github.com/jetsetilly/padmux/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

// flags common to all commands
var (
	configPath string
	prefsArg   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "padmux",
	Short: "Controller input multiplexer",
	Long: `Padmux combines keyboard, game controller and recorded input into a
single controller frame.

The configuration file holds the button bindings, the stick keys and the
analog deadzone. It is created with default values if it doesn't exist.`,
	Version:           version.Get().String(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default is padmux.cfg in the resource directory)")
	rootCmd.PersistentFlags().StringVar(&prefsArg, "prefs", "", "override configuration values (eg. \"deadzone::40; key_a::16384\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "echo the log to stderr (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

// setup is run before every command.
func setup(cmd *cobra.Command, args []string) error {
	echo, err := logger.NewEcho(logLevel)
	if err != nil {
		return err
	}
	logger.SetEcho(echo)
	return nil
}

// configFile returns the path of the configuration file.
func configFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return paths.ResourcePath(prefs.DefaultConfigFile)
}

// loadConfig loads the configuration file. If overrides is true then the
// values given with the --prefs flag are applied after loading.
func loadConfig(overrides bool) (*prefs.Config, string, error) {
	path, err := configFile()
	if err != nil {
		return nil, "", err
	}

	cfg := prefs.NewConfig()
	cfg.Load(path)

	if overrides && prefsArg != "" {
		prefs.PushCommandLineStack(prefsArg)
		cfg.Registry().ApplyCommandLine()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Warnf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	return cfg, path, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s]\n", version.ApplicationName, v, target)
		if v.GoVersion != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built with %s\n", v.GoVersion)
		}
	},
}
