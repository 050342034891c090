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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/padmux/prefs"
)

var showYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration",
	Long: `Print the configuration in the same format as the configuration file, or
as YAML. Values given with --prefs are included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(true)
		if err != nil {
			return err
		}

		if showYAML {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg.Registry())
		}

		_, err = cfg.Registry().WriteTo(cmd.OutOrStdout())
		return err
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the default configuration to the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFile()
		if err != nil {
			return err
		}
		prefs.NewConfig().Save(path)
		fmt.Fprintf(cmd.OutOrStdout(), "default configuration written to %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set NAME VALUE",
	Short: "Change a single value in the configuration file",
	Example: `  # widen the analog deadzone
  padmux config set deadzone 40

  # bind the A button to the cross and circle buttons
  padmux config set key_a 24576`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(false)
		if err != nil {
			return err
		}

		err = cfg.Registry().Set(args[0], args[1])
		if err != nil {
			return err
		}

		cfg.Save(path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&showYAML, "yaml", false, "print as YAML")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
