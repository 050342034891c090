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
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/recorder"
)

var playbackCmd = &cobra.Command{
	Use:   "playback",
	Short: "Inspect recordings",
}

// recordingInfo is the output of the playback info command
type recordingInfo struct {
	File     string          `yaml:"file"`
	Header   recorder.Header `yaml:"header"`
	Samples  int64           `yaml:"samples_in_file"`
	Duration string          `yaml:"duration"`
	Warning  string          `yaml:"warning,omitempty"`
}

var playbackInfoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print the header of a recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return curated.Errorf("playback: %v", err)
		}
		defer f.Close()

		info := recordingInfo{File: args[0]}

		info.Header, err = recorder.ReadHeader(f)
		if err != nil {
			if !curated.Is(err, recorder.BadSignature) {
				return err
			}
			info.Warning = err.Error()
		}

		st, err := f.Stat()
		if err != nil {
			return curated.Errorf("playback: %v", err)
		}
		info.Samples = (st.Size() - recorder.HeaderSize) / recorder.SampleSize

		if info.Header.FPS > 0 {
			d := time.Duration(info.Samples) * time.Second / time.Duration(info.Header.FPS)
			info.Duration = d.Round(time.Millisecond).String()
		} else {
			info.Duration = "unknown"
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		err = enc.Encode(info)
		if err != nil {
			return curated.Errorf("playback: %v", err)
		}
		return nil
	},
}

func init() {
	playbackCmd.AddCommand(playbackInfoCmd)
	rootCmd.AddCommand(playbackCmd)
}
