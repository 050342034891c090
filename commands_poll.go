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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/padmux/controller"
	"github.com/jetsetilly/padmux/curated"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
	"github.com/jetsetilly/padmux/recorder"
)

// poll command flags
var (
	pollFrames   int
	pollRate     float64
	pollPlayback string
	pollRecord   string
	pollAuthor   string
	pollDevice   string
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run the input system and print the controller frame",
	Long: `Poll every input source once per frame and print the controller frame
whenever it changes. Polling continues until the number of frames has been
reached or until interrupted.`,
	Example: `  # poll at 60Hz until interrupted
  padmux poll

  # record ten seconds of input
  padmux poll --frames 600 --record session.m64

  # replay a recording. the recording overrides live input
  padmux poll --playback session.m64`,
	Args: cobra.NoArgs,
	RunE: runPoll,
}

func init() {
	pollCmd.Flags().IntVar(&pollFrames, "frames", 0, "number of frames to poll (0 is unlimited)")
	pollCmd.Flags().Float64Var(&pollRate, "rate", 60, "polling rate in Hz")
	pollCmd.Flags().StringVar(&pollPlayback, "playback", "", "replay recording")
	pollCmd.Flags().StringVar(&pollRecord, "record", "", "record frames to file")
	pollCmd.Flags().StringVar(&pollAuthor, "author", "", "author of the recording")
	pollCmd.Flags().StringVar(&pollDevice, "device", "", "joystick device (headless linux only)")

	rootCmd.AddCommand(pollCmd)
}

func runPoll(cmd *cobra.Command, args []string) error {
	if pollRate <= 0 {
		return curated.Errorf("poll: rate must be greater than zero")
	}

	cfg, _, err := loadConfig(true)
	if err != nil {
		return err
	}

	in, err := newInputs(inputOptions{
		values:   cfg.Values(),
		playback: pollPlayback,
		device:   pollDevice,
	})
	if err != nil {
		return err
	}
	defer in.close()

	in.agg.Initialise()
	logger.Logf(logger.Allow, "padmux", "polling %s at %.2fHz", in.agg, pollRate)

	var rec *recorder.Recorder
	if pollRecord != "" {
		rec, err = recorder.NewRecorder(pollRecord, pollAuthor, fmt.Sprintf("%s input", target))
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = poll(ctx, in.agg, in.quit, rec, cmd.OutOrStdout(), pollFrames, pollRate)

	if rec != nil {
		if endErr := rec.End(); endErr != nil && err == nil {
			err = endErr
		}
	}

	return err
}

// poll the aggregator at the given rate until the number of frames has been
// polled, the context is cancelled or the quit function returns true. a
// frames value of zero or less polls forever.
//
// every frame is recorded if rec is not nil. frames are written to the output
// when they differ from the previous frame.
func poll(ctx context.Context, agg *controller.Aggregator, quit func() bool, rec *recorder.Recorder, out io.Writer, frames int, rate float64) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	var frame pad.Frame
	var prev pad.Frame

	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if quit != nil && quit() {
			return nil
		}

		agg.Poll(&frame)

		if rec != nil {
			err := rec.Record(frame)
			if err != nil {
				return err
			}
		}

		if n == 0 || frame != prev {
			fmt.Fprintf(out, "%8d %s\n", n, frame)
			prev = frame
		}
	}

	return nil
}
