package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/input"
	"github.com/schollz/multiverse/internal/storage"
	"github.com/schollz/multiverse/internal/types"
)

func newRenderCmd() *cobra.Command {
	var (
		seconds float64
		rate    int
	)
	cmd := &cobra.Command{
		Use:   "render <timeline> <out.wav>",
		Short: "Render a timeline's soundscape to a WAV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := types.ParseTimeline(args[0])
			if err != nil {
				return err
			}
			s := audio.ForTimeline(tl)
			path, err := audio.ExportWAV(args[1], s, rate, seconds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %.1fs of %q (%s) to %s\n", seconds, s.Name, tl, path)
			return nil
		},
	}
	cmd.Flags().Float64Var(&seconds, "seconds", 5, "Length of the rendering in seconds")
	cmd.Flags().IntVar(&rate, "rate", audio.DefaultSampleRate, "Sample rate in Hz")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <x> <y>",
		Short: "Print the timeline a normalized pointer position leans toward",
		Long: `Classify maps a pointer position in [-1, 1] x [-1, 1] (origin at the
center, y up) to the timeline it selects, using the same rule as the live view.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing y: %w", err)
			}
			p := types.PointerVector{X: x, Y: y}.Clamp()
			fmt.Fprintln(cmd.OutOrStdout(), input.Classify(p))
			return nil
		},
	}
}

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage portfolio content files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write the built-in example content to path for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.SaveContent(args[0], storage.DefaultContent()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List MIDI output devices usable with --midi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices := audio.MIDIDevices()
			if len(devices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no MIDI output devices found")
				return nil
			}
			for i, d := range devices {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, d)
			}
			return nil
		},
	}
}
