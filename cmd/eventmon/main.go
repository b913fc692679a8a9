// eventmon reads a board's console over a serial port and decodes the event
// trace lines the firmware prints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tarm/serial"
)

var (
	opts = struct {
		port     string
		baud     int
		timeout  time.Duration
		duration time.Duration
		summary  bool
		raw      bool
	}{}

	rootCmd = &cobra.Command{
		Use:   "eventmon",
		Short: "Decode peripheral event traces from a board console",
		Long: "eventmon opens the board's serial console, decodes every " +
			"\"evt <class> <instance> <kind> <arg>\" line and prints it. " +
			"Other console output is passed through with --raw.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&opts.port, "port", "p", "/dev/ttyACM0", "serial device")
	rootCmd.Flags().IntVarP(&opts.baud, "baud", "b", 115200, "baud rate")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", 200*time.Millisecond, "per-read timeout")
	rootCmd.Flags().DurationVarP(&opts.duration, "duration", "d", 0, "stop after this long (0 = until interrupted)")
	rootCmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "print per-event counts on exit")
	rootCmd.Flags().BoolVar(&opts.raw, "raw", false, "echo non-event console lines")
}

func run(cmd *cobra.Command, _ []string) error {
	port, err := serial.OpenPort(&serial.Config{
		Name:        opts.port,
		Baud:        opts.baud,
		ReadTimeout: opts.timeout,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.port, err)
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	m := newMonitor(out, opts.raw)
	err = m.Run(&patientReader{ctx: ctx, r: port})
	if opts.summary {
		m.WriteSummary(out)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
