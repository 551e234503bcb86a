// Command framehost runs the scrolling gradient presentation loop.
//
// It picks a host from the registry (a terminal when stdout is one, the
// headless image host otherwise), binds a game controller when a driver is
// available and runs until the window closes, Escape is pressed or the
// process is interrupted.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/framehost/config"
	"github.com/gogpu/framehost/host"
	_ "github.com/gogpu/framehost/host/terminal"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(hostsCmd())

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		f       flags
	)
	cmd := &cobra.Command{
		Use:   "framehost [flags]",
		Short: "Scrolling gradient presentation loop",
		Long: `framehost renders a scrolling two-channel gradient into a software back
buffer and presents it through the selected host. Arrow keys, WASD or a
game controller d-pad scroll the gradient; Escape, Alt+F4 or Start+Back exit.`,
		Example: `  # Run in the terminal
  framehost

  # Render 120 frames headless and keep the last one
  framehost --host image --frames 120 --snapshot last.png

  # Use a fixed 1280x720 buffer stretched to the client area
  framehost --fixed --buffer-width 1280 --buffer-height 720`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOptional(cfgPath)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "framehost.toml", "Path to the TOML configuration file")
	f.register(cmd)
	return cmd
}

func hostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hosts",
		Short: "List registered hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listHosts(cmd.OutOrStdout())
			return nil
		},
	}
}

func listHosts(w io.Writer) {
	available := make(map[string]bool)
	for _, name := range host.Available() {
		available[name] = true
	}
	for _, name := range host.List() {
		state := "unavailable"
		if available[name] {
			state = "available"
		}
		_, _ = fmt.Fprintf(w, "%-10s %s\n", name, state)
	}
}
