package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dshills/mep/internal/app"
	"github.com/dshills/mep/internal/config"
	"github.com/dshills/mep/internal/logging"
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/version"
)

// options are the flags shared by every command.
type options struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mep",
		Short: "A pluggable rendering host",
		Long: `mep loads graphics and input modules from the working directory and
drives the first graphics module it finds.

Modules are shared objects named libmep*.so (libmep*.dylib on macOS,
mep*.dll on Windows) exporting MepGetPlugin, or mep*.lua scripts when
plugins.scripts is enabled.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			config.SetCurrent(cfg)

			// Setup logging based on verbosity
			logging.SetupWriter(errOut, max(opts.verbosity, cfg.Log.Verbosity))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default mep.toml or mep.yaml in the working directory)")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newRunCmd(opts *options) *cobra.Command {
	var frames int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load modules and draw the demo scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 0 {
				return fmt.Errorf("--frames must not be negative, got %d", frames)
			}

			host := app.New(opts.cfg)
			defer func() {
				if err := host.Shutdown(); err != nil {
					log.Warn().Err(err).Msg("Shutdown failed")
				}
			}()

			if err := host.Start(); err != nil {
				return err
			}
			if _, err := host.Graphics(); err != nil {
				return err
			}

			width, height := host.SurfaceSize()
			return host.Run(frames, app.DemoScene(width, height))
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "Number of frames to draw")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Load modules and list them",
		RunE: func(cmd *cobra.Command, args []string) error {
			host := app.New(opts.cfg)
			defer func() {
				if err := host.Shutdown(); err != nil {
					log.Warn().Err(err).Msg("Shutdown failed")
				}
			}()

			if err := host.Start(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := host.Manager().Records()
			if len(records) == 0 {
				fmt.Fprintf(out, "No modules found in %s\n", opts.cfg.Plugins.Dir)
				return nil
			}

			// Plain text unless out is a terminal that allows styling
			term := termenv.NewOutput(out)
			for _, rec := range records {
				name := term.String(fmt.Sprintf("%-24s", rec.Info.Name)).Bold()
				fmt.Fprintf(out, "%s %-10s %-9s %s\n", name, rec.Info.Version, rec.Info.Type, rec.Path)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mep version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

// reportError prints err, with the failing module spelled out for load
// failures.
func reportError(w io.Writer, err error) {
	var loadErr *plugin.LoadError
	var discErr *plugin.DiscoveryError

	switch {
	case errors.As(err, &loadErr):
		fmt.Fprintf(w, "Error: could not load module %s\n", loadErr.Path)
		if loadErr.Stage != plugin.StageOpen {
			fmt.Fprintf(w, "  symbol: %s (%s)\n", loadErr.Symbol, loadErr.Stage)
		}
		fmt.Fprintf(w, "  cause:  %v\n", loadErr.Err)
	case errors.As(err, &discErr):
		fmt.Fprintf(w, "Error: could not search %s for modules: %v\n", discErr.Dir, discErr.Err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
