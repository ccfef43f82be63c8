// Command gasteiger computes Gasteiger-Marsili partial charges for the
// molecules in SD/MOL or JSON files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rmera/gasteiger/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what the subcommands share once the configuration is loaded.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "gasteiger",
		Short:         "Gasteiger-Marsili partial charges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file (default: ./gasteiger.yaml or ~/.config/gasteiger/gasteiger.yaml)")
	pf.IntP("iterations", "n", 6, "number of charge-transfer passes")
	pf.Float64P("damping", "d", 0.5, "damping factor applied after each pass, in (0,1]")
	pf.StringP("format", "f", "text", "output format: text, json or yaml")
	pf.BoolP("verbose", "v", false, "print residuals, components and statistics, and log at debug level")

	root.AddCommand(newChargesCmd(a), newParamsCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.New(), a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	level := cfg.Level()
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "iterations", cfg.Iterations, "damping", cfg.Damping, "format", cfg.Format)
	return nil
}

func newChargesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charges [files...]",
		Short: "Compute partial charges for the molecules in the given files (stdin if none or '-')",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.charges(args)
		},
	}
	cmd.Flags().StringP("input", "i", "", "input format: sdf or json (default: from the file extension, sdf for stdin)")
	cmd.Flags().StringP("plot", "p", "", "write a convergence plot for each molecule, named <plot>_<n>.png")
	return cmd
}

func newParamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the electronegativity parameter table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.params()
		},
	}
}
