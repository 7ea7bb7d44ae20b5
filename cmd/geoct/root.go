// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/srs"
)

// app holds what every subcommand shares.
type app struct {
	log      *logrus.Logger
	logLevel string
}

// newFactory returns a factory with the built-in and the Proj4 providers.
func (a *app) newFactory() (*ct.Factory, error) {
	return ct.NewFactory(ct.WithLogger(a.log), ct.WithProvider(srs.Provider{}))
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	root := &cobra.Command{
		Use:   "geoct",
		Short: "Coordinate transformation pipelines.",
		Long: `geoct applies chains of coordinate transforms (affine matrices,
exponential and logarithmic scales, map projections) to CSV point streams.
Use the subcommands listed below.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(lvl)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(newProvidersCmd(a), newTransformCmd(a))

	return root
}

func newProvidersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List registered transform classifications.",
		Long: `providers lists every classification usable in a pipeline step,
with its parameters and their defaults.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.newFactory()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range f.Classifications() {
				p, err := f.GetMathTransformProvider(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
				desc := p.Parameters()
				for _, pd := range desc.Params {
					switch {
					case pd.Default != nil:
						fmt.Fprintf(out, "  %s (%s) = %v\n", pd.Name, pd.Kind, pd.Default)
					case pd.Required:
						fmt.Fprintf(out, "  %s (%s), required\n", pd.Name, pd.Kind)
					default:
						fmt.Fprintf(out, "  %s (%s)\n", pd.Name, pd.Kind)
					}
				}
				if desc.Dynamic != nil {
					fmt.Fprintln(out, "  (plus generated parameters)")
				}
			}

			return nil
		},
	}
}
