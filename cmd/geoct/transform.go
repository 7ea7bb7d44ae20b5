// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/pipeline"
)

// batchSize is the number of points handed to one bulk Transform call.
const batchSize = 4096

type transformFlags struct {
	pipeline string
	inverse  bool
	input    string
	output   string
}

func newTransformCmd(a *app) *cobra.Command {
	var fl transformFlags
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform CSV points through a pipeline.",
		Long: `transform reads points from CSV (one ordinate per column, '#' starts a
comment line), runs them through the pipeline given by --pipeline and writes
the results as CSV. "-" stands for standard input or output.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(cmd, fl)
		},
	}
	cmd.Flags().StringVar(&fl.pipeline, "pipeline", "", "pipeline TOML file")
	cmd.Flags().BoolVar(&fl.inverse, "inverse", false, "apply the inverse of the pipeline")
	cmd.Flags().StringVar(&fl.input, "input", "-", "input CSV file")
	cmd.Flags().StringVar(&fl.output, "output", "-", "output CSV file")
	_ = cmd.MarkFlagRequired("pipeline")

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, fl transformFlags) (err error) {
	cfg, err := pipeline.Load(fl.pipeline)
	if err != nil {
		return err
	}
	f, err := a.newFactory()
	if err != nil {
		return err
	}
	tr, err := cfg.Build(f)
	if err != nil {
		return err
	}
	if fl.inverse {
		if tr, err = tr.Inverse(); err != nil {
			return err
		}
	}

	in := cmd.InOrStdin()
	if fl.input != "-" {
		var file *os.File
		if file, err = os.Open(fl.input); err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	out := cmd.OutOrStdout()
	if fl.output != "-" {
		var file *os.File
		if file, err = os.Create(fl.output); err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		out = file
	}

	n, err := transformCSV(tr, in, out)
	log := a.log.WithFields(logrus.Fields{
		"pipeline":   cfg.Name,
		"points":     n,
		"dim_source": tr.DimSource(),
		"dim_target": tr.DimTarget(),
	})
	if err != nil {
		log.WithError(err).Error("transform failed")

		return err
	}
	log.Info("transform complete")

	return nil
}

// transformCSV streams points from r to w in batches and returns the number of
// points written.
func transformCSV(tr ct.MathTransform, r io.Reader, w io.Writer) (int, error) {
	dimS, dimT := tr.DimSource(), tr.DimTarget()
	if dimS == 0 {
		return 0, fmt.Errorf("pipeline reads 0 ordinates per point: %w", ct.ErrMismatchedDimension)
	}
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = dimS
	cw := csv.NewWriter(w)

	src := make([]float64, 0, batchSize*dimS)
	dst := make([]float64, batchSize*dimT)
	row := make([]string, dimT)
	var (
		total, line int
		rec         []string
		v           float64
		err         error
	)
	flush := func() error {
		numPts := len(src) / dimS
		if err := tr.Transform(src, 0, dst, 0, numPts); err != nil {
			return fmt.Errorf("points %d-%d: %w", total, total+numPts-1, err)
		}
		var i, j int
		for i = 0; i < numPts; i++ {
			for j = 0; j < dimT; j++ {
				row[j] = strconv.FormatFloat(dst[i*dimT+j], 'g', -1, 64)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		total += numPts
		src = src[:0]

		return nil
	}

	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, err
		}
		line, _ = cr.FieldPos(0)
		for _, field := range rec {
			if v, err = strconv.ParseFloat(field, 64); err != nil {
				return total, fmt.Errorf("line %d: %w", line, err)
			}
			src = append(src, v)
		}
		if len(src) == cap(src) {
			if err = flush(); err != nil {
				return total, err
			}
		}
	}
	if len(src) > 0 {
		if err = flush(); err != nil {
			return total, err
		}
	}
	cw.Flush()

	return total, cw.Error()
}
