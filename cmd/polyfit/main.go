// Command polyfit fits polynomials to x,y samples read from a CSV file
// and can render the fit to an html chart or save the fitted model for
// later evaluation.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aouyang1/go-polyfit"
	"github.com/aouyang1/go-polyfit/sampleset"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

type fitFlags struct {
	input     string
	precision string
	plotPath  string
	modelPath string
}

func (ff *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ff.input, "input", "i", "", "CSV file with x,y sample columns")
	cmd.Flags().StringVar(&ff.precision, "precision", "float64", "sample representation, float64 or float32")
	cmd.Flags().StringVar(&ff.plotPath, "plot", "", "write an html chart of the fit to this path")
	cmd.Flags().StringVar(&ff.modelPath, "model", "", "write the fitted model to this path (.gz for gzip)")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
}

func main() {
	root := &cobra.Command{
		Use:           "polyfit",
		Short:         "least squares polynomial fitting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFitCmd(), newBestCmd(), newEvalCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newFitCmd() *cobra.Command {
	var ff fitFlags
	var degree int

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "fit a polynomial of a fixed degree",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newSession(&ff, nil)
			if err != nil {
				return err
			}
			terms, err := f.ComputeCoefficients(degree)
			if err != nil {
				return err
			}
			return report(f, &ff, degree, terms)
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVarP(&degree, "degree", "d", 2, "polynomial degree")
	return cmd
}

func newBestCmd() *cobra.Command {
	var ff fitFlags
	var maxDegree int
	var target float64

	cmd := &cobra.Command{
		Use:   "best",
		Short: "scan degrees for the lowest one meeting a target correlation",
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := polyfit.NewDefaultOptions()
			opt.TargetCorrelation = target

			f, err := newSession(&ff, opt)
			if err != nil {
				return err
			}
			res, err := f.BestFitDetail(maxDegree)
			if err != nil {
				return err
			}
			if !res.Found {
				log.Warn().
					Int("max_degree", maxDegree).
					Float64("target", target).
					Msg("no degree met the target correlation")
				return nil
			}
			log.Info().Int("degree", res.Degree).Msg("best fit found")
			return report(f, &ff, res.Degree, res.Coefficients)
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVarP(&maxDegree, "max-degree", "m", 10, "highest degree to try")
	cmd.Flags().Float64VarP(&target, "target", "t", polyfit.DefaultTargetCorrelation, "target squared correlation")
	return cmd
}

func newEvalCmd() *cobra.Command {
	var modelPath string
	var at float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate a saved model at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(modelPath)
			if err != nil {
				return err
			}
			f, err := polyfit.NewFromModel(m)
			if err != nil {
				return err
			}
			eval, err := f.Polynomial(m.Degree)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eval(at))
			return nil
		},
	}
	cmd.Flags().StringVar(&modelPath, "model", "", "model file written by fit or best")
	cmd.Flags().Float64VarP(&at, "at", "x", 0, "x value to evaluate at")
	cobra.CheckErr(cmd.MarkFlagRequired("model"))
	return cmd
}

func newSession(ff *fitFlags, opt *polyfit.Options) (*polyfit.Fit, error) {
	x, y, err := readSamples(ff.input)
	if err != nil {
		return nil, fmt.Errorf("unable to read samples from %s, %w", ff.input, err)
	}
	log.Info().Int("samples", len(x)).Str("precision", ff.precision).Msg("loaded sample data")

	kind, err := sampleset.ParseKind(ff.precision)
	if err != nil {
		return nil, err
	}
	if kind == sampleset.Float32Kind {
		return polyfit.New(toFloat32(x), toFloat32(y), opt)
	}
	return polyfit.New(sampleset.Float64Seq(x), sampleset.Float64Seq(y), opt)
}

func report(f *polyfit.Fit, ff *fitFlags, degree int, terms []float64) error {
	r2, err := f.CorrelationCoefficient(terms)
	if err != nil {
		return err
	}
	se, err := f.StandardError(terms)
	if err != nil {
		return err
	}
	expr, err := f.Expression(degree)
	if err != nil {
		return err
	}

	log.Info().
		Int("degree", degree).
		Float64("correlation_coefficient", r2).
		Float64("standard_error", se).
		Msg("fit complete")
	fmt.Println(expr)

	if ff.plotPath != "" {
		if err := f.PlotFit(ff.plotPath, degree); err != nil {
			return fmt.Errorf("unable to render plot, %w", err)
		}
		log.Info().Str("path", ff.plotPath).Msg("wrote fit chart")
	}
	if ff.modelPath != "" {
		m, err := f.Model(degree)
		if err != nil {
			return err
		}
		if err := writeModel(ff.modelPath, m); err != nil {
			return fmt.Errorf("unable to write model, %w", err)
		}
		log.Info().Str("path", ff.modelPath).Msg("wrote model")
	}
	return nil
}

func readSamples(path string) ([]float64, []float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	var x, y []float64
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		row++

		xv, xerr := strconv.ParseFloat(rec[0], 64)
		yv, yerr := strconv.ParseFloat(rec[1], 64)
		if xerr != nil || yerr != nil {
			// tolerate a single header row
			if row == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("row %d is not numeric: %q", row, rec)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

func writeModel(path string, m polyfit.Model) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(file)
		defer zw.Close()
		w = zw
	}
	return m.WriteJSON(w)
}

func readModel(path string) (polyfit.Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return polyfit.Model{}, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return polyfit.Model{}, err
		}
		defer zr.Close()
		r = zr
	}
	return polyfit.LoadModel(r)
}

func toFloat32(in []float64) sampleset.Float32Seq {
	out := make(sampleset.Float32Seq, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
