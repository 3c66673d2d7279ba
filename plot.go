package polyfit

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineFit generates an echarts line chart plotting the observed values
// against the fitted polynomial evaluated at the sample points.
func LineFit(title string, x, actual, fitted []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(x))
	lineDataFitted := make([]opts.LineData, 0, len(x))
	for i := range x {
		lineDataActual = append(lineDataActual, opts.LineData{Value: actual[i]})
		lineDataFitted = append(lineDataFitted, opts.LineData{Value: fitted[i]})
	}

	line.SetXAxis(x).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fitted", lineDataFitted)
	return line
}

// PlotFit uses the Apache Echarts library to generate an html file showing
// the samples along with the polynomial fitted at the given degree.
func (f *Fit) PlotFit(path string, degree int) error {
	if f.eng == nil {
		return ErrNoSamples
	}

	terms, err := f.ComputeCoefficients(degree)
	if err != nil {
		return err
	}
	eval := evaluatorFor(f.kind, terms)

	x := f.data.X.Float64()
	fitted := make([]float64, len(x))
	for i, xv := range x {
		fitted[i] = eval(xv)
	}

	page := components.NewPage()
	page.AddCharts(
		LineFit("Polynomial Fit", x, f.data.Y.Float64(), fitted),
	)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(io.MultiWriter(file)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
