package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

// CreateResidualPlot renders observed-minus-predicted viability (percent)
// per concentration on a log10 axis, with a zero reference line. Useful for
// spotting systematic lack of fit that R² alone hides. Returns PNG bytes.
func CreateResidualPlot(sorted []parser.DataPoint, curve *fit.FittedCurve, title string) ([]byte, error) {
	if curve == nil {
		return nil, fmt.Errorf("no fitted curve to compute residuals from")
	}
	if len(sorted) == 0 {
		return nil, fmt.Errorf("no data points to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Concentration (µM)"
	p.Y.Label.Text = "Residual (%)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	minConc := sorted[0].Concentration
	maxConc := sorted[len(sorted)-1].Concentration

	zero, err := plotter.NewLine(plotter.XYs{{X: minConc, Y: 0}, {X: maxConc, Y: 0}})
	if err == nil {
		zero.Color = color.Gray{Y: 128}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(zero)
	}

	pts := make(plotter.XYs, len(sorted))
	for i, dp := range sorted {
		predicted := fit.Evaluate(curve.Type, dp.Concentration, curve.Params) * 100
		pts[i] = plotter.XY{X: dp.Concentration, Y: dp.Viability - predicted}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create residual scatter: %v", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	writer, err := p.WriterTo(vg.Points(640), vg.Points(280), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
