package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

const curveSamples = 200

// CreateCurvePlot renders the observed points and, when a fit is available,
// the fitted curve sampled through fit.Evaluate on a log10 concentration
// axis. A finite IC50 is drawn as a dashed vertical marker. Returns PNG
// bytes.
func CreateCurvePlot(sorted []parser.DataPoint, curve *fit.FittedCurve, metrics fit.Metrics, title string) ([]byte, error) {
	if len(sorted) == 0 {
		return nil, fmt.Errorf("no data points to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Concentration (µM)"
	p.Y.Label.Text = "Viability (%)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	minConc := sorted[0].Concentration
	maxConc := sorted[len(sorted)-1].Concentration

	pts := make(plotter.XYs, len(sorted))
	for i, dp := range sorted {
		pts[i] = plotter.XY{X: dp.Concentration, Y: dp.Viability}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %v", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("Observed", scatter)

	if curve != nil && minConc < maxConc {
		logMin, logMax := math.Log10(minConc), math.Log10(maxConc)
		curvePts := make(plotter.XYs, curveSamples)
		for i := 0; i < curveSamples; i++ {
			c := math.Pow(10, logMin+float64(i)*(logMax-logMin)/float64(curveSamples-1))
			curvePts[i] = plotter.XY{X: c, Y: fit.Evaluate(curve.Type, c, curve.Params) * 100}
		}
		line, err := plotter.NewLine(curvePts)
		if err != nil {
			return nil, fmt.Errorf("failed to create fit line: %v", err)
		}
		line.Color = color.RGBA{R: 255, A: 255}
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s fit", curve.Type), line)
	}

	if !math.IsNaN(metrics.IC50) && metrics.IC50 >= minConc && metrics.IC50 <= maxConc {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: metrics.IC50, Y: 0},
			{X: metrics.IC50, Y: 100},
		})
		if err == nil {
			marker.Color = color.Gray{Y: 96}
			marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
			p.Add(marker)
			p.Legend.Add(fmt.Sprintf("IC50 = %.3g µM", metrics.IC50), marker)
		}
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(-10)

	writer, err := p.WriterTo(vg.Points(640), vg.Points(420), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
