package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

const (
	inchToMm        = 25.4
	pdfPageWidth    = 8.5 * inchToMm // Letter portrait
	pdfPageHeight   = 11 * inchToMm
	pdfMargin       = 0.5 * inchToMm
	pdfContentWidth = pdfPageWidth - (2 * pdfMargin)
	pdfUsableHeight = pdfPageHeight - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and manual Y-position tracking for
// flowing content.
type pdfStyler struct {
	pdf        *gofpdf.Fpdf
	styles     map[string]func()
	lineHeight float64
	currentY   float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:        pdf,
		styles:     make(map[string]func()),
		lineHeight: 6, // mm
		currentY:   pdfMargin,
	}
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
	return s
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > pdfUsableHeight {
		s.pdf.AddPage()
		s.currentY = pdfMargin
	}
}

func (s *pdfStyler) writeParagraph(text, styleName, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// writeTable writes a simple bordered table with a shaded header row.
func (s *pdfStyler) writeTable(headers []string, rows [][]string, colWidthsRel []float64) {
	colWidths := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidths[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * float64(len(rows)+1))

	x := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(x, s.currentY)
		s.pdf.CellFormat(colWidths[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	s.currentY += s.lineHeight

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		x = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(colWidths[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			x += colWidths[i]
		}
		s.currentY += s.lineHeight
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height
	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// formatMetric renders a metric value with fixed precision, or "n/a" for
// NaN (undefined) values.
func formatMetric(v float64, format string) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf(format, v)
}

// BuildPDFReport assembles the dose–response report: a metrics summary, the
// fitted parameters, the data table, and the rendered plots.
func BuildPDFReport(filepath, drugLabel string, points []parser.DataPoint,
	curve *fit.FittedCurve, metrics fit.Metrics, plotImages map[string][]byte) error {

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph(fmt.Sprintf("Dose-Response Report: %s (%d points)", drugLabel, len(points)), "h1", "C")
	styler.addSpacer(4)

	if curve == nil {
		styler.writeParagraph("Insufficient data for a fit; no metrics available.", "normal", "L")
	} else {
		styler.writeParagraph("Summary Metrics", "h2", "L")
		styler.writeTable(
			[]string{"Fit Type", "R²", "IC50 (µM)", "AUC", "Emax (%)"},
			[][]string{{
				string(curve.Type),
				formatMetric(metrics.RSquared, "%.4f"),
				formatMetric(metrics.IC50, "%.4g"),
				formatMetric(metrics.AUC, "%.4f"),
				formatMetric(metrics.Emax, "%.2f"),
			}},
			[]float64{0.2, 0.2, 0.2, 0.2, 0.2},
		)
		styler.addSpacer(4)

		styler.writeParagraph("Fitted Parameters", "h2", "L")
		paramRows := make([][]string, 0, len(curve.Params)/3)
		for phase := 0; phase*3+2 < len(curve.Params); phase++ {
			paramRows = append(paramRows, []string{
				fmt.Sprintf("%d", phase+1),
				fmt.Sprintf("%.4f", curve.Params[phase*3]),
				fmt.Sprintf("%.4f", curve.Params[phase*3+1]),
				fmt.Sprintf("%.4g", curve.Params[phase*3+2]),
			})
		}
		styler.writeTable(
			[]string{"Phase", "Hill Slope", "eInf", "EC50 (µM)"},
			paramRows,
			[]float64{0.15, 0.3, 0.25, 0.3},
		)
		styler.addSpacer(4)
	}

	imgWidth := pdfContentWidth * 0.9
	if imgBytes, ok := plotImages["curve"]; ok && len(imgBytes) > 0 {
		styler.writeParagraph("Fitted Curve", "h2", "L")
		styler.addImage(imgBytes, "curve", imgWidth, imgWidth*(420.0/640.0), "Observed viability and fitted model, log10 concentration axis")
	}
	if imgBytes, ok := plotImages["residuals"]; ok && len(imgBytes) > 0 {
		styler.writeParagraph("Residuals", "h2", "L")
		styler.addImage(imgBytes, "residuals", imgWidth, imgWidth*(280.0/640.0), "Observed minus predicted viability (%)")
	}

	styler.writeParagraph("Data", "h2", "L")
	dataRows := make([][]string, len(points))
	for i, pt := range points {
		dataRows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.4g", pt.Concentration),
			fmt.Sprintf("%.2f", pt.Viability),
		}
	}
	styler.writeTable(
		[]string{"#", "Concentration (µM)", "Viability (%)"},
		dataRows,
		[]float64{0.15, 0.45, 0.4},
	)

	return pdf.OutputFileAndClose(filepath)
}
