package parser

import "sort"

// DataPoint is a single dose–response observation: a tested drug
// concentration in µM and the measured cell viability in percent.
// Viability is nominally in [0, 100] but assay noise can push it outside.
type DataPoint struct {
	Concentration float64
	Viability     float64
}

// ParsedDoseResponse holds the observations read from one CSV file, in
// arrival order, plus any non-fatal issues encountered while reading.
type ParsedDoseResponse struct {
	Points      []DataPoint
	ParseErrors []string // non-fatal warnings collected during parsing
}

func NewParsedDoseResponse() *ParsedDoseResponse {
	return &ParsedDoseResponse{
		Points:      make([]DataPoint, 0),
		ParseErrors: make([]string, 0),
	}
}

// SortPoints returns a copy of points sorted ascending by concentration.
// All fitting and metric computations operate on the sorted copy; the
// arrival order of the input is left untouched for export.
func SortPoints(points []DataPoint) []DataPoint {
	sorted := make([]DataPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Concentration < sorted[j].Concentration
	})
	return sorted
}
