package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// looksLikeHeader reports whether a CSV row is a column-name header rather
// than a data row, i.e. its first field does not parse as a number.
func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	return err != nil
}

// ParseDoseResponse reads a CSV file of dose–response observations. Each
// data row is "concentration,viability" (µM, percent); a single header row
// is tolerated and skipped. Rows with unparseable values or non-positive
// concentrations are skipped with a warning rather than aborting the parse;
// log-scale fitting cannot use a zero or negative dose.
func ParseDoseResponse(filepath string) (*ParsedDoseResponse, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // tolerate trailing columns (replicate IDs, units)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	parsed := NewParsedDoseResponse()

	for rowIdx, row := range allRows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue // skip empty rows
		}
		if rowIdx == 0 && looksLikeHeader(row) {
			continue
		}
		if len(row) < 2 {
			parsed.ParseErrors = append(parsed.ParseErrors,
				fmt.Sprintf("Warning: row %d has %d columns, expected at least 2. Skipped.", rowIdx+1, len(row)))
			continue
		}

		conc, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			parsed.ParseErrors = append(parsed.ParseErrors,
				fmt.Sprintf("Warning: row %d concentration '%s' is not numeric. Skipped. Error: %v", rowIdx+1, row[0], err))
			continue
		}
		viab, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			parsed.ParseErrors = append(parsed.ParseErrors,
				fmt.Sprintf("Warning: row %d viability '%s' is not numeric. Skipped. Error: %v", rowIdx+1, row[1], err))
			continue
		}
		if conc <= 0 {
			parsed.ParseErrors = append(parsed.ParseErrors,
				fmt.Sprintf("Warning: row %d concentration %g is not positive. Skipped.", rowIdx+1, conc))
			continue
		}

		parsed.Points = append(parsed.Points, DataPoint{Concentration: conc, Viability: viab})
	}

	if len(parsed.Points) == 0 {
		parsed.ParseErrors = append(parsed.ParseErrors, "Warning: no usable data rows found.")
	}

	return parsed, nil
}
