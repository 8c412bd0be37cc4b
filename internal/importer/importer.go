// Package importer reads batches of cargo dimensions from CSV and Excel
// files. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// ImportResult holds the results of an import operation. Row problems are
// collected in Errors and never abort the import.
type ImportResult struct {
	Cargo    []model.Cargo
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label  int
	Width  int
	Height int
	Depth  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":  {"label", "name", "item", "cargo", "description"},
	"width":  {"width", "w", "x"},
	"height": {"height", "h", "y"},
	"depth":  {"depth", "d", "length", "len", "z"},
}

// DetectCSVDelimiter picks the delimiter among comma, semicolon, tab and
// pipe that splits the data into the most rows as wide as the first one.
// Comment lines are ignored, as they are on import.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := newCSVReader(bytes.NewReader(data), delim).ReadAll()
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}

		width := len(records[0])
		consistent := 0
		for _, r := range records {
			if len(r) == width {
				consistent++
			}
		}
		if score := consistent*10 + width; score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (label, width, height, depth) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Depth: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				var slot *int
				switch role {
				case "label":
					slot = &mapping.Label
				case "width":
					slot = &mapping.Width
				case "height":
					slot = &mapping.Height
				case "depth":
					slot = &mapping.Depth
				}
				if *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2, Depth: 3}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber parses a float, accepting a decimal comma ("12,5").
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

// parseDim reads one positive, finite dimension. Decimal commas are accepted.
func parseDim(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := parseNumber(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	if v <= 0 {
		return 0, fmt.Sprintf("%s: %s must be positive", rowLabel, strings.ToUpper(name[:1])+name[1:])
	}
	return v, ""
}

// parseRow extracts one cargo entry from a row using the given column
// mapping. It returns the cargo and an error message for the row, if any.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.Cargo, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Cargo %d", count+1)
	}

	w, msg := parseDim(row, mapping.Width, "width", rowLabel)
	if msg != "" {
		return model.Cargo{}, msg
	}
	h, msg := parseDim(row, mapping.Height, "height", rowLabel)
	if msg != "" {
		return model.Cargo{}, msg
	}
	d, msg := parseDim(row, mapping.Depth, "depth", rowLabel)
	if msg != "" {
		return model.Cargo{}, msg
	}

	return model.Cargo{Label: label, Dims: model.Dims{Width: w, Height: h, Depth: d}}, ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports cargo rows from a CSV file, detecting the delimiter
// and mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, lines, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, lines, "Line", warnings)
}

// ImportCSVFromReader imports cargo rows from a CSV reader with a known
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	records, lines, err := readCSV(reader, delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, lines, "Line", nil)
}

func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	return reader
}

// readCSV returns the records together with the file line each starts on,
// so row errors still point at the right line after comments are dropped.
func readCSV(r io.Reader, delimiter rune) ([][]string, []int, error) {
	reader := newCSVReader(r, delimiter)
	var (
		records [][]string
		lines   []int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
	return records, lines, nil
}

// ImportExcel imports cargo rows from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, nil, "Row", nil)
}

// Import dispatches on the file extension: .xlsx and .xlsm go through
// ImportExcel, everything else is read as CSV.
func Import(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// lines holds the source line of each row; nil means row i is line i+1.
func importFromRows(rows [][]string, lines []int, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// An unrecognised header still has a non-numeric second column.
		if _, err := parseNumber(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		n := i + 1
		if lines != nil {
			n = lines[i]
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, n)
		cargo, errMsg := parseRow(row, mapping, rowLabel, len(result.Cargo))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Cargo = append(result.Cargo, cargo)
	}

	return result
}
