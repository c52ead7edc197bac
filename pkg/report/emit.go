package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// application names the JSON document; kept stable for downstream tooling.
const application = "SHT4x Sensor Calibration Use Case"

// Variable is one structured output record: a symbolic name, a human label,
// the value sequence (a distribution's support points, or the full Monte
// Carlo sample sequence), and its length.
type Variable struct {
	Symbol      string    `json:"symbol"`
	Description string    `json:"description"`
	Values      []float64 `json:"values"`
	Size        int       `json:"size"`
}

// Document is the top-level structured output.
type Document struct {
	Application string     `json:"application"`
	Variables   []Variable `json:"variables"`
}

// WriteJSON emits the structured document for the given records.
func WriteJSON(w io.Writer, vars []Variable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Application: application, Variables: vars})
}

// WriteCSV writes output distributions as columns: a header of variable
// names, then one row per support point. Shorter columns pad with empty
// cells.
func WriteCSV(w io.Writer, names []string, columns [][]float64) error {
	if len(names) != len(columns) {
		return fmt.Errorf("report: %d names for %d columns", len(names), len(columns))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}

	rows := 0
	for _, col := range columns {
		if len(col) > rows {
			rows = len(col)
		}
	}

	record := make([]string, len(columns))
	for i := 0; i < rows; i++ {
		for j, col := range columns {
			if i < len(col) {
				record[j] = strconv.FormatFloat(col[i], 'f', -1, 64)
			} else {
				record[j] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSamples dumps a raw Monte Carlo sample sequence, one value per line,
// with the elapsed-microseconds figure on the final line. This is the layout
// the offline analysis tooling reads back.
func WriteSamples(w io.Writer, xs []float64, elapsedMicros uint64) error {
	bw := bufio.NewWriter(w)
	for _, x := range xs {
		if _, err := fmt.Fprintf(bw, "%f\n", x); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", elapsedMicros); err != nil {
		return err
	}
	return bw.Flush()
}
