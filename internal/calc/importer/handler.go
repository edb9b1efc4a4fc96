package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	strength "github.com/vinicius847-o/CPDgit/internal/calc/strength"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SpecimenImportResult struct {
	Count   int               `json:"count"`
	Results []strength.Result `json:"results"`
}

// Specimens imports an xlsx sheet of test series, one row per series,
// and evaluates each row independently. Malformed rows are skipped.
func (h *Handler) Specimens(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []strength.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseSpecimenRow(rows[i])
		if err != nil {
			continue
		}
		res, err := strength.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SpecimenImportResult{Count: len(results), Results: results})
}

func parseSpecimenRow(row []string) (strength.Input, error) {
	// expected: dimension_mm, shape, age_days, target_mpa, loads_kn...
	if len(row) < 5 {
		return strength.Input{}, fmt.Errorf("bad row")
	}
	dim, err := toFloat(row[0])
	if err != nil {
		return strength.Input{}, err
	}
	shape := row[1]
	age := 28
	if row[2] != "" {
		v, err := toFloat(row[2])
		if err != nil {
			return strength.Input{}, err
		}
		age = int(v)
	}
	target := 30.0
	if row[3] != "" {
		target, err = toFloat(row[3])
		if err != nil {
			return strength.Input{}, err
		}
	}
	var loads []float64
	for _, cell := range row[4:] {
		if cell == "" {
			continue
		}
		v, err := toFloat(cell)
		if err != nil {
			return strength.Input{}, err
		}
		loads = append(loads, v)
	}
	return strength.Input{
		LoadsKN:     loads,
		DimensionMM: dim,
		Shape:       shape,
		AgeDays:     age,
		TargetMPa:   target,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
