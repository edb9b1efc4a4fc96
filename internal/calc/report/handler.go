package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	mix "github.com/vinicius847-o/CPDgit/internal/calc/mix"
	strength "github.com/vinicius847-o/CPDgit/internal/calc/strength"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project  string          `json:"project"`
	Author   string          `json:"author"`
	Title    string          `json:"title"`
	Notes    string          `json:"notes"`
	Mix      *mix.Input      `json:"mix,omitempty"`
	Strength *strength.Input `json:"strength,omitempty"`
}

type Handler struct{}

// Generate runs the requested calculation and renders it as a one-page PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Mix == nil && input.Strength == nil {
		http.Error(w, "Mix or strength input required", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Concrete QC Report"
	}
	if input.Strength != nil {
		if input.Strength.AgeDays == 0 {
			input.Strength.AgeDays = 28
		}
		if input.Strength.TargetMPa == 0 {
			input.Strength.TargetMPa = 30.0
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if input.Mix != nil {
		res, err := mix.Calculate(*input.Mix)
		if err != nil {
			http.Error(w, "Calculation error", http.StatusBadRequest)
			return
		}
		writeMixSection(pdf, *input.Mix, res)
	}
	if input.Strength != nil {
		res, err := strength.Calculate(*input.Strength)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeStrengthSection(pdf, *input.Strength, res)
	}

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeMixSection(pdf *gofpdf.Fpdf, in mix.Input, res mix.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Mix design estimate (fck %.1f MPa, slump %.1f cm)", in.FckMPa, in.SlumpCm))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Water/cement ratio: %.2f", res.WaterCementRatio),
		fmt.Sprintf("Cement: %.1f kg/m3", res.CementKgM3),
		fmt.Sprintf("Water: %.1f L/m3", res.WaterLM3),
		fmt.Sprintf("Sand: %.1f kg/m3", res.SandKgM3),
		fmt.Sprintf("Gravel: %.1f kg/m3", res.GravelKgM3),
		fmt.Sprintf("Admixture: %.2f kg/m3", res.AdmixtureKgM3),
	}
	lines = append(lines, res.Advisories...)
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeStrengthSection(pdf *gofpdf.Fpdf, in strength.Input, res strength.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Compressive strength evaluation (%d specimens, %d days)", len(in.LoadsKN), in.AgeDays))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for i, fc := range res.StrengthsMPa {
		pdf.Cell(0, 6, fmt.Sprintf("Specimen %d: %.1f kN -> %.2f MPa", i+1, in.LoadsKN[i], fc))
		pdf.Ln(6)
	}
	lines := []string{
		fmt.Sprintf("Mean fcm: %.2f MPa", res.MeanMPa),
		fmt.Sprintf("Std deviation: %.2f MPa", res.StdDevMPa),
		fmt.Sprintf("Characteristic estimate: %.2f MPa", res.CharacteristicMPa),
		fmt.Sprintf("Verdict: %s (target %.1f MPa)", res.Verdict, in.TargetMPa),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
