package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	strength "github.com/vinicius847-o/CPDgit/internal/calc/strength"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", name, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return buf
}

func postFile(t *testing.T, content *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "specimens.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/tools/strength/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Specimens(rec, req)
	return rec
}

func TestSpecimens_Import(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"dimension_mm", "shape", "age_days", "target_mpa", "loads_kn"},
		{150, "cylinder", 28, 30, 650, 670, 660, 645, 675},
		{100, "cubo", 28, 25, 300, 310},
		{"not-a-number", "cylinder", 28, 30, 650}, // skipped
	})

	rec := postFile(t, buf)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var out SpecimenImportResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	if out.Results[0].Verdict != strength.VerdictApproved {
		t.Errorf("row 1 verdict = %v, want approved", out.Results[0].Verdict)
	}
	if got := len(out.Results[1].StrengthsMPa); got != 2 {
		t.Errorf("row 2 has %d strengths, want 2", got)
	}
}

func TestSpecimens_EmptySheet(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"dimension_mm", "shape", "age_days", "target_mpa", "loads_kn"},
	})
	rec := postFile(t, buf)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSpecimens_FileRequired(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/strength/import", nil)
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Specimens(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
