package strength

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculate_CylinderSeries(t *testing.T) {
	res, err := Calculate(Input{
		LoadsKN:     []float64{650, 670, 660, 645, 675},
		DimensionMM: 150,
		Shape:       "cylinder",
		AgeDays:     28,
		TargetMPa:   30,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if !almostEqual(res.AreaMM2, 17671.46, 0.01) {
		t.Errorf("area = %v, want 17671.46", res.AreaMM2)
	}

	wantStrengths := []float64{36.78, 37.91, 37.35, 36.50, 38.20}
	if len(res.StrengthsMPa) != len(wantStrengths) {
		t.Fatalf("got %d strengths, want %d", len(res.StrengthsMPa), len(wantStrengths))
	}
	for i, want := range wantStrengths {
		if !almostEqual(res.StrengthsMPa[i], want, 0.01) {
			t.Errorf("strength[%d] = %v, want %v", i, res.StrengthsMPa[i], want)
		}
	}

	if !almostEqual(res.MeanMPa, 37.35, 0.01) {
		t.Errorf("fcm = %v, want 37.35", res.MeanMPa)
	}
	if !almostEqual(res.StdDevMPa, 0.7214, 0.001) {
		t.Errorf("s = %v, want 0.7214", res.StdDevMPa)
	}
	if !almostEqual(res.CharacteristicMPa, 36.158, 0.001) {
		t.Errorf("fck,est = %v, want 36.158", res.CharacteristicMPa)
	}
	if res.Verdict != VerdictApproved {
		t.Errorf("verdict = %v, want approved", res.Verdict)
	}
}

func TestCalculate_CubeArea(t *testing.T) {
	res, err := Calculate(Input{
		LoadsKN:     []float64{500},
		DimensionMM: 100,
		Shape:       "cube",
		AgeDays:     28,
		TargetMPa:   30,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.AreaMM2 != 10000 {
		t.Errorf("area = %v, want 10000", res.AreaMM2)
	}
	if !almostEqual(res.StrengthsMPa[0], 50.0, 1e-9) {
		t.Errorf("strength = %v, want 50", res.StrengthsMPa[0])
	}
}

func TestCalculate_SingleSpecimen(t *testing.T) {
	res, err := Calculate(Input{
		LoadsKN:     []float64{600},
		DimensionMM: 150,
		Shape:       "cylinder",
		AgeDays:     7,
		TargetMPa:   30,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.StdDevMPa != 0 {
		t.Errorf("s = %v, want exactly 0 for a single specimen", res.StdDevMPa)
	}
	if res.CharacteristicMPa != res.MeanMPa {
		t.Errorf("fck,est = %v, want equal to fcm %v", res.CharacteristicMPa, res.MeanMPa)
	}
}

func TestCalculate_VerdictBoundaries(t *testing.T) {
	// Cube of 100 mm gives area 10000 mm2, so a load of L kN is L/10 MPa
	// exactly. A single specimen makes fck,est equal to that strength.
	tests := []struct {
		name   string
		loadKN float64
		want   Verdict
	}{
		{"estimate equals target", 300, VerdictApproved},
		{"estimate equals 90 percent of target", 270, VerdictMarginal},
		{"estimate just below 90 percent", 269.99, VerdictRejected},
		{"between 90 percent and target", 285, VerdictMarginal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(Input{
				LoadsKN:     []float64{tt.loadKN},
				DimensionMM: 100,
				Shape:       "cube",
				AgeDays:     28,
				TargetMPa:   30,
			})
			if err != nil {
				t.Fatalf("Calculate: %v", err)
			}
			if res.Verdict != tt.want {
				t.Errorf("verdict = %v (fck,est %v), want %v", res.Verdict, res.CharacteristicMPa, tt.want)
			}
		})
	}
}

func TestCalculate_ShapeSpellings(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"cylinder", ShapeCylinder},
		{"Cilindro", ShapeCylinder},
		{"CYLINDER", ShapeCylinder},
		{"cube", ShapeCube},
		{"CUBO", ShapeCube},
		{" cube ", ShapeCube},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if err != nil {
			t.Errorf("ParseShape(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseShape("sphere"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseShape(sphere) error = %v, want ErrInvalidInput", err)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	valid := Input{
		LoadsKN:     []float64{650, 660},
		DimensionMM: 150,
		Shape:       "cylinder",
		AgeDays:     28,
		TargetMPa:   30,
	}

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"empty loads", func(in *Input) { in.LoadsKN = nil }},
		{"zero load", func(in *Input) { in.LoadsKN = []float64{650, 0} }},
		{"negative load", func(in *Input) { in.LoadsKN = []float64{-650} }},
		{"zero dimension", func(in *Input) { in.DimensionMM = 0 }},
		{"unknown shape", func(in *Input) { in.Shape = "sphere" }},
		{"zero age", func(in *Input) { in.AgeDays = 0 }},
		{"negative age", func(in *Input) { in.AgeDays = -3 }},
		{"zero target", func(in *Input) { in.TargetMPa = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			res, err := Calculate(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			if len(res.StrengthsMPa) != 0 || res.MeanMPa != 0 {
				t.Errorf("partial result returned on invalid input: %+v", res)
			}
		})
	}
}
