package strength

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is returned when a precondition on the test series fails.
// No partial result is computed in that case.
var ErrInvalidInput = errors.New("invalid input")

type Shape string

const (
	ShapeCylinder Shape = "cylinder"
	ShapeCube     Shape = "cube"
)

type Verdict string

const (
	VerdictApproved Verdict = "approved"
	VerdictMarginal Verdict = "marginal"
	VerdictRejected Verdict = "rejected"
)

type Input struct {
	LoadsKN     []float64 `json:"loads_kn"`
	DimensionMM float64   `json:"dimension_mm"`
	Shape       string    `json:"shape"`
	AgeDays     int       `json:"age_days"`
	TargetMPa   float64   `json:"target_mpa"`
}

type Result struct {
	AreaMM2           float64   `json:"area_mm2"`
	StrengthsMPa      []float64 `json:"strengths_mpa"`
	MeanMPa           float64   `json:"mean_mpa"`
	StdDevMPa         float64   `json:"std_dev_mpa"`
	CharacteristicMPa float64   `json:"characteristic_mpa"`
	Verdict           Verdict   `json:"verdict"`
	Notes             string    `json:"notes"`
}

// ParseShape accepts English and Portuguese spellings, case-insensitive.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cylinder", "cilindro":
		return ShapeCylinder, nil
	case "cube", "cubo":
		return ShapeCube, nil
	}
	return "", fmt.Errorf("%w: unknown specimen shape %q", ErrInvalidInput, s)
}

// Compressive strength evaluation of one test series: per-specimen
// strengths, mean, sample standard deviation and the characteristic
// estimate fck = fcm - 1.65 s, judged against the project target.
func Calculate(in Input) (Result, error) {
	if len(in.LoadsKN) == 0 {
		return Result{}, fmt.Errorf("%w: no rupture loads", ErrInvalidInput)
	}
	for i, load := range in.LoadsKN {
		if load <= 0 {
			return Result{}, fmt.Errorf("%w: rupture load #%d must be positive", ErrInvalidInput, i+1)
		}
	}
	if in.DimensionMM <= 0 {
		return Result{}, fmt.Errorf("%w: specimen dimension must be positive", ErrInvalidInput)
	}
	shape, err := ParseShape(in.Shape)
	if err != nil {
		return Result{}, err
	}
	if in.AgeDays <= 0 {
		return Result{}, fmt.Errorf("%w: curing age must be positive", ErrInvalidInput)
	}
	if in.TargetMPa <= 0 {
		return Result{}, fmt.Errorf("%w: project target strength must be positive", ErrInvalidInput)
	}

	area := in.DimensionMM * in.DimensionMM
	if shape == ShapeCylinder {
		area = math.Pi * in.DimensionMM * in.DimensionMM / 4.0
	}

	strengths := make([]float64, 0, len(in.LoadsKN))
	sum := 0.0
	for _, load := range in.LoadsKN {
		fc := load * 1000.0 / area // kN -> N over mm2
		strengths = append(strengths, fc)
		sum += fc
	}
	mean := sum / float64(len(strengths))

	// Sample standard deviation, zero for a single specimen.
	stdDev := 0.0
	if len(strengths) > 1 {
		ss := 0.0
		for _, fc := range strengths {
			d := fc - mean
			ss += d * d
		}
		stdDev = math.Sqrt(ss / float64(len(strengths)-1))
	}

	characteristic := mean - 1.65*stdDev

	verdict := VerdictRejected
	switch {
	case characteristic >= in.TargetMPa:
		verdict = VerdictApproved
	case characteristic >= 0.9*in.TargetMPa:
		verdict = VerdictMarginal
	}

	return Result{
		AreaMM2:           area,
		StrengthsMPa:      strengths,
		MeanMPa:           mean,
		StdDevMPa:         stdDev,
		CharacteristicMPa: characteristic,
		Verdict:           verdict,
		Notes:             fmt.Sprintf("Characteristic strength estimated at %d days as fcm - 1.65 s.", in.AgeDays),
	}, nil
}
