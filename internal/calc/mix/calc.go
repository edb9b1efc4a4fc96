package mix

import "fmt"

type Input struct {
	FckMPa  float64 `json:"fck_mpa"`
	SlumpCm float64 `json:"slump_cm"`
}

type Result struct {
	WaterCementRatio float64  `json:"water_cement_ratio"`
	CementKgM3       float64  `json:"cement_kg_m3"`
	WaterLM3         float64  `json:"water_l_m3"`
	SandKgM3         float64  `json:"sand_kg_m3"`
	GravelKgM3       float64  `json:"gravel_kg_m3"`
	AdmixtureKgM3    float64  `json:"admixture_kg_m3"`
	Advisories       []string `json:"advisories,omitempty"`
	Notes            string   `json:"notes"`
}

// Densities for the absolute-volume balance (kg/m3), plus entrained air.
const (
	cementGrainDensity = 3100.0
	waterDensity       = 1000.0
	sandBulkDensity    = 1550.0
	gravelBulkDensity  = 1450.0
	entrainedAirVolume = 0.02
)

// Simplified per-cubic-meter dosage estimate (absolute volume method).
func Calculate(in Input) (Result, error) {
	if in.FckMPa <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.SlumpCm <= 0 {
		in.SlumpCm = 10.0
	}

	var advisories []string

	// Water/cement ratio by target strength, inclusive upper bounds.
	var ratio float64
	switch {
	case in.FckMPa <= 20:
		ratio = 0.65
	case in.FckMPa <= 25:
		ratio = 0.60
	case in.FckMPa <= 30:
		ratio = 0.55
	case in.FckMPa <= 35:
		ratio = 0.50
	case in.FckMPa <= 40:
		ratio = 0.45
	default:
		ratio = 0.40
		advisories = append(advisories, "fck above 40 MPa: superplasticizer admixture is mandatory")
	}

	// Water demand by slump, inclusive upper bounds.
	var water float64
	switch {
	case in.SlumpCm <= 5:
		water = 175.0
	case in.SlumpCm <= 10:
		water = 190.0
	case in.SlumpCm <= 15:
		water = 205.0
	default:
		water = 220.0
		advisories = append(advisories, "slump above 15 cm: consistency outside the controlled range")
	}

	cement := water / ratio

	dosage := 0.0
	if in.FckMPa > 25 || in.SlumpCm > 10 {
		dosage = 0.008 // 0.8% of cement mass
	}
	admixture := cement * dosage

	cementVol := cement / cementGrainDensity
	waterVol := water / waterDensity
	aggregateVol := 1.0 - cementVol - waterVol - entrainedAirVolume

	// Sand fraction: strength override first, then the slump override,
	// which wins when both conditions hold.
	sandFraction := 0.45
	if in.FckMPa > 30 {
		sandFraction = 0.40
	}
	if in.SlumpCm > 12 {
		sandFraction = 0.50
	}

	sandVol := aggregateVol * sandFraction
	gravelVol := aggregateVol * (1.0 - sandFraction)

	return Result{
		WaterCementRatio: ratio,
		CementKgM3:       cement,
		WaterLM3:         water,
		SandKgM3:         sandVol * sandBulkDensity,
		GravelKgM3:       gravelVol * gravelBulkDensity,
		AdmixtureKgM3:    admixture,
		Advisories:       advisories,
		Notes:            "Estimated dosage per cubic meter for the target fck and slump.",
	}, nil
}
