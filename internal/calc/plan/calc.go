package plan

import (
	"errors"
	"fmt"
	"math"

	"Dripline/internal/calc/deficit"
	"Dripline/internal/calc/electrolytes"
	"Dripline/internal/calc/maintenance"
	"Dripline/internal/calc/tbw"
	"Dripline/internal/fluids"
)

var (
	// ErrInvalidInput marks validation failures surfaced before any
	// calculation runs.
	ErrInvalidInput = errors.New("invalid patient input")
	// ErrUnknownFluid means the selection rule resolved to a fluid the
	// injected formulary does not stock.
	ErrUnknownFluid = errors.New("selected fluid missing from formulary")
)

// Input is the full patient picture for one 24-hour plan.
type Input struct {
	Age             int        `json:"age"`
	Gender          tbw.Gender `json:"gender"`
	WeightKg        float64    `json:"weight_kg"`
	Obese           bool       `json:"obese"`
	Malnourished    bool       `json:"malnourished"`
	CHF             bool       `json:"chf"`
	Pediatric       bool       `json:"pediatric"`
	InsulinInfusion bool       `json:"insulin_infusion"`
	LongNpo         bool       `json:"long_npo"`
	NpoHours        float64    `json:"npo_hours"`
	SerumNa         float64    `json:"serum_na"`
	SerumK          float64    `json:"serum_k"`
	SerumHCO3       float64    `json:"serum_hco3"`
	BloodGlucose    float64    `json:"blood_glucose"`
}

type Result struct {
	TBWLiters              float64                      `json:"tbw_liters"`
	MaintenanceRateMlPerHr float64                      `json:"maintenance_rate_ml_per_hr"`
	MaintenanceVolume24hMl float64                      `json:"maintenance_volume_24h_ml"`
	DeficitMl              float64                      `json:"deficit_ml"`
	TotalVolume24hMl       float64                      `json:"total_volume_24h_ml"`
	SodiumDeficitMEq       float64                      `json:"sodium_deficit_meq"`
	PotassiumDeficitMEq    float64                      `json:"potassium_deficit_meq"`
	BaseDeficitMEq         float64                      `json:"base_deficit_meq"`
	Fluid                  fluids.Fluid                 `json:"fluid"`
	MaintenanceIntake24h   map[fluids.Component]float64 `json:"maintenance_intake_24h"`
	KclSupplement          bool                         `json:"kcl_supplement"`
	OrderText              string                       `json:"order_text"`
}

// Calculator computes 24-hour fluid plans against an injected formulary.
type Calculator struct {
	Formulary fluids.Formulary
}

func New() Calculator {
	return Calculator{Formulary: fluids.Default()}
}

// Calculate runs the full pipeline: TBW, maintenance (with CHF restriction),
// NPO deficit, electrolyte deficits, fluid selection and the maintenance
// intake projection. It is deterministic and touches no shared state.
func (c Calculator) Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	tbwRes, err := tbw.Calculate(tbw.Input{
		WeightKg:     in.WeightKg,
		Gender:       in.Gender,
		Obese:        in.Obese,
		Malnourished: in.Malnourished,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	maintRes, err := maintenance.Calculate(maintenance.Input{WeightKg: in.WeightKg})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rate := maintRes.RateMlPerHr
	if in.CHF {
		rate *= 0.5
	}
	maint24 := rate * 24

	defRes, err := deficit.Calculate(deficit.Input{RateMlPerHr: rate, NpoHours: in.NpoHours})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	elecRes, err := electrolytes.Calculate(electrolytes.Input{
		TBWLiters: tbwRes.TBWLiters,
		WeightKg:  in.WeightKg,
		SerumNa:   in.SerumNa,
		SerumK:    in.SerumK,
		SerumHCO3: in.SerumHCO3,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fluid := selectFluid(in, defRes.DeficitMl)
	comp, ok := c.Formulary[fluid]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownFluid, fluid)
	}

	intake := make(map[fluids.Component]float64, len(comp))
	for component, perLiter := range comp {
		intake[component] = perLiter * (maint24 / 1000)
	}

	kcl := in.SerumK < 3.5

	return Result{
		TBWLiters:              tbwRes.TBWLiters,
		MaintenanceRateMlPerHr: rate,
		MaintenanceVolume24hMl: maint24,
		DeficitMl:              defRes.DeficitMl,
		TotalVolume24hMl:       maint24 + defRes.DeficitMl,
		SodiumDeficitMEq:       elecRes.SodiumMEq,
		PotassiumDeficitMEq:    elecRes.PotassiumMEq,
		BaseDeficitMEq:         elecRes.BaseMEq,
		Fluid:                  fluid,
		MaintenanceIntake24h:   intake,
		KclSupplement:          kcl,
		OrderText:              orderText(fluid, rate, kcl),
	}, nil
}

func validate(in Input) error {
	if in.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if in.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	}
	if in.NpoHours < 0 {
		return fmt.Errorf("%w: NPO hours must not be negative", ErrInvalidInput)
	}
	if in.Gender != tbw.Male && in.Gender != tbw.Female {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, in.Gender)
	}
	for _, lab := range []float64{in.SerumNa, in.SerumK, in.SerumHCO3, in.BloodGlucose} {
		if math.IsNaN(lab) || math.IsInf(lab, 0) {
			return fmt.Errorf("%w: lab values must be finite", ErrInvalidInput)
		}
	}
	return nil
}

// selectFluid is the fixed decision table. Pediatric patients always get a
// dextrose-containing fluid; adults get saline for hyponatremia or any
// volume deficit, otherwise a balanced crystalloid, escalated to the
// dextrose counterpart when fasting, insulin or malnutrition calls for it.
func selectFluid(in Input, deficitMl float64) fluids.Fluid {
	if in.Pediatric {
		if in.LongNpo {
			return fluids.D5LR
		}
		return fluids.D5NS
	}

	fluid := fluids.LR
	if in.SerumNa < 130 || deficitMl > 0 {
		fluid = fluids.NS
	}
	if in.LongNpo || in.InsulinInfusion || in.Malnourished {
		fluid = fluid.WithDextrose()
	}
	return fluid
}

func orderText(fluid fluids.Fluid, rate float64, kcl bool) string {
	order := fmt.Sprintf("%s infusion at %.0f mL/hr for 24h via pump", fluid, rate)
	if fluid.HasDextrose() {
		order += " (contains dextrose)"
	}
	if kcl {
		order += "; add 20 mEq KCl per L"
	}
	return order
}
