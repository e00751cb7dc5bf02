package fluids

// Fluid identifies one of the stocked IV fluids. It is a tagged variant:
// branching on dextrose content or base electrolyte profile goes through
// the methods below, never through the display name.
type Fluid string

const (
	LR   Fluid = "Lactated Ringer's"
	NS   Fluid = "0.9% NaCl"
	D5NS Fluid = "D5NS"
	D5LR Fluid = "D5LR"
)

// BaseProfile is the electrolyte profile of a fluid with dextrose ignored.
type BaseProfile string

const (
	BaseLR BaseProfile = "LR"
	BaseNS BaseProfile = "NS"
)

func (f Fluid) HasDextrose() bool {
	return f == D5NS || f == D5LR
}

func (f Fluid) Base() BaseProfile {
	if f == LR || f == D5LR {
		return BaseLR
	}
	return BaseNS
}

// WithDextrose returns the dextrose-containing counterpart carrying the
// same base electrolyte profile. Already-escalated fluids are returned as is.
func (f Fluid) WithDextrose() Fluid {
	if f.HasDextrose() {
		return f
	}
	if f.Base() == BaseLR {
		return D5LR
	}
	return D5NS
}

// Component is an electrolyte or nutrient delivered by a fluid.
type Component string

const (
	Na       Component = "Na"
	K        Component = "K"
	Cl       Component = "Cl"
	HCO3Pre  Component = "HCO3_pre"
	GlucoseG Component = "Glucose_g"
)

// Composition maps each component to its concentration per liter of fluid
// (mEq/L for electrolytes, g/L for glucose).
type Composition map[Component]float64

// Formulary is the set of fluids the planner may order, keyed by fluid.
// It is injected into the calculator so tests can substitute their own table.
type Formulary map[Fluid]Composition

// Default returns the stocked formulary.
func Default() Formulary {
	return Formulary{
		LR:   {Na: 130, K: 4, Cl: 109, HCO3Pre: 28},
		NS:   {Na: 154, Cl: 154},
		D5NS: {Na: 154, Cl: 154, GlucoseG: 50},
		D5LR: {Na: 130, K: 4, Cl: 109, HCO3Pre: 28, GlucoseG: 50},
	}
}
