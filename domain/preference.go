package domain

// UserPreferences is the validated preference profile used by the
// recommendation engine. Every entry point that accepts a preference payload
// validates against the same schema; the engine itself assumes an
// already-validated value.
//
// SpiceLevel is a pointer so an absent field (nil, defaulted) stays
// distinguishable from an explicit out-of-range value such as 0, which must
// fail validation.
type UserPreferences struct {
	Dietary    []string `json:"dietary" validate:"omitempty,dive,oneof=vegetarian vegan glutenFree keto lowCarb"`
	Cuisines   []string `json:"cuisines" validate:"omitempty,dive,required"`
	SpiceLevel *int     `json:"spice_level" validate:"omitempty,min=1,max=5"`
	Flavors    []string `json:"flavors" validate:"omitempty,dive,oneof=sweet savory tangy spicy"`
}

const DefaultSpiceLevel = 3

// ApplyDefaults fills absent fields before validation: empty sets mean
// "no restriction" and a missing spice level falls back to the middle of the
// 1-5 scale. A spice level that is present, even as zero, is left for the
// validator to judge.
func (p *UserPreferences) ApplyDefaults() {
	if p.Dietary == nil {
		p.Dietary = []string{}
	}
	if p.Cuisines == nil {
		p.Cuisines = []string{}
	}
	if p.Flavors == nil {
		p.Flavors = []string{}
	}
	if p.SpiceLevel == nil {
		level := DefaultSpiceLevel
		p.SpiceLevel = &level
	}
}

// SpiceLevelValue returns the profile's spice level, falling back to the
// default when the field was never set.
func (p *UserPreferences) SpiceLevelValue() int {
	if p.SpiceLevel == nil {
		return DefaultSpiceLevel
	}
	return *p.SpiceLevel
}
