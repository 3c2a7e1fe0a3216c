package model

// DimensionalResult is the outcome of recomposing a quantity under a Selection.
// Either Value and Units are set, or Error is; all three are nil only when the
// Selection was empty.
type DimensionalResult struct {
	Value *float64 `json:"value" yaml:"value"`
	Units *string  `json:"units" yaml:"units"`
	Error *string  `json:"error" yaml:"error"`
}

// Empty reports whether the result carries nothing.
func (r DimensionalResult) Empty() bool {
	return r.Value == nil && r.Units == nil && r.Error == nil
}

// OK reports whether the result carries a value.
func (r DimensionalResult) OK() bool {
	return r.Value != nil && r.Error == nil
}

// ResultValue builds a successful result.
func ResultValue(value float64, units string) DimensionalResult {
	return DimensionalResult{Value: &value, Units: &units}
}

// ResultError builds a failed result.
func ResultError(msg string) DimensionalResult {
	return DimensionalResult{Error: &msg}
}

// Recomputation is everything derived from one expression and Selection.
type Recomputation struct {
	Err       error             `json:"-" yaml:"-"`
	InBase    *string           `json:"in_base" yaml:"in_base"`
	Selection Selection         `json:"selection" yaml:"selection"`
	Value     string            `json:"value" yaml:"value"`
	Groups    []ConversionGroup `json:"groups" yaml:"groups"`
	Required  []BaseDimension   `json:"required" yaml:"required"`
	Result    DimensionalResult `json:"result" yaml:"result"`
}
