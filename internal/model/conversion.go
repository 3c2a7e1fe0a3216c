package model

// ConversionOption is one candidate representation of "1 unit of a dimension"
// expressed in another compatible unit.
type ConversionOption struct {
	Unit      string  `json:"unit" yaml:"unit"`
	Value     string  `json:"value" yaml:"value"` // formatted "<number> <unit>"
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
}

// DerivedUnit is an equivalence class of named units sharing the dimension
// signature of an evaluated quantity, represented by its canonical main unit.
type DerivedUnit struct {
	Name        string             `json:"name" yaml:"name"`
	Definition  string             `json:"definition" yaml:"definition"`
	Conversions []ConversionOption `json:"conversions" yaml:"conversions"`
}

// ConversionGroup holds the conversion options for one dimension of a quantity.
type ConversionGroup struct {
	Dimension BaseDimension      `json:"dimension" yaml:"dimension"`
	Unit      string             `json:"unit" yaml:"unit"`
	Options   []ConversionOption `json:"options" yaml:"options"`
	Derived   []DerivedUnit      `json:"derived,omitempty" yaml:"derived,omitempty"`
	Exponent  float64            `json:"exponent" yaml:"exponent"`
}
