package model

// BaseDimension identifies a physical dimension or a compound physical quantity
// category. Every registered unit symbol maps to exactly one BaseDimension.
type BaseDimension string

const (
	// DimensionLength is the SI length dimension.
	DimensionLength BaseDimension = "LENGTH"
	// DimensionMass is the SI mass dimension.
	DimensionMass BaseDimension = "MASS"
	// DimensionTime is the SI time dimension.
	DimensionTime BaseDimension = "TIME"
	// DimensionCurrent is electric current.
	DimensionCurrent BaseDimension = "CURRENT"
	// DimensionTemperature is thermodynamic temperature.
	DimensionTemperature BaseDimension = "TEMPERATURE"
	// DimensionAmount is amount of substance.
	DimensionAmount BaseDimension = "AMOUNT_OF_SUBSTANCE"
	// DimensionLuminousIntensity is luminous intensity.
	DimensionLuminousIntensity BaseDimension = "LUMINOUS_INTENSITY"
	// DimensionAngle is plane angle.
	DimensionAngle BaseDimension = "ANGLE"
	// DimensionBit is information quantity.
	DimensionBit BaseDimension = "BIT"

	// DimensionForce is mass times acceleration.
	DimensionForce BaseDimension = "FORCE"
	// DimensionEnergy is force times length.
	DimensionEnergy BaseDimension = "ENERGY"
	// DimensionPower is energy per time.
	DimensionPower BaseDimension = "POWER"
	// DimensionPressure is force per area.
	DimensionPressure BaseDimension = "PRESSURE"
	// DimensionArea is length squared.
	DimensionArea BaseDimension = "AREA"
	// DimensionSurface is an alias category for area.
	DimensionSurface BaseDimension = "SURFACE"
	// DimensionVolume is length cubed.
	DimensionVolume BaseDimension = "VOLUME"
	// DimensionVelocity is length per time.
	DimensionVelocity BaseDimension = "VELOCITY"
	// DimensionAcceleration is length per time squared.
	DimensionAcceleration BaseDimension = "ACCELERATION"
	// DimensionFrequency is cycles per time.
	DimensionFrequency BaseDimension = "FREQUENCY"
	// DimensionCharge is electric charge.
	DimensionCharge BaseDimension = "ELECTRIC_CHARGE"
	// DimensionPotential is electric potential.
	DimensionPotential BaseDimension = "ELECTRIC_POTENTIAL"
	// DimensionResistance is electrical resistance.
	DimensionResistance BaseDimension = "ELECTRIC_RESISTANCE"
	// DimensionCapacitance is electrical capacitance.
	DimensionCapacitance BaseDimension = "ELECTRIC_CAPACITANCE"
)

// String returns the dimension key.
func (d BaseDimension) String() string {
	return string(d)
}

// Signature indexes.
const (
	SigLength = iota
	SigMass
	SigTime
	SigCurrent
	SigTemperature
	SigAmount
	SigLuminousIntensity
	SigAngle
	SigBit
	SignatureSize
)

// signatureSymbols are the base-unit spellings used when a signature is rendered.
var signatureSymbols = [SignatureSize]string{"m", "kg", "s", "A", "K", "mol", "cd", "rad", "b"}

// Signature is the exponent vector of a unit over the base dimensions.
type Signature [SignatureSize]float64

const signatureTolerance = 1e-9

// Add returns s + other*exp.
func (s Signature) Add(other Signature, exp float64) Signature {
	var out Signature
	for i := range s {
		out[i] = s[i] + other[i]*exp
	}
	return out
}

// Equal reports whether two signatures carry the same exponents.
func (s Signature) Equal(other Signature) bool {
	for i := range s {
		d := s[i] - other[i]
		if d > signatureTolerance || d < -signatureTolerance {
			return false
		}
	}
	return true
}

// IsZero reports whether the signature is dimensionless.
func (s Signature) IsZero() bool {
	return s.Equal(Signature{})
}

// BaseSymbol returns the base-unit symbol for signature index i.
func BaseSymbol(i int) string {
	return signatureSymbols[i]
}

// BaseOrder lists signature indexes in the order they are rendered:
// mass first, then the rest in index order.
var BaseOrder = []int{SigMass, SigLength, SigTime, SigCurrent, SigTemperature, SigAmount, SigLuminousIntensity, SigAngle, SigBit}
