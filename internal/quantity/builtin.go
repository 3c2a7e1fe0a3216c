package quantity

import (
	"math"

	"github.com/Veraticus/dimflow/internal/model"
)

var (
	sigLength       = model.Signature{model.SigLength: 1}
	sigMass         = model.Signature{model.SigMass: 1}
	sigTime         = model.Signature{model.SigTime: 1}
	sigCurrent      = model.Signature{model.SigCurrent: 1}
	sigTemperature  = model.Signature{model.SigTemperature: 1}
	sigAmount       = model.Signature{model.SigAmount: 1}
	sigLuminous     = model.Signature{model.SigLuminousIntensity: 1}
	sigAngle        = model.Signature{model.SigAngle: 1}
	sigBit          = model.Signature{model.SigBit: 1}
	sigArea         = model.Signature{model.SigLength: 2}
	sigVolume       = model.Signature{model.SigLength: 3}
	sigVelocity     = model.Signature{model.SigLength: 1, model.SigTime: -1}
	sigAcceleration = model.Signature{model.SigLength: 1, model.SigTime: -2}
	sigForce        = model.Signature{model.SigMass: 1, model.SigLength: 1, model.SigTime: -2}
	sigEnergy       = model.Signature{model.SigMass: 1, model.SigLength: 2, model.SigTime: -2}
	sigPower        = model.Signature{model.SigMass: 1, model.SigLength: 2, model.SigTime: -3}
	sigPressure     = model.Signature{model.SigMass: 1, model.SigLength: -1, model.SigTime: -2}
	sigFrequency    = model.Signature{model.SigTime: -1}
	sigCharge       = model.Signature{model.SigCurrent: 1, model.SigTime: 1}
	sigPotential    = model.Signature{model.SigMass: 1, model.SigLength: 2, model.SigTime: -3, model.SigCurrent: -1}
	sigResistance   = model.Signature{model.SigMass: 1, model.SigLength: 2, model.SigTime: -3, model.SigCurrent: -2}
	sigCapacitance  = model.Signature{model.SigMass: -1, model.SigLength: -2, model.SigTime: 4, model.SigCurrent: 2}
)

const (
	inch      = 0.0254
	foot      = 0.3048
	pound     = 0.45359237
	gravity   = 9.80665
	poundF    = pound * gravity
	usGallon  = 231 * inch * inch * inch
	calorie   = 4.184
	btu       = 1055.05585262
	elemCharg = 1.602176634e-19
)

func def(symbol, name string, dim model.BaseDimension, sig model.Signature, factor float64) model.UnitDefinition {
	return model.UnitDefinition{Symbol: symbol, Name: name, Dimension: dim, Signature: sig, Factor: factor}
}

func prefixable(d model.UnitDefinition) model.UnitDefinition {
	d.Prefixable = true
	return d
}

// BuiltinDefinitions returns the default unit table.
func BuiltinDefinitions() []model.UnitDefinition {
	return []model.UnitDefinition{
		// Length
		prefixable(def("m", "meter", model.DimensionLength, sigLength, 1)),
		def("km", "kilometer", model.DimensionLength, sigLength, 1e3),
		def("cm", "centimeter", model.DimensionLength, sigLength, 1e-2),
		def("mm", "millimeter", model.DimensionLength, sigLength, 1e-3),
		def("in", "inch", model.DimensionLength, sigLength, inch),
		def("inch", "inch", model.DimensionLength, sigLength, inch),
		def("ft", "foot", model.DimensionLength, sigLength, foot),
		def("foot", "foot", model.DimensionLength, sigLength, foot),
		def("yd", "yard", model.DimensionLength, sigLength, 0.9144),
		def("yard", "yard", model.DimensionLength, sigLength, 0.9144),
		def("mi", "mile", model.DimensionLength, sigLength, 1609.344),
		def("mile", "mile", model.DimensionLength, sigLength, 1609.344),
		def("nmi", "nautical mile", model.DimensionLength, sigLength, 1852),
		def("angstrom", "angstrom", model.DimensionLength, sigLength, 1e-10),
		def("au", "astronomical unit", model.DimensionLength, sigLength, 1.495978707e11),
		def("ly", "light year", model.DimensionLength, sigLength, 9.4607304725808e15),
		def("pc", "parsec", model.DimensionLength, sigLength, 3.0856775814913673e16),

		// Mass
		prefixable(def("g", "gram", model.DimensionMass, sigMass, 1e-3)),
		def("kg", "kilogram", model.DimensionMass, sigMass, 1),
		def("mg", "milligram", model.DimensionMass, sigMass, 1e-6),
		def("t", "tonne", model.DimensionMass, sigMass, 1e3),
		def("tonne", "tonne", model.DimensionMass, sigMass, 1e3),
		def("lb", "pound", model.DimensionMass, sigMass, pound),
		def("lbm", "pound mass", model.DimensionMass, sigMass, pound),
		def("oz", "ounce", model.DimensionMass, sigMass, 0.028349523125),
		def("stone", "stone", model.DimensionMass, sigMass, 6.35029318),
		def("ton", "short ton", model.DimensionMass, sigMass, 907.18474),
		def("slug", "slug", model.DimensionMass, sigMass, 14.593902937206),

		// Time
		prefixable(def("s", "second", model.DimensionTime, sigTime, 1)),
		def("ms", "millisecond", model.DimensionTime, sigTime, 1e-3),
		def("min", "minute", model.DimensionTime, sigTime, 60),
		def("minute", "minute", model.DimensionTime, sigTime, 60),
		def("h", "hour", model.DimensionTime, sigTime, 3600),
		def("hr", "hour", model.DimensionTime, sigTime, 3600),
		def("hour", "hour", model.DimensionTime, sigTime, 3600),
		def("day", "day", model.DimensionTime, sigTime, 86400),
		def("week", "week", model.DimensionTime, sigTime, 604800),
		def("year", "julian year", model.DimensionTime, sigTime, 31557600),

		// Temperature
		prefixable(def("K", "kelvin", model.DimensionTemperature, sigTemperature, 1)),
		{Symbol: "degC", Name: "degree Celsius", Dimension: model.DimensionTemperature, Signature: sigTemperature, Factor: 1, Offset: 273.15},
		{Symbol: "degF", Name: "degree Fahrenheit", Dimension: model.DimensionTemperature, Signature: sigTemperature, Factor: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0},
		def("degR", "degree Rankine", model.DimensionTemperature, sigTemperature, 5.0/9.0),

		// Other SI base dimensions
		prefixable(def("A", "ampere", model.DimensionCurrent, sigCurrent, 1)),
		prefixable(def("mol", "mole", model.DimensionAmount, sigAmount, 1)),
		prefixable(def("cd", "candela", model.DimensionLuminousIntensity, sigLuminous, 1)),

		// Angle
		prefixable(def("rad", "radian", model.DimensionAngle, sigAngle, 1)),
		def("deg", "degree", model.DimensionAngle, sigAngle, math.Pi/180),
		def("grad", "gradian", model.DimensionAngle, sigAngle, math.Pi/200),
		def("arcmin", "arcminute", model.DimensionAngle, sigAngle, math.Pi/10800),
		def("arcsec", "arcsecond", model.DimensionAngle, sigAngle, math.Pi/648000),
		def("rev", "revolution", model.DimensionAngle, sigAngle, 2*math.Pi),

		// Information
		prefixable(def("b", "bit", model.DimensionBit, sigBit, 1)),
		prefixable(def("B", "byte", model.DimensionBit, sigBit, 8)),
		def("bits", "bit", model.DimensionBit, sigBit, 1),
		def("bytes", "byte", model.DimensionBit, sigBit, 8),

		// Area
		def("m2", "square meter", model.DimensionArea, sigArea, 1),
		def("cm2", "square centimeter", model.DimensionArea, sigArea, 1e-4),
		def("mm2", "square millimeter", model.DimensionArea, sigArea, 1e-6),
		def("km2", "square kilometer", model.DimensionArea, sigArea, 1e6),
		def("sqin", "square inch", model.DimensionArea, sigArea, inch*inch),
		def("sqft", "square foot", model.DimensionArea, sigArea, foot*foot),
		def("sqyd", "square yard", model.DimensionArea, sigArea, 0.9144*0.9144),
		def("sqmi", "square mile", model.DimensionArea, sigArea, 1609.344*1609.344),
		def("acre", "acre", model.DimensionArea, sigArea, 4046.8564224),
		def("ha", "hectare", model.DimensionArea, sigArea, 1e4),
		def("hectare", "hectare", model.DimensionArea, sigArea, 1e4),

		// Volume
		def("m3", "cubic meter", model.DimensionVolume, sigVolume, 1),
		def("cm3", "cubic centimeter", model.DimensionVolume, sigVolume, 1e-6),
		def("cc", "cubic centimeter", model.DimensionVolume, sigVolume, 1e-6),
		prefixable(def("L", "liter", model.DimensionVolume, sigVolume, 1e-3)),
		def("l", "liter", model.DimensionVolume, sigVolume, 1e-3),
		def("liter", "liter", model.DimensionVolume, sigVolume, 1e-3),
		def("mL", "milliliter", model.DimensionVolume, sigVolume, 1e-6),
		def("cuin", "cubic inch", model.DimensionVolume, sigVolume, inch*inch*inch),
		def("cuft", "cubic foot", model.DimensionVolume, sigVolume, foot*foot*foot),
		def("gal", "US gallon", model.DimensionVolume, sigVolume, usGallon),
		def("gallon", "US gallon", model.DimensionVolume, sigVolume, usGallon),
		def("qt", "US quart", model.DimensionVolume, sigVolume, usGallon/4),
		def("pt", "US pint", model.DimensionVolume, sigVolume, usGallon/8),
		def("cup", "US cup", model.DimensionVolume, sigVolume, usGallon/16),
		def("floz", "US fluid ounce", model.DimensionVolume, sigVolume, usGallon/128),
		def("bbl", "oil barrel", model.DimensionVolume, sigVolume, usGallon*42),

		// Velocity and acceleration
		def("kph", "kilometer per hour", model.DimensionVelocity, sigVelocity, 1000.0/3600.0),
		def("mph", "mile per hour", model.DimensionVelocity, sigVelocity, 0.44704),
		def("knot", "knot", model.DimensionVelocity, sigVelocity, 1852.0/3600.0),
		def("gee", "standard gravity", model.DimensionAcceleration, sigAcceleration, gravity),

		// Force
		prefixable(def("N", "newton", model.DimensionForce, sigForce, 1)),
		def("kN", "kilonewton", model.DimensionForce, sigForce, 1e3),
		def("dyn", "dyne", model.DimensionForce, sigForce, 1e-5),
		def("dyne", "dyne", model.DimensionForce, sigForce, 1e-5),
		def("lbf", "pound force", model.DimensionForce, sigForce, poundF),
		def("kgf", "kilogram force", model.DimensionForce, sigForce, gravity),
		def("kip", "kip", model.DimensionForce, sigForce, 1000*poundF),

		// Energy
		prefixable(def("J", "joule", model.DimensionEnergy, sigEnergy, 1)),
		def("kJ", "kilojoule", model.DimensionEnergy, sigEnergy, 1e3),
		def("MJ", "megajoule", model.DimensionEnergy, sigEnergy, 1e6),
		def("erg", "erg", model.DimensionEnergy, sigEnergy, 1e-7),
		prefixable(def("Wh", "watt hour", model.DimensionEnergy, sigEnergy, 3600)),
		def("kWh", "kilowatt hour", model.DimensionEnergy, sigEnergy, 3.6e6),
		def("cal", "calorie", model.DimensionEnergy, sigEnergy, calorie),
		def("kcal", "kilocalorie", model.DimensionEnergy, sigEnergy, 1e3*calorie),
		def("BTU", "british thermal unit", model.DimensionEnergy, sigEnergy, btu),
		prefixable(def("eV", "electronvolt", model.DimensionEnergy, sigEnergy, elemCharg)),
		def("ftlbf", "foot pound force", model.DimensionEnergy, sigEnergy, foot*poundF),

		// Power
		prefixable(def("W", "watt", model.DimensionPower, sigPower, 1)),
		def("kW", "kilowatt", model.DimensionPower, sigPower, 1e3),
		def("MW", "megawatt", model.DimensionPower, sigPower, 1e6),
		def("hp", "horsepower", model.DimensionPower, sigPower, 745.69987158227022),

		// Pressure
		prefixable(def("Pa", "pascal", model.DimensionPressure, sigPressure, 1)),
		def("hPa", "hectopascal", model.DimensionPressure, sigPressure, 1e2),
		def("kPa", "kilopascal", model.DimensionPressure, sigPressure, 1e3),
		def("MPa", "megapascal", model.DimensionPressure, sigPressure, 1e6),
		prefixable(def("bar", "bar", model.DimensionPressure, sigPressure, 1e5)),
		def("atm", "standard atmosphere", model.DimensionPressure, sigPressure, 101325),
		def("psi", "pound per square inch", model.DimensionPressure, sigPressure, poundF/(inch*inch)),
		def("torr", "torr", model.DimensionPressure, sigPressure, 101325.0/760.0),
		def("mmHg", "millimeter of mercury", model.DimensionPressure, sigPressure, 133.322387415),

		// Frequency
		prefixable(def("Hz", "hertz", model.DimensionFrequency, sigFrequency, 1)),
		def("kHz", "kilohertz", model.DimensionFrequency, sigFrequency, 1e3),
		def("MHz", "megahertz", model.DimensionFrequency, sigFrequency, 1e6),
		def("GHz", "gigahertz", model.DimensionFrequency, sigFrequency, 1e9),

		// Electromagnetism
		prefixable(def("C", "coulomb", model.DimensionCharge, sigCharge, 1)),
		def("Ah", "ampere hour", model.DimensionCharge, sigCharge, 3600),
		prefixable(def("V", "volt", model.DimensionPotential, sigPotential, 1)),
		prefixable(def("ohm", "ohm", model.DimensionResistance, sigResistance, 1)),
		prefixable(def("F", "farad", model.DimensionCapacitance, sigCapacitance, 1)),
	}
}

// coherentUnits are the named SI units a compound expression collapses into
// when its signature matches exactly.
var coherentUnits = []string{"N", "Pa", "J", "W", "C", "V", "ohm", "F"}
