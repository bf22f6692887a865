package units

import "github.com/shopspring/decimal"

// Quantity indexes a position in a BaseVector. The order is part of the
// external contract: callers may depend on Vector[QLength], etc.
type Quantity int

const (
	QTime Quantity = iota
	QLength
	QMass
	QPlaneAngle
	QSolidAngle
	QCharge
	QMole
	QTemperature
	QLuminousIntensity
	QMassRatioSolar
	QMagnitude
	QPixel
	QCount
	QVoxel
	QBin
	QBit
	QBeam
	numQuantities
)

// BaseVector is a fixed-length vector of signed exponents over the base
// quantities above. All-zero denotes a dimensionless result.
type BaseVector [numQuantities]float64

// delta is the internal, exact representation of a base-quantity vector
// used while accumulating a term or a whole expression. It mirrors
// BaseVector entry-for-entry but carries exact rationals (sums of an
// atom's fixed delta-vector scaled by an integer or small-rational
// exponent never drift the way repeated float64 addition would).
type delta [numQuantities]decimal.Decimal

func zeroDelta() delta {
	var d delta
	for i := range d {
		d[i] = decimal.Zero
	}

	return d
}

// fromFloats builds a delta from a literal float64 vector, as used by
// static atom table entries.
func fromFloats(values ...float64) delta {
	d := zeroDelta()
	for i, v := range values {
		d[i] = decimal.NewFromFloat(v)
	}

	return d
}

// scaledBy returns d with every entry multiplied by the decimal exponent
// expon, used when a term's accumulated types vector is folded into the
// running units vector by its surrounding expon.
func (d delta) scaledBy(expon decimal.Decimal) delta {
	var out delta
	for i, v := range d {
		out[i] = v.Mul(expon)
	}

	return out
}

// add returns the entrywise sum of d and other.
func (d delta) add(other delta) delta {
	var out delta
	for i := range d {
		out[i] = d[i].Add(other[i])
	}

	return out
}

// toBaseVector converts the exact internal representation to the float64
// vector exposed on Result.
func (d delta) toBaseVector() BaseVector {
	var v BaseVector
	for i, c := range d {
		f, _ := c.Float64()
		v[i] = f
	}

	return v
}

// deltaFromBaseVector lifts a recursive sub-parse's float64 Result.Vector
// back into the exact internal representation, so folding it into the
// enclosing term's types accumulator doesn't reintroduce float64 drift.
func deltaFromBaseVector(v BaseVector) delta {
	return fromFloats(v[:]...)
}

// quantityIndex maps the base-vector abbreviations used in spec.md §6 and
// in registry overlay files (e.g. "vector: {T: -1}") to a Quantity.
var quantityIndex = map[string]Quantity{
	"T":     QTime,
	"L":     QLength,
	"M":     QMass,
	"Phi":   QPlaneAngle,
	"Omega": QSolidAngle,
	"Q":     QCharge,
	"N":     QMole,
	"Theta": QTemperature,
	"I":     QLuminousIntensity,
	"Sun":   QMassRatioSolar,
	"mag":   QMagnitude,
	"pix":   QPixel,
	"ct":    QCount,
	"vox":   QVoxel,
	"bin":   QBin,
	"bit":   QBit,
	"bm":    QBeam,
}
