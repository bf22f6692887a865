package units

import (
	"math"

	"github.com/shopspring/decimal"
)

// commit folds the current term (factor, types, expon) into the running
// scale and units vector, then resets the per-term accumulators. This is
// "Term commit (add)" in spec.md §4.2: scale *= factor**expon; units[i] +=
// expon*types[i] for every base index i; then types, expon, factor reset.
func (s *parseState) commit() {
	exponFloat, _ := s.expon.Float64()

	s.scale *= math.Pow(s.factor, exponFloat)
	s.units = s.units.add(s.types.scaledBy(s.expon))

	s.types = zeroDelta()
	s.expon = decimal.New(1, 0)
	s.factor = 1
	s.anyTermSeen = true
}

// applyAtom multiplies the running term factor by atom's conversion factor
// and adds its delta-vector into the term's types accumulator, per the
// UNITS-mode semantics of spec.md §4.2.
func (s *parseState) applyAtom(a atomEntry) {
	s.factor *= a.factor
	s.types = s.types.add(fromFloats(a.vector[:]...))
}

// applyPrefix multiplies the running term factor by a metric prefix's
// multiplier, per the PREFIX-mode semantics of spec.md §4.2.
func (s *parseState) applyPrefix(p prefixEntry) {
	s.factor *= p.multiplier
}
