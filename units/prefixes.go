package units

// prefixClass describes which metric prefixes an atom admits.
type prefixClass int

const (
	prefixNone prefixClass = iota
	prefixSubOnly
	prefixSuperOnly
	prefixAny
)

func (c prefixClass) allowsSub() bool {
	return c == prefixSubOnly || c == prefixAny
}

func (c prefixClass) allowsSuper() bool {
	return c == prefixSuperOnly || c == prefixAny
}

// prefixEntry is one row of the static metric-prefix table (spec.md §4.1).
type prefixEntry struct {
	symbol     string
	multiplier float64
	sub        bool // true for y,z,a,f,p,n,u,m,c,d
}

// prefixTable lists every metric prefix. lookupPrefix matches a symbol
// exactly; the two-letter "da" prefix is tried separately, before the
// one-letter prefixes, by matchAtom in scanner.go.
var prefixTable = []prefixEntry{
	{"da", 1e+1, false},
	{"y", 1e-24, true},
	{"z", 1e-21, true},
	{"a", 1e-18, true},
	{"f", 1e-15, true},
	{"p", 1e-12, true},
	{"n", 1e-9, true},
	{"u", 1e-6, true},
	{"m", 1e-3, true},
	{"c", 1e-2, true},
	{"d", 1e-1, true},
	{"h", 1e+2, false},
	{"k", 1e+3, false},
	{"M", 1e+6, false},
	{"G", 1e+9, false},
	{"T", 1e+12, false},
	{"P", 1e+15, false},
	{"E", 1e+18, false},
	{"Z", 1e+21, false},
	{"Y", 1e+24, false},
}

func lookupPrefix(symbol string) (prefixEntry, bool) {
	for _, p := range prefixTable {
		if p.symbol == symbol {
			return p, true
		}
	}

	return prefixEntry{}, false
}
