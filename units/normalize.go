package units

import "golang.org/x/text/unicode/norm"

// microSign is U+00B5 MICRO SIGN, the spelling some FITS header generators
// emit for the micro prefix instead of the ASCII letter "u".
const microSign = 'µ'

// greekMu is U+03BC GREEK SMALL LETTER MU, used interchangeably with the
// micro sign in the wild.
const greekMu = 'μ'

// angstromSignUpper/angstromSignLower are the Unicode "Å"/"å" spellings
// (U+00C5/U+00E5; U+212B ANGSTROM SIGN becomes U+00C5 under NFC) some
// header values use in place of the ASCII "Angstrom"/"angstrom" atom name.
const (
	angstromSignUpper = 'Å'
	angstromSignLower = 'å'
)

// normalizeInput applies Unicode NFC normalisation and then folds a small
// set of non-ASCII unit spellings seen in real FITS BUNIT/CUNIT header
// values (see SPEC_FULL.md §6.2) to the ASCII spellings the grammar and
// atom table (spec.md §6) define. The grammar itself is unchanged: this
// only rewrites input bytes before the scanner ever runs.
func normalizeInput(s string) string {
	normalized := norm.NFC.String(s)

	out := make([]rune, 0, len(normalized))

	for _, r := range normalized {
		switch r {
		case microSign, greekMu:
			out = append(out, 'u')
		case angstromSignUpper:
			out = append(out, []rune("Angstrom")...)
		case angstromSignLower:
			out = append(out, []rune("angstrom")...)
		default:
			out = append(out, r)
		}
	}

	return string(out)
}
