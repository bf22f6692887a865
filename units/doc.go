// Package units parses FITS-style units specification strings such as
// "10**-12 erg/(cm**2 s Angstrom)", "log(Hz)", or "[Jy/beam]" into an
// enclosing unary function tag, a numeric scale factor relative to a
// coherent set of base units, and a base-quantity exponent vector.
//
// The package does not convert values between unit strings, format parsed
// results, or integrate with a world-coordinate-system library; it exposes
// enough structure (Result, BaseVector) for a caller to build those on top.
package units
