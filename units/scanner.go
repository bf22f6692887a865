package units

import "github.com/shopspring/decimal"

// This file implements the mode-driven scanner of spec.md §4.2: INITIAL,
// PAREN, PREFIX, UNITS, EXPON and FLUSH, dispatched from runLoop in
// parse.go. Each step method consumes zero or more runes from s.input,
// mutates the accumulator fields declared in state.go/accumulator.go, and
// sets s.mode for the next iteration.

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// hasLiteral reports whether lit occurs verbatim starting at s.pos.
func (s *parseState) hasLiteral(lit string) bool {
	for i, r := range lit {
		if s.peekAt(i) != r {
			return false
		}
	}

	return true
}

func (s *parseState) advanceN(n int) {
	s.pos += n
}

// matchAtom tries to recognise a (possibly prefixed) unit atom at the
// current position. Per spec.md §4.1, the whole maximal letter run is
// tried as a bare atom name first ("m", "min", "mol", "mag" all resolve
// this way); only when that fails is it decomposed into a one- or
// two-letter prefix plus a remaining atom name, longest prefix ("da")
// first. On success it populates pendingPrefix/pendingAtom/pendingAtomName
// and leaves s.pos unmoved; PREFIX/UNITS modes consume the characters.
func (s *parseState) matchAtom() bool {
	start := s.pos
	end := start
	for end < len(s.input) && isLetter(s.input[end]) {
		end++
	}
	if end == start {
		return false
	}
	word := string(s.input[start:end])

	if a, ok := s.registry.atomsByName[word]; ok {
		s.pendingPrefix = nil
		s.pendingAtom = a
		s.pendingAtomName = word
		return true
	}

	if len(word) >= 3 && word[:2] == "da" {
		if a, ok := s.registry.atomsByName[word[2:]]; ok && a.prefix.allowsSuper() {
			p, _ := lookupPrefix("da")
			s.pendingPrefix = &p
			s.pendingAtom = a
			s.pendingAtomName = word[2:]
			return true
		}
	}

	if len(word) >= 2 {
		if p, ok := lookupPrefix(word[:1]); ok {
			rest := word[1:]
			if a, ok := s.registry.atomsByName[rest]; ok {
				allowed := p.allowsFor(*a)
				if allowed {
					pp := p
					s.pendingPrefix = &pp
					s.pendingAtom = a
					s.pendingAtomName = rest
					return true
				}
			}
		}
	}

	return false
}

// allowsFor reports whether prefix p may attach to atom a, per its
// prefix class (spec.md §4.1/§6).
func (p prefixEntry) allowsFor(a atomEntry) bool {
	if p.sub {
		return a.prefix.allowsSub()
	}

	return a.prefix.allowsSuper()
}

// stepInitial implements the INITIAL-mode bullet list of spec.md §4.2.
func (s *parseState) stepInitial() {
	s.skipSpaces()
	if s.eof() {
		return
	}

	r := s.peek()

	if r == '[' {
		s.advance()
		if s.bracket == 0 {
			s.bracket = 1
		} else {
			s.mode = modeFlush
		}
		return
	}

	if r == '1' && s.peekAt(1) == '0' {
		if isDigit(s.peekAt(2)) {
			s.fail(ErrBadNumMultiplier)
			return
		}
		s.advanceN(2)
		s.factor = 10
		s.operator = 0
		s.mode = modeExpon
		return
	}

	if s.hasLiteral("log(") {
		s.advanceN(3)
		s.fn = FuncLog
		s.operator = 0
		s.mode = modeParen
		return
	}
	if s.hasLiteral("ln(") {
		s.advanceN(2)
		s.fn = FuncLn
		s.operator = 0
		s.mode = modeParen
		return
	}
	if s.hasLiteral("exp(") {
		s.advanceN(3)
		s.fn = FuncExp
		s.operator = 0
		s.mode = modeParen
		return
	}
	if s.hasLiteral("sqrt(") {
		s.advanceN(4)
		s.expon = s.expon.Div(decimal.New(2, 0))
		s.operator = 0
		s.mode = modeParen
		return
	}

	if r == '(' {
		s.operator = 0
		s.mode = modeParen
		return
	}

	if r == '*' || r == '.' {
		if !s.anyTermSeen {
			s.fail(ErrDanglingBinop)
			return
		}
		s.advance()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
		}
		return
	}

	if r == '/' || (r == '1' && s.peekAt(1) == '/') {
		if r == '1' {
			s.advanceN(2)
		} else {
			s.advance()
		}
		s.expon = s.expon.Neg()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
		}
		return
	}

	if s.matchAtom() {
		s.operator = 0
		if s.pendingPrefix != nil {
			s.mode = modePrefix
		} else {
			s.mode = modeUnits
		}
		return
	}

	if r == ']' {
		s.advance()
		s.bracket = 1 - s.bracket
		s.mode = modeFlush
		return
	}

	s.fail(ErrBadInitialSymbol)
}

// stepParen implements PAREN mode (spec.md §4.2, §4.3): isolate the
// outermost balanced parenthesis group and hand its contents to a fresh,
// independent parse.
func (s *parseState) stepParen() {
	start := s.pos
	depth := 0
	contentStart := -1
	contentEnd := -1

	for i := start; i < len(s.input); i++ {
		switch s.input[i] {
		case '(':
			depth++
			if depth == 1 {
				contentStart = i + 1
			}
		case ')':
			depth--
			if depth == 0 {
				contentEnd = i
			}
		}
		if contentEnd >= 0 {
			break
		}
	}

	if contentEnd < 0 {
		s.paren = 1
		s.mode = modeFlush
		return
	}

	if s.depth+1 > maxRecursionDepth {
		s.fail(ErrParserError)
		return
	}

	inner := s.input[contentStart:contentEnd]
	sub := newSubParseState(inner, s.registry, s.original, s.depth+1)
	result, err := sub.parse()

	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			s.fail(pe.Tag)
		} else {
			s.fail(ErrParserError)
		}
		return
	}

	if result.Func != FuncNone {
		s.fail(ErrFunctionContext)
		return
	}

	s.factor *= result.Scale
	s.types = s.types.add(deltaFromBaseVector(result.Vector))
	s.pos = contentEnd + 1
	s.mode = modeExpon
}

// stepPrefix implements PREFIX mode: consume the one matched prefix
// symbol and move on to UNITS.
func (s *parseState) stepPrefix() {
	p := s.pendingPrefix
	s.advanceN(len(p.symbol))
	s.applyPrefix(*p)
	s.pendingPrefix = nil
	s.mode = modeUnits
}

// stepUnits implements UNITS mode: consume the matched atom name and
// move on to EXPON.
func (s *parseState) stepUnits() {
	a := s.pendingAtom
	s.advanceN(len(s.pendingAtomName))
	s.applyAtom(*a)
	s.pendingAtom = nil
	s.pendingAtomName = ""
	s.mode = modeExpon
}

// applyExponentToken tries to consume one exponent value at the current
// position (bare integer, or a parenthesised int/rational/float form),
// multiplying it into s.expon. It does not skip leading whitespace; the
// caller decides when that is appropriate.
func (s *parseState) applyExponentToken() bool {
	if s.peek() == '(' {
		return s.applyParenExponent()
	}

	start := s.pos
	sign := 1
	if s.peek() == '+' || s.peek() == '-' {
		if s.peek() == '-' {
			sign = -1
		}
		s.advance()
	}

	if !isDigit(s.peek()) || s.peek() == '0' {
		s.pos = start
		return false
	}

	digitStart := s.pos
	for isDigit(s.peek()) {
		s.advance()
	}

	value, err := decimal.NewFromString(string(s.input[digitStart:s.pos]))
	if err != nil {
		s.pos = start
		return false
	}
	if sign < 0 {
		value = value.Neg()
	}

	s.expon = s.expon.Mul(value)
	return true
}

// applyParenExponent parses "(n)", "(n/m)", or "(x.y)" starting at the
// current "(" and multiplies the resulting value into s.expon.
func (s *parseState) applyParenExponent() bool {
	start := s.pos
	s.advance() // consume '('

	sign := 1
	if s.peek() == '+' || s.peek() == '-' {
		if s.peek() == '-' {
			sign = -1
		}
		s.advance()
	}

	digitsStart := s.pos
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.pos == digitsStart {
		s.pos = start
		return false
	}
	intPart := string(s.input[digitsStart:s.pos])

	switch s.peek() {
	case ')':
		value, err := decimal.NewFromString(intPart)
		if err != nil {
			s.pos = start
			return false
		}
		s.advance()
		if sign < 0 {
			value = value.Neg()
		}
		s.expon = s.expon.Mul(value)
		return true

	case '/':
		s.advance()
		denomStart := s.pos
		for isDigit(s.peek()) {
			s.advance()
		}
		if s.pos == denomStart || s.peek() != ')' {
			s.pos = start
			return false
		}
		numer, err1 := decimal.NewFromString(intPart)
		denom, err2 := decimal.NewFromString(string(s.input[denomStart:s.pos]))
		s.advance() // consume ')'
		if err1 != nil || err2 != nil || denom.IsZero() {
			s.pos = start
			return false
		}
		value := numer.Div(denom)
		if sign < 0 {
			value = value.Neg()
		}
		s.expon = s.expon.Mul(value)
		return true

	case '.':
		s.advance()
		fracStart := s.pos
		for isDigit(s.peek()) {
			s.advance()
		}
		if s.pos == fracStart || s.peek() != ')' {
			s.pos = start
			return false
		}
		floatText := intPart + "." + string(s.input[fracStart:s.pos])
		s.advance() // consume ')'

		value, err := decimal.NewFromString(floatText)
		if err != nil {
			s.pos = start
			return false
		}
		if sign < 0 {
			value = value.Neg()
		}
		s.expon = s.expon.Mul(value)
		return true

	default:
		s.pos = start
		return false
	}
}

// stepExpon implements EXPON mode (spec.md §4.2): an optional exponent
// specifier followed by exactly one operator, or a terminator.
func (s *parseState) stepExpon() {
	beforeWhitespace := s.pos
	s.skipSpaces()

	markerLen := 0
	if s.hasLiteral("**") {
		markerLen = 2
	} else if s.peek() == '^' {
		markerLen = 1
	}

	if markerLen > 0 {
		s.advanceN(markerLen)
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
			return
		}
		s.skipSpaces()
		if s.applyExponentToken() {
			s.commit()
			s.operator = 0
			s.mode = modeInitial
			return
		}
		if s.eof() {
			// Dangling "**"/"^" with nothing following: the EOF check
			// (operator==1) reports DANGLING_BINOP.
			return
		}
		s.fail(ErrBadExponSymbol)
		return
	}

	if s.applyExponentToken() {
		s.commit()
		s.operator = 0
		s.mode = modeInitial
		return
	}

	// No exponent here after all; rewind past the whitespace we looked
	// past above and dispatch on the real next token.
	s.pos = beforeWhitespace
	skippedSpace := isSpace(s.peek())

	if skippedSpace {
		s.skipSpaces()
		if s.eof() {
			// Trailing whitespace with nothing further: grammar-legal
			// (spec.md §6 expr := ... ws?), not an implicit operator.
			s.commit()
			s.mode = modeInitial
			return
		}
		if s.peek() == ']' {
			s.commit()
			s.advance()
			s.bracket = 1 - s.bracket
			s.mode = modeFlush
			return
		}
		if s.peek() == '(' {
			s.commit()
			s.operator++
			if s.operator > 1 {
				s.mode = modeFlush
				return
			}
			s.mode = modeInitial
			return
		}
		s.commit()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
			return
		}
		s.mode = modeInitial
		return
	}

	if s.eof() {
		s.commit()
		s.mode = modeInitial
		return
	}

	r := s.peek()

	switch {
	case r == '*' || r == '.':
		s.advance()
		s.commit()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
			return
		}
		s.mode = modeInitial

	case r == '(':
		s.commit()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
			return
		}
		s.mode = modeInitial

	case r == '/':
		s.advance()
		s.commit()
		s.expon = s.expon.Neg()
		s.operator++
		if s.operator > 1 {
			s.mode = modeFlush
			return
		}
		s.mode = modeInitial

	case r == ']':
		s.advance()
		s.commit()
		s.bracket = 1 - s.bracket
		s.mode = modeFlush

	default:
		s.fail(ErrBadExponSymbol)
	}
}
