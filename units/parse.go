package units

// Parse is sugar for DefaultRegistry().Parse(unitString) (spec.md §6).
func Parse(unitString string) (Result, error) {
	return DefaultRegistry().Parse(unitString)
}

// parse runs the scanner to completion and converts the final state into
// a Result or a *ParseError. It is used both for a top-level Parse call
// and, recursively, by stepParen for a parenthesised sub-expression.
func (s *parseState) parse() (Result, error) {
	s.runLoop()
	return s.finalize()
}

// runLoop drives the six-mode dispatch of spec.md §4.2 until input is
// exhausted. FLUSH discards whatever remains in one step rather than
// looping rune by rune, since nothing after a recorded diagnostic is
// semantically meaningful.
func (s *parseState) runLoop() {
	for !s.eof() {
		switch s.mode {
		case modeInitial:
			s.stepInitial()
		case modeParen:
			s.stepParen()
		case modePrefix:
			s.stepPrefix()
		case modeUnits:
			s.stepUnits()
		case modeExpon:
			s.stepExpon()
		case modeFlush:
			s.pos = len(s.input)
		}
	}
}

// finalize implements the EOF section of spec.md §4.2: commit a pending
// EXPON term, then apply the ordered validation checks, upgrading
// whatever FLUSH diagnostic (if any) was recorded to a more specific one
// where the ordering calls for it.
func (s *parseState) finalize() (Result, error) {
	if s.mode == modeExpon {
		s.commit()
	}

	var tag error
	offset := len(s.input)

	switch {
	case s.bracket != 0:
		tag = ErrUnbalBracket
	case s.paren != 0:
		tag = ErrUnbalParen
	case s.operator == 1:
		tag = ErrDanglingBinop
	case s.operator > 1:
		tag = ErrConsecBinops
	case s.flushed != nil:
		tag = s.flushed
		offset = s.flushedAt
	}

	if tag != nil {
		return Result{}, newParseError(tag, s.original, offset)
	}

	return Result{Func: s.fn, Scale: s.scale, Vector: s.units.toBaseVector()}, nil
}
