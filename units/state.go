package units

import "github.com/shopspring/decimal"

// FuncTag is the enclosing unary function a caller must apply to a
// measurand after scaling (spec.md §3).
type FuncTag int

const (
	FuncNone FuncTag = iota
	FuncLog
	FuncLn
	FuncExp
)

func (f FuncTag) String() string {
	switch f {
	case FuncNone:
		return "none"
	case FuncLog:
		return "log"
	case FuncLn:
		return "ln"
	case FuncExp:
		return "exp"
	default:
		return "invalid"
	}
}

// Result is what a successful Parse returns.
type Result struct {
	Func   FuncTag
	Scale  float64
	Vector BaseVector
}

// mode is one of the six scanner modes of spec.md §4.2.
type mode int

const (
	modeInitial mode = iota
	modeParen
	modePrefix
	modeUnits
	modeExpon
	modeFlush
)

// maxRecursionDepth bounds parenthesis nesting (spec.md §5): a
// parse that recurses deeper than this returns ErrParserError rather than
// overflowing the Go call stack on pathological input.
const maxRecursionDepth = 64

// parseState holds everything spec.md §3 calls "Parse state": it is
// created fresh per invocation (including every recursive sub-expression
// parse), lives on the stack, and is discarded at return. None of it is
// shared across goroutines or across calls.
type parseState struct {
	input    []rune
	pos      int
	registry *Registry
	depth    int

	// original is the top-level, pre-normalisation input string, carried
	// unchanged into every recursive sub-parse so a diagnostic fired deep
	// inside a parenthesised group still reports the full original text
	// (spec.md §1: "the original input verbatim").
	original string

	fn       FuncTag
	scale    float64
	units    delta
	types    delta
	expon    decimal.Decimal
	factor   float64
	bracket  int
	paren    int
	operator int
	mode     mode

	// anyTermSeen distinguishes a genuinely leading "*"/"." (no operand
	// has ever been read: DANGLING_BINOP immediately) from the same
	// character reached after at least one term has already committed
	// (where the generic operator counter governs CONSEC_BINOPS instead).
	anyTermSeen bool

	// pendingPrefix/pendingAtom/pendingAtomName hold the result of the
	// atom lookahead performed in INITIAL mode (see scanner.go matchAtom)
	// until PREFIX/UNITS mode applies and consumes them.
	pendingPrefix   *prefixEntry
	pendingAtom     *atomEntry
	pendingAtomName string

	// flushed records the diagnostic that put the scanner into FLUSH
	// mode, if any; end-of-input checks (spec.md §4.2 EOF section) may
	// override it with a more specific diagnostic.
	flushed   error
	flushedAt int
}

func newParseState(input string, registry *Registry, depth int) *parseState {
	normalized := normalizeInput(input)

	return &parseState{
		input:    []rune(normalized),
		registry: registry,
		depth:    depth,
		original: input,
		scale:    1,
		units:    zeroDelta(),
		types:    zeroDelta(),
		expon:    decimal.New(1, 0),
		factor:   1,
		mode:     modeInitial,
	}
}

// newSubParseState creates the fresh, stack-local state used to parse a
// parenthesised sub-expression (spec.md §4.3). It shares the registry and
// the top-level original string with its parent but starts its own
// independent accumulators, and the input is already-normalised runes
// sliced out of the parent so normalizeInput never runs twice.
func newSubParseState(input []rune, registry *Registry, original string, depth int) *parseState {
	return &parseState{
		input:    input,
		registry: registry,
		depth:    depth,
		original: original,
		scale:    1,
		units:    zeroDelta(),
		types:    zeroDelta(),
		expon:    decimal.New(1, 0),
		factor:   1,
		mode:     modeInitial,
	}
}

func (s *parseState) eof() bool {
	return s.pos >= len(s.input)
}

func (s *parseState) peek() rune {
	if s.eof() {
		return 0
	}

	return s.input[s.pos]
}

func (s *parseState) peekAt(offset int) rune {
	idx := s.pos + offset
	if idx < 0 || idx >= len(s.input) {
		return 0
	}

	return s.input[idx]
}

func (s *parseState) advance() {
	s.pos++
}

func (s *parseState) skipSpaces() {
	for !s.eof() && isSpace(s.peek()) {
		s.advance()
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// fail records the first diagnostic, switches to FLUSH mode, and leaves
// the remaining input to be discarded by the FLUSH step. It never
// overwrites an already-recorded diagnostic, matching "the parser flushes
// and returns the first diagnostic" (spec.md §1).
func (s *parseState) fail(tag error) {
	if s.flushed == nil {
		s.flushed = tag
		s.flushedAt = s.pos
	}

	s.mode = modeFlush
}
