package pathdata

import (
	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/decimal"
)

// ParsePath parses an SVG path `d` attribute into a command stream. The ten
// command letters are recognized case-insensitively (case is preserved per
// command so the rewriter can later choose absolute or relative form); the
// numeric grammar allows a leading sign, a decimal point with an optional
// integer part, scientific notation, and whitespace-or-comma separators,
// with the rule that a minus sign may start a new number without an
// intervening separator. A single letter followed by multiple argument
// groups emits one command per group; for M, every group after the first
// becomes an implicit Line. Failure returns a *cerr.Error of kind
// MalformedInput carrying the character index of the first unrecognized
// token as its Column.
func ParsePath(d string) ([]Command, error) {
	s := newScanner(d)
	var commands []Command
	var currentLetter byte

	s.skipSeparators()
	if s.eof() || toUpper(s.peek()) != 'M' {
		return nil, cerr.New(cerr.MalformedInput, "path data must start with a move command").At(0, s.pos)
	}

	for {
		s.skipSeparators()
		if s.eof() {
			break
		}

		if isCommandLetter(s.peek()) {
			currentLetter = s.next()
			s.skipSeparators()
			if toUpper(currentLetter) == 'Z' {
				commands = append(commands, Close{Relative: isLower(currentLetter)})
				currentLetter = 0
				continue
			}
			cmd, err := s.parseArgumentGroup(currentLetter, false)
			if err != nil {
				return nil, err
			}
			commands = append(commands, cmd)
			continue
		}

		if currentLetter == 0 {
			return nil, cerr.New(cerr.MalformedInput, "unrecognized token in path data").At(0, s.pos)
		}
		if toUpper(currentLetter) == 'Z' {
			// Z takes no arguments; a bare extra token after Z with no new
			// letter is malformed.
			return nil, cerr.New(cerr.MalformedInput, "unexpected data after close command").At(0, s.pos)
		}
		cmd, err := s.parseArgumentGroup(currentLetter, true)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	return commands, nil
}

// parseArgumentGroup parses one argument group for letter (an implicit
// repeat if repeat is true, in which case a repeated M group becomes a Line).
func (s *scanner) parseArgumentGroup(letter byte, repeat bool) (Command, error) {
	relative := isLower(letter)
	upper := toUpper(letter)

	effective := upper
	if upper == 'M' && repeat {
		effective = 'L'
	}

	switch effective {
	case 'M':
		x, y, err := s.twoNumbers()
		if err != nil {
			return nil, err
		}
		return Move{X: x, Y: y, Relative: relative}, nil
	case 'L':
		x, y, err := s.twoNumbers()
		if err != nil {
			return nil, err
		}
		return Line{X: x, Y: y, Relative: relative}, nil
	case 'H':
		x, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		return Horizontal{X: x, Relative: relative}, nil
	case 'V':
		y, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		return Vertical{Y: y, Relative: relative}, nil
	case 'C':
		nums, err := s.nNumbers(6)
		if err != nil {
			return nil, err
		}
		return Cubic{X1: nums[0], Y1: nums[1], X2: nums[2], Y2: nums[3], X: nums[4], Y: nums[5], Relative: relative}, nil
	case 'S':
		nums, err := s.nNumbers(4)
		if err != nil {
			return nil, err
		}
		return SmoothCubic{X2: nums[0], Y2: nums[1], X: nums[2], Y: nums[3], Relative: relative}, nil
	case 'Q':
		nums, err := s.nNumbers(4)
		if err != nil {
			return nil, err
		}
		return Quadratic{X1: nums[0], Y1: nums[1], X: nums[2], Y: nums[3], Relative: relative}, nil
	case 'T':
		x, y, err := s.twoNumbers()
		if err != nil {
			return nil, err
		}
		return SmoothQuadratic{X: x, Y: y, Relative: relative}, nil
	case 'A':
		rx, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		s.skipSeparators()
		ry, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		s.skipSeparators()
		rot, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		s.skipSeparators()
		largeArc, err := s.scanFlag()
		if err != nil {
			return nil, err
		}
		s.skipSeparators()
		sweep, err := s.scanFlag()
		if err != nil {
			return nil, err
		}
		s.skipSeparators()
		x, y, err := s.twoNumbers()
		if err != nil {
			return nil, err
		}
		return Arc{RX: rx, RY: ry, Rotation: rot, LargeArc: largeArc, Sweep: sweep, X: x, Y: y, Relative: relative}, nil
	default:
		return nil, cerr.New(cerr.UnsupportedCommand, "unknown path command letter '"+string(letter)+"'").At(0, s.pos)
	}
}

func (s *scanner) twoNumbers() (decimal.Decimal, decimal.Decimal, error) {
	x, err := s.scanNumber()
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	s.skipSeparators()
	y, err := s.scanNumber()
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return x, y, nil
}

func (s *scanner) nNumbers(n int) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			s.skipSeparators()
		}
		v, err := s.scanNumber()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// scanFlag parses a single SVG flag digit (0 or 1), which (per the SVG arc
// grammar) may appear with no separator before the following number.
func (s *scanner) scanFlag() (bool, error) {
	if s.eof() {
		return false, cerr.New(cerr.MalformedInput, "expected arc flag, found end of input").At(0, s.pos)
	}
	ch := s.peek()
	if ch != '0' && ch != '1' {
		return false, cerr.New(cerr.MalformedInput, "expected arc flag (0 or 1)").At(0, s.pos)
	}
	s.next()
	return ch == '1', nil
}

func isCommandLetter(b byte) bool {
	switch toUpper(b) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// scanner tokenizes a path `d` string.
type scanner struct {
	s   string
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

func (s *scanner) eof() bool { return s.pos >= len(s.s) }

func (s *scanner) peek() byte {
	return s.s[s.pos]
}

func (s *scanner) next() byte {
	b := s.s[s.pos]
	s.pos++
	return b
}

// skipSeparators consumes whitespace and commas (the separator grammar).
func (s *scanner) skipSeparators() {
	for !s.eof() {
		switch s.s[s.pos] {
		case ' ', '\t', '\r', '\n', ',':
			s.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber scans one numeral per the §4.2 grammar: optional leading sign,
// digits, optional '.' fraction, optional exponent. A leading minus sign is
// consumed here even with no preceding separator, satisfying the "minus
// starts a new number" rule — the caller never needs to separate numbers
// itself.
func (s *scanner) scanNumber() (decimal.Decimal, error) {
	start := s.pos
	if !s.eof() && (s.s[s.pos] == '+' || s.s[s.pos] == '-') {
		s.pos++
	}
	digitsBefore := s.pos
	for !s.eof() && isDigit(s.s[s.pos]) {
		s.pos++
	}
	hasIntDigits := s.pos > digitsBefore

	hasFracDigits := false
	if !s.eof() && s.s[s.pos] == '.' {
		s.pos++
		fracStart := s.pos
		for !s.eof() && isDigit(s.s[s.pos]) {
			s.pos++
		}
		hasFracDigits = s.pos > fracStart
	}

	if !hasIntDigits && !hasFracDigits {
		return decimal.Decimal{}, cerr.New(cerr.MalformedInput, "expected a number").At(0, start)
	}

	if !s.eof() && (s.s[s.pos] == 'e' || s.s[s.pos] == 'E') {
		save := s.pos
		s.pos++
		if !s.eof() && (s.s[s.pos] == '+' || s.s[s.pos] == '-') {
			s.pos++
		}
		expStart := s.pos
		for !s.eof() && isDigit(s.s[s.pos]) {
			s.pos++
		}
		if s.pos == expStart {
			// Not actually an exponent (e.g. a trailing "e" from a unit
			// suffix elsewhere) — back off.
			s.pos = save
		}
	}

	literal := s.s[start:s.pos]
	d, err := decimal.Parse(literal)
	if err != nil {
		return decimal.Decimal{}, cerr.Wrap(cerr.MalformedInput, "invalid numeral '"+literal+"'", err).At(0, start)
	}
	return d, nil
}

// LineColumn converts a byte offset in s into a 1-based (line, column) pair,
// for callers that want friendlier position reporting than a raw index.
func LineColumn(s string, offset int) (line, column int) {
	line = 1
	column = 1
	for i := 0; i < offset && i < len(s); i++ {
		if s[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
