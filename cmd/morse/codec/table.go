package codec

import (
	"fmt"

	"github.com/samber/lo"
)

// Pulse is a single element of a Morse pattern.
type Pulse byte

const (
	Short Pulse = '0'
	Long  Pulse = '1'
)

// Pattern is an ordered sequence of pulses, e.g. "01" for A.
type Pattern string

// Pulses returns the pulses of p in order.
func (p Pattern) Pulses() []Pulse {
	pulses := make([]Pulse, len(p))
	for i := 0; i < len(p); i++ {
		pulses[i] = Pulse(p[i])
	}
	return pulses
}

// Render draws p using the given glyphs.
func (p Pattern) Render(short, long rune) string {
	out := make([]rune, len(p))
	for i, pulse := range p.Pulses() {
		if pulse == Long {
			out[i] = long
		} else {
			out[i] = short
		}
	}
	return string(out)
}

type entry struct {
	char    rune
	pattern Pattern
	alias   bool // encode-only, left out of the inverse table
}

var entries = []entry{
	{'A', "01", false}, {'B', "1000", false}, {'C', "1010", false}, {'D', "100", false},
	{'E', "0", false}, {'F', "0010", false}, {'G', "110", false}, {'H', "0000", false},
	{'I', "00", false}, {'J', "0111", false}, {'K', "101", false}, {'L', "0100", false},
	{'M', "11", false}, {'N', "10", false}, {'O', "111", false}, {'P', "0110", false},
	{'Q', "1101", false}, {'R', "010", false}, {'S', "000", false}, {'T', "1", false},
	{'U', "001", false}, {'V', "0001", false}, {'W', "011", false}, {'X', "1001", false},
	{'Y', "1011", false}, {'Z', "1100", false},

	{'1', "01111", false}, {'2', "00111", false}, {'3', "00011", false}, {'4', "00001", false},
	{'5', "00000", false}, {'6', "10000", false}, {'7', "11000", false}, {'8', "11100", false},
	{'9', "11110", false}, {'0', "11111", false},

	{'.', "010101", false}, {',', "110011", false}, {'?', "001100", false}, {'_', "001101", false},
	{'+', "01010", false}, {'-', "100001", false}, {'^', "000000", false}, {'/', "10010", false},
	{'@', "011010", false}, {'(', "10110", false}, {')', "101101", false}, {'"', "010010", false},
	{'\'', "011110", false}, {'=', "10001", false},

	// The multiplication sign is keyed like X.
	{'×', "1001", true},
}

var (
	toPattern = make(map[rune]Pattern, len(entries))
	toChar    = make(map[Pattern]rune, len(entries))
)

func init() {
	for _, e := range entries {
		if len(e.pattern) < 1 || len(e.pattern) > 6 {
			panic(fmt.Sprintf("morse table: pattern %q for %q has invalid length", e.pattern, e.char))
		}
		if _, dup := toPattern[e.char]; dup {
			panic(fmt.Sprintf("morse table: duplicate character %q", e.char))
		}
		toPattern[e.char] = e.pattern
		if e.alias {
			continue
		}
		if other, dup := toChar[e.pattern]; dup {
			panic(fmt.Sprintf("morse table: %q and %q share pattern %q", other, e.char, e.pattern))
		}
		toChar[e.pattern] = e.char
	}
}

// CharToPattern returns the pattern for an uppercase character.
func CharToPattern(c rune) (Pattern, error) {
	p, ok := toPattern[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacter, c)
	}
	return p, nil
}

// PatternToChar returns the character keyed by p.
func PatternToChar(p Pattern) (rune, error) {
	c, ok := toChar[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, string(p))
	}
	return c, nil
}

// Characters lists every supported character in table order.
func Characters() []rune {
	return lo.Map(entries, func(e entry, _ int) rune { return e.char })
}

// IsAlias reports whether c only exists on the encoding side.
func IsAlias(c rune) bool {
	e, ok := lo.Find(entries, func(e entry) bool { return e.char == c })
	return ok && e.alias
}
