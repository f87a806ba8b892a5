package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	DefaultShort        = '.'
	DefaultLong         = '-'
	DefaultSeparator    = ' '
	DefaultFrequency    = 440
	DefaultUnitDuration = 100

	MinFrequency = 37
	MaxFrequency = 32767
)

// Options configures how a Message is rendered and played.
// Zero fields fall back to the defaults.
type Options struct {
	Short        rune
	Long         rune
	Separator    rune
	Frequency    int // Hz
	UnitDuration int // milliseconds per short pulse
}

func DefaultOptions() Options {
	return Options{
		Short:        DefaultShort,
		Long:         DefaultLong,
		Separator:    DefaultSeparator,
		Frequency:    DefaultFrequency,
		UnitDuration: DefaultUnitDuration,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Short == 0 {
		o.Short = d.Short
	}
	if o.Long == 0 {
		o.Long = d.Long
	}
	if o.Separator == 0 {
		o.Separator = d.Separator
	}
	if o.Frequency == 0 {
		o.Frequency = d.Frequency
	}
	if o.UnitDuration == 0 {
		o.UnitDuration = d.UnitDuration
	}
	return o
}

func (o Options) validate() error {
	if len(lo.Uniq([]rune{o.Short, o.Long, o.Separator})) != 3 {
		return fmt.Errorf("%w: short=%q long=%q separator=%q", ErrGlyphCollision, o.Short, o.Long, o.Separator)
	}
	if o.Frequency < MinFrequency || o.Frequency > MaxFrequency {
		return fmt.Errorf("%w: %d Hz (allowed %d-%d)", ErrInvalidFrequency, o.Frequency, MinFrequency, MaxFrequency)
	}
	if o.UnitDuration < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidUnitDuration, o.UnitDuration)
	}
	return nil
}

// Message is an immutable piece of text together with its Morse rendering.
type Message struct {
	text    string
	opts    Options
	encoded string
}

// Encode normalizes text and renders it as Morse.
func Encode(text string, opts Options) (*Message, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	text = Normalize(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	tokens := make([]string, 0, len(text))
	for _, c := range text {
		if c == ' ' {
			tokens = append(tokens, " ")
			continue
		}
		pattern, err := CharToPattern(c)
		if err != nil {
			return nil, fmt.Errorf("%w %q in %q", ErrInvalidCharacter, c, text)
		}
		tokens = append(tokens, pattern.Render(opts.Short, opts.Long))
	}

	return &Message{
		text:    text,
		opts:    opts,
		encoded: strings.Join(tokens, string(opts.Separator)),
	}, nil
}

// Parse decodes Morse written with the glyphs in opts.
func Parse(code string, opts Options) (*Message, error) {
	opts = opts.withDefaults()
	if len(lo.Uniq([]rune{opts.Short, opts.Long, opts.Separator, ' '})) > 4 {
		return nil, fmt.Errorf("%w: short=%q long=%q separator=%q", ErrTooManyGlyphs, opts.Short, opts.Long, opts.Separator)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, ErrEmptyText
	}

	// With a non-space separator, encoded word breaks show up as " " tokens.
	spaceIsBoundary := opts.Separator != ' ' && opts.Short != ' ' && opts.Long != ' '

	var text []rune
	for _, token := range strings.Split(code, string(opts.Separator)) {
		if token == "" || (spaceIsBoundary && strings.Trim(token, " ") == "") {
			if len(text) > 0 && text[len(text)-1] == ' ' {
				continue
			}
			text = append(text, ' ')
			continue
		}

		var pattern strings.Builder
		for _, g := range token {
			switch g {
			case opts.Long:
				pattern.WriteByte(byte(Long))
			case opts.Short:
				pattern.WriteByte(byte(Short))
			default:
				return nil, fmt.Errorf("%w: could not read %q in %q", ErrInvalidGlyph, token, code)
			}
		}
		c, err := PatternToChar(Pattern(pattern.String()))
		if err != nil {
			return nil, fmt.Errorf("%w (token %q)", err, token)
		}
		text = append(text, c)
	}

	return Encode(string(text), opts)
}

// Normalize collapses runs of spaces and uppercases text.
func Normalize(text string) string {
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return strings.ToUpper(text)
}

// Add returns a new message holding m's text followed by other's.
// The result keeps m's glyphs and unit duration but not its frequency.
func (m *Message) Add(other *Message) (*Message, error) {
	return m.concat(other.text)
}

// AddString is Add for plain text.
func (m *Message) AddString(s string) (*Message, error) {
	return m.concat(s)
}

func (m *Message) concat(s string) (*Message, error) {
	return Encode(m.text+s, Options{
		Short:        m.opts.Short,
		Long:         m.opts.Long,
		Separator:    m.opts.Separator,
		UnitDuration: m.opts.UnitDuration,
	})
}

// String returns the normalized text.
func (m *Message) String() string { return m.text }

func (m *Message) Text() string    { return m.text }
func (m *Message) Encoded() string { return m.encoded }
func (m *Message) Options() Options {
	return m.opts
}
func (m *Message) Short() rune     { return m.opts.Short }
func (m *Message) Long() rune      { return m.opts.Long }
func (m *Message) Separator() rune { return m.opts.Separator }
func (m *Message) Frequency() int  { return m.opts.Frequency }

// Unit is the duration of one short pulse.
func (m *Message) Unit() time.Duration {
	return time.Duration(m.opts.UnitDuration) * time.Millisecond
}

// UnitFromWPM converts a words-per-minute speed to a unit duration in
// milliseconds using the PARIS standard (50 units per word).
func UnitFromWPM(wpm int) int {
	if wpm < 1 {
		return DefaultUnitDuration
	}
	return max(1, 1200/wpm)
}
