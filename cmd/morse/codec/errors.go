package codec

import "errors"

var (
	ErrGlyphCollision      = errors.New("short, long and separator glyphs must all differ")
	ErrTooManyGlyphs       = errors.New("too many distinct glyphs")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInvalidGlyph        = errors.New("invalid glyph")
	ErrUnknownPattern      = errors.New("unknown pattern")
	ErrUnknownCharacter    = errors.New("unknown character")
	ErrEmptyText           = errors.New("text is empty")
	ErrInvalidFrequency    = errors.New("frequency out of range")
	ErrInvalidUnitDuration = errors.New("unit duration must be at least 1ms")
	ErrInvalidRepeat       = errors.New("repeat must be at least 1")
)
