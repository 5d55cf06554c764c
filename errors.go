package indexable

import "fmt"

// Lookups report invalid positions with explicit errors instead of
// panicking, so callers driving a Text from computed positions can
// recover. No other error kinds exist; construction never fails.

// ErrIndexOutOfRange is returned when a rune index falls outside the
// valid range of a Text.
type ErrIndexOutOfRange struct {
	Index     int
	RuneCount int
}

var _ error = (*ErrIndexOutOfRange)(nil)

func newErrIndexOutOfRange(index int, runeCount int) *ErrIndexOutOfRange {
	return &ErrIndexOutOfRange{
		Index:     index,
		RuneCount: runeCount,
	}
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf(
		"rune index %d is out of range for a text of %d runes",
		e.Index, e.RuneCount,
	)
}

// ErrInvalidRange is returned when a rune range has its start after
// its end, or either bound outside the valid range of a Text.
type ErrInvalidRange struct {
	Start     int
	End       int
	RuneCount int
}

var _ error = (*ErrInvalidRange)(nil)

func newErrInvalidRange(start int, end int, runeCount int) *ErrInvalidRange {
	return &ErrInvalidRange{
		Start:     start,
		End:       end,
		RuneCount: runeCount,
	}
}

func (e *ErrInvalidRange) Error() string {
	if e.End < e.Start {
		return fmt.Sprintf(
			"range end %d must be greater than or equal to range start %d",
			e.End, e.Start,
		)
	}

	return fmt.Sprintf(
		"rune range [%d, %d) is out of range for a text of %d runes",
		e.Start, e.End, e.RuneCount,
	)
}
