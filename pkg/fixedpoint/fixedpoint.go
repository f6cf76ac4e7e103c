// Package fixedpoint renders temperatures as truncated integer and hundredths
// digits. No rounding is applied anywhere: 72.987 renders as "72.98".
package fixedpoint

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Parts is a temperature split into its integer part and the last two
// digits of the value scaled by 100.
type Parts struct {
	Integer    int32 // truncated toward zero
	Hundredths uint8 // always in [0, 99]
	Negative   bool  // value is below zero at hundredths resolution
}

// Split truncates t into Parts.
func Split(t float32) Parts {
	scaled := math32.Trunc(t * 100)
	return Parts{
		Integer:    int32(t),
		Hundredths: uint8(int32(math32.Abs(scaled)) % 100),
		Negative:   scaled < 0,
	}
}

// Formatter renders Parts as decimal text. The zero value omits leading
// zeros in the hundredths, so 3.05 renders as "3.5".
type Formatter struct {
	ZeroPad bool
}

// Format splits t into Parts.
func (f Formatter) Format(t float32) Parts {
	return Split(t)
}

// Render returns the integer digits, a decimal point and the hundredths
// digits in a newly allocated slice.
func (f Formatter) Render(p Parts) []byte {
	buf := make([]byte, 0, 8)
	buf = f.AppendInteger(buf, p)
	buf = append(buf, '.')
	return f.AppendFraction(buf, p)
}

// String is shorthand for rendering t.
func (f Formatter) String(t float32) string {
	return string(f.Render(f.Format(t)))
}

// AppendInteger appends the signed integer digits of p to dst.
func (f Formatter) AppendInteger(dst []byte, p Parts) []byte {
	if p.Negative && p.Integer == 0 {
		dst = append(dst, '-')
	}
	return strconv.AppendInt(dst, int64(p.Integer), 10)
}

// AppendFraction appends the hundredths digits of p to dst.
func (f Formatter) AppendFraction(dst []byte, p Parts) []byte {
	if f.ZeroPad && p.Hundredths < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendUint(dst, uint64(p.Hundredths), 10)
}
