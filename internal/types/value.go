package types

import (
	"strconv"
	"strings"

	"github.com/dkern/branchwood/internal/util"
)

// Value is a centipawn evaluation score, from the perspective of the
// side to move unless documented otherwise.
type Value int32

// MaxPly bounds search depth/ply and therefore the undo stack and the
// mate-distance window.
const MaxPly = 128

const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueNA    Value = -32_001
	ValueInf   Value = 32_000
	ValueMate  Value = 31_000
	ValueMateThreshold = ValueMate - MaxPly
)

// IsValid reports whether v is within the representable evaluation range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsMate reports whether v encodes a forced mate (see ValueMate - ply).
func (v Value) IsMate() bool {
	a := util.Abs32(int32(v))
	return a > int32(ValueMateThreshold) && a <= int32(ValueMate)
}

// String renders the value the way a UCI "info score" line would:
// "mate N" for forced mates, "cp N" otherwise.
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == ValueNA:
		b.WriteString("N/A")
	case v.IsMate():
		b.WriteString("mate ")
		mateIn := (int(ValueMate) - int(util.Abs32(int32(v))) + 1) / 2
		if v < 0 {
			mateIn = -mateIn
		}
		b.WriteString(strconv.Itoa(mateIn))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
