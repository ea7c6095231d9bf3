// Package imm implements the QPU's two immediate codecs: the 6-bit
// small-immediate table shared with the B-file read slot, and the 32-bit
// load-immediate encoder used by the ldi instruction.
package imm

import (
	"fmt"
	"math"

	"github.com/S-YOU/qpu-assembler/qpuerr"
)

// Scalar is either an integer or a floating-point immediate operand. Use Int
// or Float to build one; the zero value is the integer 0.
type Scalar struct {
	isFloat bool
	i       int64
	f       float64
}

// Int builds an integer Scalar.
func Int(v int64) Scalar { return Scalar{i: v} }

// Float builds a floating-point Scalar.
func Float(v float64) Scalar { return Scalar{isFloat: true, f: v} }

// IsFloat reports whether the scalar holds a float.
func (s Scalar) IsFloat() bool { return s.isFloat }

// SmallImm encodes v as a 6-bit small-immediate code. It accepts only the 48
// values behind codes 0..47: integers in [-16,15], and the powers of two
// 2.0^i and inverse powers 2.0^(i-8) for i in 0..7. The float 0.0 and the
// integer 0 both resolve to code 0.
func SmallImm(v Scalar) (uint8, error) {
	if !v.isFloat {
		switch {
		case v.i >= 0 && v.i <= 15:
			return uint8(v.i), nil
		case v.i >= -16 && v.i <= -1:
			return uint8(16 + (v.i + 16)), nil
		default:
			return 0, qpuerr.New(qpuerr.IllegalImmediate, "pack_small_imm", fmt.Sprintf("integer %d has no small-immediate encoding", v.i))
		}
	}

	if v.f == 0.0 {
		return 0, nil
	}
	for i := 0; i < 8; i++ {
		if v.f == math.Pow(2, float64(i)) {
			return uint8(32 + i), nil
		}
	}
	for i := 0; i < 8; i++ {
		if v.f == math.Pow(2, float64(i-8)) {
			return uint8(40 + i), nil
		}
	}
	return 0, qpuerr.New(qpuerr.IllegalImmediate, "pack_small_imm", fmt.Sprintf("float %v has no small-immediate encoding", v.f))
}

// LoadScalar encodes a scalar int or float as the 32-bit ldi payload. The
// unpack code returned is always 0: scalars carry no per-lane vector format.
func LoadScalar(v Scalar) (word uint32, unpack uint8) {
	if v.isFloat {
		return math.Float32bits(float32(v.f)), 0
	}
	return uint32(int32(v.i)), 0
}

// MaxVectorLanes is the widest vector a single load-immediate instruction
// can encode; the QPU has 16 SIMD lanes.
const MaxVectorLanes = 16

// LoadVector encodes up to 16 per-lane small integers as the 32-bit ldi
// payload described in spec section 4.1. Lanes are packed MSB-first: each
// lane's low bit is folded into the low half and its high bit into the high
// half by a left-shift accumulation over lanes 0..15, so lane 0 ends up at
// bit 15 of each half and lane 15 at bit 0. Missing trailing lanes are
// zero-filled. Signedness is inferred from the lane values: present if any
// lane is negative, in which case every lane must be in [-2,1]; otherwise
// every lane must be in [0,3]. The unpack code is 1 for a signed vector, 3
// for an unsigned one.
func LoadVector(lanes []int32) (word uint32, unpack uint8, err error) {
	if len(lanes) > MaxVectorLanes {
		return 0, 0, qpuerr.New(qpuerr.TooManyLanes, "pack_imm", fmt.Sprintf("%d lanes exceeds the %d-lane limit", len(lanes), MaxVectorLanes))
	}

	signed := false
	for _, v := range lanes {
		if v < 0 {
			signed = true
			break
		}
	}

	for i, v := range lanes {
		if signed {
			if v < -2 || v > 1 {
				return 0, 0, qpuerr.New(qpuerr.IllegalImmediate, "pack_imm", fmt.Sprintf("lane %d value %d out of signed range [-2,1]", i, v))
			}
		} else if v < 0 || v > 3 {
			return 0, 0, qpuerr.New(qpuerr.IllegalImmediate, "pack_imm", fmt.Sprintf("lane %d value %d out of unsigned range [0,3]", i, v))
		}
	}

	var low, high uint32
	for i := 0; i < MaxVectorLanes; i++ {
		var v int32
		if i < len(lanes) {
			v = lanes[i]
		}
		bits := uint32(v) & 0x3
		low = (low << 1) | (bits & 0x1)
		high = (high << 1) | ((bits >> 1) & 0x1)
	}

	unpack = 3
	if signed {
		unpack = 1
	}
	return (high << 16) | low, unpack, nil
}

// DecodeVector is the inverse of LoadVector, used internally for round-trip
// validation. signed selects the two's-complement interpretation of each
// 2-bit lane (matching the unpack code LoadVector would have returned). Lane
// i's low bit sits at bit 15-i of the low half and its high bit at bit 15-i
// of the high half, matching LoadVector's left-shift accumulation.
func DecodeVector(word uint32, signed bool, lanes int) []int32 {
	loHalf := word & 0xFFFF
	hiHalf := (word >> 16) & 0xFFFF

	out := make([]int32, lanes)
	for i := 0; i < lanes; i++ {
		shift := uint(MaxVectorLanes - 1 - i)
		low := (loHalf >> shift) & 0x1
		high := (hiHalf >> shift) & 0x1
		v := int32(low | (high << 1))
		if signed && v > 1 {
			v -= 4
		}
		out[i] = v
	}
	return out
}
