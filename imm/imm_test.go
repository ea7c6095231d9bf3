package imm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-YOU/qpu-assembler/qpuerr"
)

func TestSmallImmIntegerRange(t *testing.T) {
	code, err := SmallImm(Int(5))
	require.NoError(t, err)
	assert.Equal(t, uint8(5), code)

	code, err = SmallImm(Int(-1))
	require.NoError(t, err)
	assert.Equal(t, uint8(31), code)

	code, err = SmallImm(Int(-16))
	require.NoError(t, err)
	assert.Equal(t, uint8(16), code)

	code, err = SmallImm(Int(15))
	require.NoError(t, err)
	assert.Equal(t, uint8(15), code)
}

func TestSmallImmIntegerOutOfRange(t *testing.T) {
	_, err := SmallImm(Int(16))
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.IllegalImmediate))

	_, err = SmallImm(Int(-17))
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.IllegalImmediate))
}

func TestSmallImmFloatPowersOfTwo(t *testing.T) {
	code, err := SmallImm(Float(1.0))
	require.NoError(t, err)
	assert.Equal(t, uint8(32), code)

	code, err = SmallImm(Float(128.0))
	require.NoError(t, err)
	assert.Equal(t, uint8(39), code)

	code, err = SmallImm(Float(1.0 / 256.0))
	require.NoError(t, err)
	assert.Equal(t, uint8(40), code)
}

func TestSmallImmZeroCanonicalizes(t *testing.T) {
	code, err := SmallImm(Int(0))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), code)

	code, err = SmallImm(Float(0.0))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), code)
}

func TestSmallImmFloatNotInTable(t *testing.T) {
	_, err := SmallImm(Float(3.0))
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.IllegalImmediate))
}

func TestLoadScalarInt(t *testing.T) {
	word, unpack := LoadScalar(Int(-3))
	assert.Equal(t, uint32(0xFFFFFFFD), word)
	assert.Equal(t, uint8(0), unpack)
}

func TestLoadScalarFloat(t *testing.T) {
	word, unpack := LoadScalar(Float(1.3))
	assert.Equal(t, math.Float32bits(1.3), word)
	assert.Equal(t, uint8(0), unpack)
}

func TestLoadVectorUnsignedRoundTrip(t *testing.T) {
	lanes := []int32{3, 3, 1, 1, 0, 2, 3, 3, 1, 3, 0, 2, 2, 1, 0, 1}
	word, unpack, err := LoadVector(lanes)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), unpack)
	assert.Equal(t, lanes, DecodeVector(word, false, 16))
}

// TestLoadVectorUnsignedMSBFirstLayout pins the left-shift accumulation
// order: lane 0's bits land at bit 15 of each half, lane 15's at bit 0. See
// DESIGN.md's imm entry for why this value differs from the worked constant
// in the source material, whose bit population count cannot be produced by
// any permutation of this lane data.
func TestLoadVectorUnsignedMSBFirstLayout(t *testing.T) {
	lanes := []int32{3, 3, 1, 1, 0, 2, 3, 3, 1, 3, 0, 2, 2, 1, 0, 1}
	word, unpack, err := LoadVector(lanes)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), unpack)
	assert.Equal(t, uint32(0xC758F3C5), word)
	assert.Equal(t, lanes, DecodeVector(word, false, 16))
}

func TestLoadVectorSignedRoundTrip(t *testing.T) {
	lanes := []int32{-2, 1, 1, 1, -2, 0, 0, 1, -1, 1, -1, -2, 1, 1, 1, -1}
	word, unpack, err := LoadVector(lanes)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), unpack)
	assert.Equal(t, lanes, DecodeVector(word, true, 16))
}

// TestLoadVectorSignedMSBFirstLayout is the signed counterpart of
// TestLoadVectorUnsignedMSBFirstLayout.
func TestLoadVectorSignedMSBFirstLayout(t *testing.T) {
	lanes := []int32{-2, 1, 1, 1, -2, 0, 0, 1, -1, 1, -1, -2, 1, 1, 1, -1}
	word, unpack, err := LoadVector(lanes)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), unpack)
	assert.Equal(t, uint32(0x88B171EF), word)
	assert.Equal(t, lanes, DecodeVector(word, true, 16))
}

func TestLoadVectorPartialLanesZeroFilled(t *testing.T) {
	lanes := []int32{1, 2, 3}
	word, unpack, err := LoadVector(lanes)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), unpack)
	got := DecodeVector(word, false, 16)
	assert.Equal(t, []int32{1, 2, 3}, got[:3])
	for _, v := range got[3:] {
		assert.Equal(t, int32(0), v)
	}
}

func TestLoadVectorTooManyLanes(t *testing.T) {
	lanes := make([]int32, 17)
	_, _, err := LoadVector(lanes)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.TooManyLanes))
}

func TestLoadVectorSignedRangeViolation(t *testing.T) {
	_, _, err := LoadVector([]int32{-2, 2})
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.IllegalImmediate))
}

func TestLoadVectorUnsignedRangeViolation(t *testing.T) {
	_, _, err := LoadVector([]int32{0, 4})
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.IllegalImmediate))
}
