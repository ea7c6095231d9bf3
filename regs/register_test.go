package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-YOU/qpu-assembler/qpuerr"
)

func TestLowAccumulatorsRejectPackAndUnpack(t *testing.T) {
	for _, name := range []string{"r0", "r1", "r2", "r3"} {
		r := MustLookup(name)
		_, err := r.Pack(1)
		require.Error(t, err, name)
		_, err = r.Unpack(1)
		require.Error(t, err, name)
	}
}

func TestR4UnpackGrantsBothFilesAndPM(t *testing.T) {
	r4 := R4()
	out, err := r4.Unpack(2)
	require.NoError(t, err)
	assert.True(t, out.Caps.CanReadA())
	assert.True(t, out.Caps.CanReadB())
	assert.True(t, out.PM)
	assert.Equal(t, uint8(2), uint8(out.UnpackCode))
}

func TestPackNarrowsToAWritePath(t *testing.T) {
	r := MustLookup("ra5")
	out, err := r.Pack(3)
	require.NoError(t, err)
	assert.False(t, out.PM)
	assert.True(t, out.Caps.CanWriteA())
	assert.False(t, out.Caps.CanWriteB())
}

func TestPackMulRequiresBWriteAndSetsPM(t *testing.T) {
	r := MustLookup("rb5")
	out, err := r.PackMul(3)
	require.NoError(t, err)
	assert.True(t, out.PM)
	assert.True(t, out.Caps.CanWriteB())
	assert.False(t, out.Caps.CanWriteA())

	ra := MustLookup("ra5")
	_, err = ra.PackMul(3)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.NotAWriteOperand))
}

func TestUnpackRequiresAReadableOutsideR4(t *testing.T) {
	rb := MustLookup("rb5")
	_, err := rb.Unpack(1)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.NotAReadOperand))
}

func TestAccumulatorIndices(t *testing.T) {
	for i, name := range []string{"r0", "r1", "r2", "r3", "r4", "r5"} {
		r := MustLookup(name)
		assert.True(t, r.IsAccumulator())
		assert.Equal(t, uint8(i), r.AccumIndex())
	}
	assert.True(t, R4().IsR4())
	assert.False(t, R0().IsR4())
}

func TestNullRegisterReadsAndWritesBothFiles(t *testing.T) {
	n := NullReg()
	assert.Equal(t, Null, n.Addr)
	assert.True(t, n.Caps.CanReadA())
	assert.True(t, n.Caps.CanReadB())
	assert.True(t, n.Caps.CanWriteA())
	assert.True(t, n.Caps.CanWriteB())
}
