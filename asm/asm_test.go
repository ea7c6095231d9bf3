package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-YOU/qpu-assembler/config"
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/imm"
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

func wordAt(t *testing.T, a *Assembler, idx int) uint64 {
	t.Helper()
	require.Less(t, idx, len(a.words))
	return a.words[idx]
}

func TestMovIsBorWithZero(t *testing.T) {
	movAsm := New()
	require.NoError(t, movAsm.Mov(regs.MustLookup("ra1"), regs.MustLookup("ra2")))

	borAsm := New()
	mb, err := borAsm.EmitAdd(AddBOr, regs.MustLookup("ra1"), operand.FromRegister(regs.MustLookup("ra2")), operand.FromImmediate(0), encoding.SigNoSignal, true)
	require.NoError(t, err)
	_ = mb

	assert.Equal(t, wordAt(t, borAsm, 0), wordAt(t, movAsm, 0))
}

func TestLdiScalarRoundTrip(t *testing.T) {
	a := New()
	require.NoError(t, a.Ldi(regs.MustLookup("ra0"), imm.Int(-3)))
	bytes, err := a.Finalize()
	require.NoError(t, err)
	require.Len(t, bytes, 8)

	word := wordAt2(bytes, 0)
	decoded := encoding.DecodeLoad(word)
	assert.Equal(t, uint32(0xFFFFFFFD), decoded.Immediate)
	assert.Equal(t, encoding.SigLoad, decoded.Sig)
}

func wordAt2(b []byte, idx int) uint64 {
	var w uint64
	for i := 0; i < 8; i++ {
		w |= uint64(b[idx*8+i]) << (8 * i)
	}
	return w
}

func TestBranchBackpatchLaw(t *testing.T) {
	a := New()
	require.NoError(t, a.Label("L"))
	require.NoError(t, a.Nop(encoding.SigNoSignal))
	require.NoError(t, a.Jmp("L"))
	for i := 0; i < 4; i++ {
		require.NoError(t, a.Nop(encoding.SigNoSignal))
	}

	bytes, err := a.Finalize()
	require.NoError(t, err)
	assert.Len(t, bytes, 8*6)

	branchWord := wordAt2(bytes, 1)
	decoded := encoding.DecodeBranch(branchWord)
	assert.Equal(t, int32(-40), int32(decoded.Immediate))
}

func TestFinalizeUndefinedLabel(t *testing.T) {
	a := New()
	require.NoError(t, a.Jmp("missing"))
	_, err := a.Finalize()
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.UndefinedLabel))
}

func TestDuplicateLabel(t *testing.T) {
	a := New()
	require.NoError(t, a.Label("L"))
	err := a.Label("L")
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.DuplicateLabel))
}

func TestEveryWordLengthInvariant(t *testing.T) {
	a := New()
	require.NoError(t, a.Nop(encoding.SigNoSignal))
	require.NoError(t, a.Ldi(regs.MustLookup("ra0"), imm.Int(1)))
	require.NoError(t, a.SemaUp(3))
	require.NoError(t, a.Exit())
	bytes, err := a.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 8*a.Len(), len(bytes))
}

func TestSignalTopBitsKnown(t *testing.T) {
	a := New()
	require.NoError(t, a.Nop(encoding.SigNoSignal))
	require.NoError(t, a.SemaDown(0))
	for _, w := range a.words {
		sig := encoding.DecodeSignal(w)
		switch sig {
		case encoding.SigNoSignal, encoding.SigThreadEnd, encoding.SigAluSmallImm, encoding.SigLoad, encoding.SigBranch:
		default:
			t.Fatalf("unexpected signal %v", sig)
		}
	}
}

func TestMulBinderAttachesRotate(t *testing.T) {
	a := New()
	mb, err := a.EmitAdd(AddIAdd, regs.R3(), operand.FromRegister(regs.R0()), operand.FromRegister(regs.R1()), encoding.SigNoSignal, true)
	require.NoError(t, err)
	err = mb.Emit(MulV8Min, regs.R2(), operand.FromRegister(regs.R0()), operand.FromRegister(regs.R1()), RotateBy(3))
	require.NoError(t, err)

	decoded := encoding.DecodeALU(a.words[0])
	assert.Equal(t, uint8(48+3), decoded.RaddrB)
	assert.Equal(t, encoding.SigAluSmallImm, decoded.Sig)
}

func TestRotateRejectsNonAccumulatorMulOperand(t *testing.T) {
	a := New()
	mb, err := a.EmitAdd(AddNop, regs.NullReg(), operand.DefaultRead(), operand.DefaultRead(), encoding.SigNoSignal, false)
	require.NoError(t, err)
	err = mb.Emit(MulV8Min, regs.NullReg(), operand.FromRegister(regs.MustLookup("ra1")), operand.FromRegister(regs.R1()), RotateBy(3))
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.RotateOperandRestriction))
}

func TestSemaBadId(t *testing.T) {
	a := New()
	err := a.SemaUp(16)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.BadSemaphoreId))
}

func TestEmitAfterFinalizeFails(t *testing.T) {
	a := New()
	require.NoError(t, a.Nop(encoding.SigNoSignal))
	_, err := a.Finalize()
	require.NoError(t, err)

	_, err = a.Finalize()
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.AlreadyFinalized))

	err = a.Nop(encoding.SigNoSignal)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.AlreadyFinalized))
}

func TestCapacityExceeded(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Emit.MaxInstructions = 1
	a := NewWithConfig(cfg, nil)
	require.NoError(t, a.Nop(encoding.SigNoSignal))

	err := a.Nop(encoding.SigNoSignal)
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.CapacityExceeded))
}

func TestLookupUnknownMnemonics(t *testing.T) {
	_, err := LookupAddOp("bogus")
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.UnknownMnemonic))

	_, err = LookupMulOp("bogus")
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.UnknownMnemonic))

	_, err = LookupBranchCond("bogus")
	require.Error(t, err)
	assert.True(t, qpuerr.Is(err, qpuerr.UnknownMnemonic))
}
