package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestALURoundTrip(t *testing.T) {
	w := ALUWord{
		MulB: 2, MulA: 5, AddB: 1, AddA: 6,
		RaddrB: 12, RaddrA: 34, OpAdd: 19, OpMul: 3,
		WaddrMul: 9, WaddrAdd: 40, WS: true, SF: true,
		CondMul: 2, CondAdd: 6, Pack: 7, PM: true, Unpack: 5,
		Sig: SigNoSignal,
	}
	assert.Equal(t, w, DecodeALU(w.Encode()))
}

func TestLoadRoundTrip(t *testing.T) {
	w := LoadWord{
		Immediate: 0x12345678, WaddrMul: 1, WaddrAdd: 39,
		WS: false, SF: false, CondMul: 1, CondAdd: 1,
		Pack: 0, PM: false, Unpack: 3, Sig: SigLoad,
	}
	assert.Equal(t, w, DecodeLoad(w.Encode()))
}

func TestBranchRoundTrip(t *testing.T) {
	w := BranchWord{
		Immediate: 0xFFFFFFD8, WaddrMul: 39, WaddrAdd: 39,
		WS: false, RaddrA: 7, Reg: true, Rel: true, CondBr: 15, Sig: SigBranch,
	}
	assert.Equal(t, w, DecodeBranch(w.Encode()))
}

func TestSemaphoreRoundTrip(t *testing.T) {
	w := SemaphoreWord{
		Semaphore: 9, SA: true, WaddrMul: 39, WaddrAdd: 39,
		WS: false, SF: false, CondMul: 1, CondAdd: 1,
		Pack: 0, PM: false, Unpack: 4, Sig: SigLoad,
	}
	assert.Equal(t, w, DecodeSemaphore(w.Encode()))
}

func TestSignalOccupiesTop4Bits(t *testing.T) {
	w := ALUWord{Sig: SigBranch}
	word := w.Encode()
	assert.Equal(t, SigBranch, Signal(word>>60))
	assert.Equal(t, SigBranch, DecodeSignal(word))
}

func TestSetImmediate32PreservesOtherFields(t *testing.T) {
	w := LoadWord{Immediate: 1, WaddrMul: 5, WaddrAdd: 6, Sig: SigLoad}
	word := w.Encode()
	rewritten := SetImmediate32(word, 0xDEADBEEF)

	assert.Equal(t, uint32(0xDEADBEEF), GetImmediate32(rewritten))
	decoded := DecodeLoad(rewritten)
	assert.Equal(t, uint8(5), decoded.WaddrMul)
	assert.Equal(t, uint8(6), decoded.WaddrAdd)
	assert.Equal(t, SigLoad, decoded.Sig)
}
