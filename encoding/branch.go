package encoding

var (
	branchImmediate = field{0, 32}
	branchWaddrMul  = field{32, 6}
	branchWaddrAdd  = field{38, 6}
	branchWS        = field{44, 1}
	branchRaddrA    = field{45, 5}
	branchReg       = field{50, 1}
	branchRel       = field{51, 1}
	branchCondBr    = field{52, 4}
	branchDontCare  = field{56, 4}
	branchSig       = field{60, 4}
)

// BranchWord is the branch instruction layout: a relative or absolute
// displacement, an optional register input, and an optional link
// destination placed through the same write-operand machinery as an ALU
// word.
type BranchWord struct {
	Immediate          uint32
	WaddrMul, WaddrAdd uint8
	WS                 bool
	RaddrA             uint8
	Reg                bool
	Rel                bool
	CondBr             uint8
	Sig                Signal
}

// Encode packs w's fields into a 64-bit instruction word.
func (w BranchWord) Encode() uint64 {
	var word uint64
	word = branchImmediate.set(word, uint64(w.Immediate))
	word = branchWaddrMul.set(word, uint64(w.WaddrMul))
	word = branchWaddrAdd.set(word, uint64(w.WaddrAdd))
	word = branchWS.set(word, boolBit(w.WS))
	word = branchRaddrA.set(word, uint64(w.RaddrA))
	word = branchReg.set(word, boolBit(w.Reg))
	word = branchRel.set(word, boolBit(w.Rel))
	word = branchCondBr.set(word, uint64(w.CondBr))
	word = branchSig.set(word, uint64(w.Sig))
	return word
}

// DecodeBranch is the inverse of Encode.
func DecodeBranch(word uint64) BranchWord {
	return BranchWord{
		Immediate: uint32(branchImmediate.get(word)),
		WaddrMul:  uint8(branchWaddrMul.get(word)),
		WaddrAdd:  uint8(branchWaddrAdd.get(word)),
		WS:        branchWS.get(word) != 0,
		RaddrA:    uint8(branchRaddrA.get(word)),
		Reg:       branchReg.get(word) != 0,
		Rel:       branchRel.get(word) != 0,
		CondBr:    uint8(branchCondBr.get(word)),
		Sig:       Signal(branchSig.get(word)),
	}
}
