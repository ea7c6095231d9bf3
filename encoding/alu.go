package encoding

var (
	aluMulB     = field{0, 3}
	aluMulA     = field{3, 3}
	aluAddB     = field{6, 3}
	aluAddA     = field{9, 3}
	aluRaddrB   = field{12, 6}
	aluRaddrA   = field{18, 6}
	aluOpAdd    = field{24, 5}
	aluOpMul    = field{29, 3}
	aluWaddrMul = field{32, 6}
	aluWaddrAdd = field{38, 6}
	aluWS       = field{44, 1}
	aluSF       = field{45, 1}
	aluCondMul  = field{46, 3}
	aluCondAdd  = field{49, 3}
	aluPack     = field{52, 4}
	aluPM       = field{56, 1}
	aluUnpack   = field{57, 3}
	aluSig      = field{60, 4}
)

// ALUWord is every named bitfield of the ALU instruction layout: a single
// word that issues one add-pipe op and one mul-pipe op simultaneously.
type ALUWord struct {
	MulB, MulA, AddB, AddA uint8
	RaddrB, RaddrA         uint8
	OpAdd                  uint8
	OpMul                  uint8
	WaddrMul, WaddrAdd     uint8
	WS                     bool
	SF                     bool
	CondMul, CondAdd       uint8
	Pack                   uint8
	PM                     bool
	Unpack                 uint8
	Sig                    Signal
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Encode packs w's fields into a 64-bit instruction word.
func (w ALUWord) Encode() uint64 {
	var word uint64
	word = aluMulB.set(word, uint64(w.MulB))
	word = aluMulA.set(word, uint64(w.MulA))
	word = aluAddB.set(word, uint64(w.AddB))
	word = aluAddA.set(word, uint64(w.AddA))
	word = aluRaddrB.set(word, uint64(w.RaddrB))
	word = aluRaddrA.set(word, uint64(w.RaddrA))
	word = aluOpAdd.set(word, uint64(w.OpAdd))
	word = aluOpMul.set(word, uint64(w.OpMul))
	word = aluWaddrMul.set(word, uint64(w.WaddrMul))
	word = aluWaddrAdd.set(word, uint64(w.WaddrAdd))
	word = aluWS.set(word, boolBit(w.WS))
	word = aluSF.set(word, boolBit(w.SF))
	word = aluCondMul.set(word, uint64(w.CondMul))
	word = aluCondAdd.set(word, uint64(w.CondAdd))
	word = aluPack.set(word, uint64(w.Pack))
	word = aluPM.set(word, boolBit(w.PM))
	word = aluUnpack.set(word, uint64(w.Unpack))
	word = aluSig.set(word, uint64(w.Sig))
	return word
}

// DecodeALU is the inverse of Encode, used for round-trip verification.
func DecodeALU(word uint64) ALUWord {
	return ALUWord{
		MulB:     uint8(aluMulB.get(word)),
		MulA:     uint8(aluMulA.get(word)),
		AddB:     uint8(aluAddB.get(word)),
		AddA:     uint8(aluAddA.get(word)),
		RaddrB:   uint8(aluRaddrB.get(word)),
		RaddrA:   uint8(aluRaddrA.get(word)),
		OpAdd:    uint8(aluOpAdd.get(word)),
		OpMul:    uint8(aluOpMul.get(word)),
		WaddrMul: uint8(aluWaddrMul.get(word)),
		WaddrAdd: uint8(aluWaddrAdd.get(word)),
		WS:       aluWS.get(word) != 0,
		SF:       aluSF.get(word) != 0,
		CondMul:  uint8(aluCondMul.get(word)),
		CondAdd:  uint8(aluCondAdd.get(word)),
		Pack:     uint8(aluPack.get(word)),
		PM:       aluPM.get(word) != 0,
		Unpack:   uint8(aluUnpack.get(word)),
		Sig:      Signal(aluSig.get(word)),
	}
}
