package encoding

var (
	loadImmediate = field{0, 32}
	loadWaddrMul  = field{32, 6}
	loadWaddrAdd  = field{38, 6}
	loadWS        = field{44, 1}
	loadSF        = field{45, 1}
	loadCondMul   = field{46, 3}
	loadCondAdd   = field{49, 3}
	loadPack      = field{52, 4}
	loadPM        = field{56, 1}
	loadUnpack    = field{57, 3}
	loadSig       = field{60, 4}
)

// LoadWord is the load-immediate instruction layout: a 32-bit payload plus
// the same write/condition/pack machinery as an ALU word.
type LoadWord struct {
	Immediate          uint32
	WaddrMul, WaddrAdd uint8
	WS                 bool
	SF                 bool
	CondMul, CondAdd   uint8
	Pack               uint8
	PM                 bool
	Unpack             uint8
	Sig                Signal
}

// Encode packs w's fields into a 64-bit instruction word.
func (w LoadWord) Encode() uint64 {
	var word uint64
	word = loadImmediate.set(word, uint64(w.Immediate))
	word = loadWaddrMul.set(word, uint64(w.WaddrMul))
	word = loadWaddrAdd.set(word, uint64(w.WaddrAdd))
	word = loadWS.set(word, boolBit(w.WS))
	word = loadSF.set(word, boolBit(w.SF))
	word = loadCondMul.set(word, uint64(w.CondMul))
	word = loadCondAdd.set(word, uint64(w.CondAdd))
	word = loadPack.set(word, uint64(w.Pack))
	word = loadPM.set(word, boolBit(w.PM))
	word = loadUnpack.set(word, uint64(w.Unpack))
	word = loadSig.set(word, uint64(w.Sig))
	return word
}

// DecodeLoad is the inverse of Encode.
func DecodeLoad(word uint64) LoadWord {
	return LoadWord{
		Immediate: uint32(loadImmediate.get(word)),
		WaddrMul:  uint8(loadWaddrMul.get(word)),
		WaddrAdd:  uint8(loadWaddrAdd.get(word)),
		WS:        loadWS.get(word) != 0,
		SF:        loadSF.get(word) != 0,
		CondMul:   uint8(loadCondMul.get(word)),
		CondAdd:   uint8(loadCondAdd.get(word)),
		Pack:      uint8(loadPack.get(word)),
		PM:        loadPM.get(word) != 0,
		Unpack:    uint8(loadUnpack.get(word)),
		Sig:       Signal(loadSig.get(word)),
	}
}
