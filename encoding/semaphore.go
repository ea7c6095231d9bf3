package encoding

var (
	semaSemaphore = field{0, 4}
	semaSA        = field{4, 1}
	semaWaddrMul  = field{32, 6}
	semaWaddrAdd  = field{38, 6}
	semaWS        = field{44, 1}
	semaSF        = field{45, 1}
	semaCondMul   = field{46, 3}
	semaCondAdd   = field{49, 3}
	semaPack      = field{52, 4}
	semaPM        = field{56, 1}
	semaUnpack    = field{57, 3}
	semaSig       = field{60, 4}
)

// SemaphoreWord is the semaphore instruction layout: sema_up/sema_down,
// identified by a 4-bit id and a direction bit.
type SemaphoreWord struct {
	Semaphore          uint8
	SA                 bool
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
func (w SemaphoreWord) Encode() uint64 {
	var word uint64
	word = semaSemaphore.set(word, uint64(w.Semaphore))
	word = semaSA.set(word, boolBit(w.SA))
	word = semaWaddrMul.set(word, uint64(w.WaddrMul))
	word = semaWaddrAdd.set(word, uint64(w.WaddrAdd))
	word = semaWS.set(word, boolBit(w.WS))
	word = semaSF.set(word, boolBit(w.SF))
	word = semaCondMul.set(word, uint64(w.CondMul))
	word = semaCondAdd.set(word, uint64(w.CondAdd))
	word = semaPack.set(word, uint64(w.Pack))
	word = semaPM.set(word, boolBit(w.PM))
	word = semaUnpack.set(word, uint64(w.Unpack))
	word = semaSig.set(word, uint64(w.Sig))
	return word
}

// DecodeSemaphore is the inverse of Encode.
func DecodeSemaphore(word uint64) SemaphoreWord {
	return SemaphoreWord{
		Semaphore: uint8(semaSemaphore.get(word)),
		SA:        semaSA.get(word) != 0,
		WaddrMul:  uint8(semaWaddrMul.get(word)),
		WaddrAdd:  uint8(semaWaddrAdd.get(word)),
		WS:        semaWS.get(word) != 0,
		SF:        semaSF.get(word) != 0,
		CondMul:   uint8(semaCondMul.get(word)),
		CondAdd:   uint8(semaCondAdd.get(word)),
		Pack:      uint8(semaPack.get(word)),
		PM:        semaPM.get(word) != 0,
		Unpack:    uint8(semaUnpack.get(word)),
		Sig:       Signal(semaSig.get(word)),
	}
}
