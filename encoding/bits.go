// Package encoding builds and decodes the QPU's four 64-bit instruction
// word layouts (ALU, Load, Branch, Semaphore) from their named bitfields.
package encoding

// field describes one named bitfield's position within a 64-bit word.
type field struct {
	offset uint
	width  uint
}

func (f field) mask() uint64 { return (uint64(1) << f.width) - 1 }

// get extracts f's value from word.
func (f field) get(word uint64) uint64 {
	return (word >> f.offset) & f.mask()
}

// set returns word with f's bits replaced by v. v is truncated to f's width.
func (f field) set(word uint64, v uint64) uint64 {
	cleared := word &^ (f.mask() << f.offset)
	return cleared | ((v & f.mask()) << f.offset)
}

// Sig is the top 4 bits shared by every word layout; it discriminates which
// of the four layouts the remaining bits should be read as.
var sigField = field{offset: 60, width: 4}

// DecodeSignal extracts the sig nibble from any encoded word.
func DecodeSignal(word uint64) Signal { return Signal(sigField.get(word)) }

// immediateField is the 32-bit immediate shared by the Load and Branch
// layouts; both place it at bits 0-31, which lets backpatching rewrite a
// branch displacement without decoding the rest of the word.
var immediateField = field{offset: 0, width: 32}

// GetImmediate32 reads the low 32 bits common to the Load and Branch
// layouts.
func GetImmediate32(word uint64) uint32 { return uint32(immediateField.get(word)) }

// SetImmediate32 rewrites the low 32 bits common to the Load and Branch
// layouts, leaving every other field untouched. This is the operation
// backpatching performs on a pending branch word.
func SetImmediate32(word uint64, imm uint32) uint64 {
	return immediateField.set(word, uint64(imm))
}
