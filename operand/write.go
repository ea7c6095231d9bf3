package operand

import (
	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

// WritePlacement is the solver's output for the two write destinations of
// an ALU or load word.
type WritePlacement struct {
	WaddrAdd, WaddrMul uint8
	WS                 bool
	HasPack            bool
	Pack               uint8
	PM                 bool
}

// LocateWriteOperands assigns file addresses and the ws swap bit to the
// add-pipe and mul-pipe write destinations. At most one of the two may
// carry a pack code. The unswapped form (add→A, mul→B) is tried first;
// the swapped form is tried if that fails the capability check.
func LocateWriteOperands(addDst, mulDst regs.Register) (WritePlacement, error) {
	if addDst.HasPack() && mulDst.HasPack() {
		return WritePlacement{}, qpuerr.New(qpuerr.TooManyPacking, "locate_write_operands", "both add_dst and mul_dst carry a pack code")
	}

	var ws bool
	switch {
	case addDst.Caps.CanWriteA() && mulDst.Caps.CanWriteB():
		ws = false
	case addDst.Caps.CanWriteB() && mulDst.Caps.CanWriteA():
		ws = true
	default:
		return WritePlacement{}, qpuerr.New(qpuerr.BadDestinationCombination, "locate_write_operands", "neither (add->A, mul->B) nor the swapped form is writable for "+addDst.Name+", "+mulDst.Name)
	}

	var pack uint8
	var hasPack bool
	pm := false
	switch {
	case addDst.HasPack():
		pack, pm, hasPack = uint8(addDst.PackCode), addDst.PM, true
	case mulDst.HasPack():
		pack, pm, hasPack = uint8(mulDst.PackCode), mulDst.PM, true
	}

	return WritePlacement{
		WaddrAdd: addDst.Addr,
		WaddrMul: mulDst.Addr,
		WS:       ws,
		HasPack:  hasPack,
		Pack:     pack,
		PM:       pm,
	}, nil
}
