package asm

import (
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/imm"
	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

// placeLdiDestinations assigns the load word's two write addresses. Unlike
// the general write-operand solver, ldi keeps ws fixed at 0 and instead
// swaps which destination occupies which field when the first arrangement
// is not writable.
func placeLdiDestinations(dstA, dstB regs.Register) (waddrAdd, waddrMul uint8, err error) {
	if dstA.Caps.CanWriteA() && dstB.Caps.CanWriteB() {
		return dstA.Addr, dstB.Addr, nil
	}
	if dstB.Caps.CanWriteA() && dstA.Caps.CanWriteB() {
		return dstB.Addr, dstA.Addr, nil
	}
	return 0, 0, qpuerr.New(qpuerr.BadDestinationFile, "ldi", "neither arrangement of "+dstA.Name+", "+dstB.Name+" is writable")
}

func (a *Assembler) emitLoadWord(dstA, dstB regs.Register, payload uint32, unpack uint8) error {
	if err := a.checkOpen("ldi"); err != nil {
		return err
	}
	waddrAdd, waddrMul, err := placeLdiDestinations(dstA, dstB)
	if err != nil {
		return err
	}
	word := encoding.LoadWord{
		Immediate: payload,
		WaddrAdd:  waddrAdd,
		WaddrMul:  waddrMul,
		WS:        false,
		SF:        false,
		CondAdd:   1,
		CondMul:   1,
		Pack:      0,
		PM:        false,
		Unpack:    unpack,
		Sig:       encoding.SigLoad,
	}
	a.appendWord(word.Encode())
	return nil
}

// LdiScalar loads an integer or float scalar into dstA (and dstB, if both
// destinations are given distinct registers).
func (a *Assembler) LdiScalar(dstA, dstB regs.Register, value imm.Scalar) error {
	payload, unpack := imm.LoadScalar(value)
	return a.emitLoadWord(dstA, dstB, payload, unpack)
}

// Ldi is LdiScalar with dstB defaulted to the null register.
func (a *Assembler) Ldi(dst regs.Register, value imm.Scalar) error {
	return a.LdiScalar(dst, regs.NullReg(), value)
}

// LdiVector loads up to 16 per-lane small integers into dstA and dstB.
func (a *Assembler) LdiVector(dstA, dstB regs.Register, lanes []int32) error {
	payload, unpack, err := imm.LoadVector(lanes)
	if err != nil {
		return err
	}
	return a.emitLoadWord(dstA, dstB, payload, unpack)
}
