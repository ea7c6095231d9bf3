package asm

import (
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

func rewriteImmediate(word uint64, imm uint32) uint64 {
	return encoding.SetImmediate32(word, imm)
}

// BranchTarget is either a symbolic label (resolved at Finalize, relative)
// or an absolute integer displacement supplied directly by the caller.
type BranchTarget struct {
	label    string
	isLabel  bool
	absolute int32
}

// Label builds a branch target that resolves against a label defined with
// Assembler.Label, deferred until Finalize.
func Label(name string) BranchTarget { return BranchTarget{label: name, isLabel: true} }

// Absolute builds a branch target carrying a literal displacement.
func Absolute(displacement int32) BranchTarget { return BranchTarget{absolute: displacement} }

// Branch emits a branch word. reg, if non-nil, must be A-readable and
// supplies the branch's register input. link, if non-nil, is the branch's
// write destination, placed through the write-operand solver; neither pack
// nor pm may be applied to it.
func (a *Assembler) Branch(cond BranchCond, target BranchTarget, reg *regs.Register, link *regs.Register) error {
	if err := a.checkOpen("branch"); err != nil {
		return err
	}

	var raddrA uint8 = regs.Null
	var hasReg bool
	if reg != nil {
		if !reg.Caps.CanReadA() {
			return qpuerr.New(qpuerr.NotAReadOperand, "branch", reg.Name+" is not A-readable")
		}
		raddrA = reg.Addr
		hasReg = true
	}

	linkDst := regs.NullReg()
	if link != nil {
		linkDst = *link
	}
	if linkDst.HasPack() {
		return qpuerr.New(qpuerr.NotAWriteOperand, "branch", "branch link destination may not carry a pack")
	}
	wp, err := operand.LocateWriteOperands(linkDst, regs.NullReg())
	if err != nil {
		return err
	}
	if wp.PM {
		return qpuerr.New(qpuerr.NotAWriteOperand, "branch", "branch link destination may not carry pm")
	}

	word := encoding.BranchWord{
		WaddrAdd: wp.WaddrAdd,
		WaddrMul: wp.WaddrMul,
		WS:       wp.WS,
		RaddrA:   raddrA,
		Reg:      hasReg,
		CondBr:   uint8(cond),
		Sig:      encoding.SigBranch,
	}

	if target.isLabel {
		word.Rel = true
		word.Immediate = 0
		emitPC := a.appendWord(word.Encode())
		a.pending = append(a.pending, pendingBranch{emitPC: emitPC, label: target.label})
		return nil
	}

	word.Rel = false
	word.Immediate = uint32(target.absolute)
	a.appendWord(word.Encode())
	return nil
}

// Jmp is a convenience for an unconditional branch to a label.
func (a *Assembler) Jmp(name string) error {
	return a.Branch(CondJMP, Label(name), nil, nil)
}
