// Package operand implements the read- and write-operand placement solvers:
// the part of the assembler that decides which input-mux selector, register
// file address, and pack/unpack/pm bits a given set of operands resolves to.
package operand

import (
	"fmt"

	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

// Mux values 0-5 select an accumulator directly; 6 and 7 mean "read through
// raddr_a" and "read through raddr_b" respectively.
const (
	MuxRaddrA uint8 = 6
	MuxRaddrB uint8 = 7
)

// Read is one of the four read operands an ALU word can host: a register
// (possibly an accumulator, possibly carrying an unpack) or a small
// immediate code sharing the raddr_b slot.
type Read struct {
	reg         regs.Register
	isImmediate bool
	immCode     uint8
}

// FromRegister builds a Read operand from a register reference.
func FromRegister(r regs.Register) Read { return Read{reg: r} }

// FromImmediate builds a Read operand carrying a small-immediate code.
func FromImmediate(code uint8) Read { return Read{isImmediate: true, immCode: code} }

// DefaultRead is the solver's default operand, accumulator r0, used to fill
// any of the four read slots a caller leaves unspecified.
func DefaultRead() Read { return FromRegister(regs.R0()) }

// AsRegister returns the operand's register and true, or a zero Register and
// false if the operand is a small immediate rather than a register.
func (r Read) AsRegister() (regs.Register, bool) {
	if r.isImmediate {
		return regs.Register{}, false
	}
	return r.reg, true
}

// ReadPlacement is the solver's output: one mux selector per logical
// operand, the two register-file read addresses, whether raddr_b holds a
// small immediate, and the surviving unpack/pm state.
type ReadPlacement struct {
	MuxAddA, MuxAddB, MuxMulA, MuxMulB uint8
	RaddrA, RaddrB                     uint8
	Immediate                          bool
	HasUnpack                          bool
	Unpack                             uint8
	PM                                 bool
}

// LocateReadOperands assigns mux selectors and register-file addresses to
// the four logical read operands of an ALU word, per the placement rules:
// reconcile unpack/pm modifiers, assign accumulators directly, commit
// file-constrained operands, then place the remaining ambiguous operands
// into whichever file has room.
func LocateReadOperands(addA, addB, mulA, mulB Read) (ReadPlacement, error) {
	ops := [4]Read{addA, addB, mulA, mulB}
	muxes := [4]uint8{}

	unpackCode := int8(-1)
	pm := false
	for i, op := range ops {
		if op.isImmediate {
			continue
		}
		r := op.reg
		if r.HasPack() {
			return ReadPlacement{}, qpuerr.New(qpuerr.NotAReadOperand, "locate_read_operands", fmt.Sprintf("operand %d (%s) carries a pack and cannot be read", i, r.Name))
		}
		if r.HasUnpack() {
			code := uint8(r.UnpackCode)
			if unpackCode >= 0 {
				if uint8(unpackCode) != code {
					return ReadPlacement{}, qpuerr.New(qpuerr.MultipleUnpacking, "locate_read_operands", fmt.Sprintf("operand %d (%s) unpack code %d conflicts with %d", i, r.Name, code, unpackCode))
				}
				if r.PM != pm {
					return ReadPlacement{}, qpuerr.New(qpuerr.MultipleUnpacking, "locate_read_operands", fmt.Sprintf("operand %d (%s) pm %v conflicts with earlier unpacking operand", i, r.Name, r.PM))
				}
			} else {
				unpackCode = int8(code)
				pm = r.PM
			}
		}
	}

	var raddrA, raddrB uint8 = regs.Null, regs.Null
	raddrASet, raddrBSet := false, false
	raddrBIsImmediate := false

	for i, op := range ops {
		if op.isImmediate {
			continue
		}
		r := op.reg
		if r.IsAccumulator() {
			muxes[i] = r.AccumIndex()
		}
	}

	commitA := func(i int, addr uint8) error {
		if raddrASet && raddrA != addr {
			return qpuerr.New(qpuerr.TooManyRegfileA, "locate_read_operands", fmt.Sprintf("operand %d needs regfile A address %d, already committed to %d", i, addr, raddrA))
		}
		raddrA, raddrASet = addr, true
		muxes[i] = MuxRaddrA
		return nil
	}
	commitB := func(i int, addr uint8, isImmediate bool) error {
		if raddrBSet {
			if raddrBIsImmediate != isImmediate {
				return qpuerr.New(qpuerr.TooManyRegfileB, "locate_read_operands", fmt.Sprintf("operand %d mixes an immediate and a register on raddr_b", i))
			}
			if raddrB != addr {
				return qpuerr.New(qpuerr.TooManyRegfileB, "locate_read_operands", fmt.Sprintf("operand %d needs regfile B address %d, already committed to %d", i, addr, raddrB))
			}
		}
		raddrB, raddrBSet, raddrBIsImmediate = addr, true, isImmediate
		muxes[i] = MuxRaddrB
		return nil
	}

	var ambiguous []int
	for i, op := range ops {
		if op.isImmediate {
			if err := commitB(i, op.immCode, true); err != nil {
				return ReadPlacement{}, err
			}
			continue
		}
		r := op.reg
		if r.IsAccumulator() {
			continue
		}
		canA, canB := r.Caps.CanReadA(), r.Caps.CanReadB()
		switch {
		case canA && !canB:
			if err := commitA(i, r.Addr); err != nil {
				return ReadPlacement{}, err
			}
		case canB && !canA:
			if err := commitB(i, r.Addr, false); err != nil {
				return ReadPlacement{}, err
			}
		case canA && canB:
			ambiguous = append(ambiguous, i)
		default:
			return ReadPlacement{}, qpuerr.New(qpuerr.NotAReadOperand, "locate_read_operands", fmt.Sprintf("operand %d (%s) cannot be read from either register file", i, r.Name))
		}
	}

	for _, i := range ambiguous {
		r := ops[i].reg
		switch {
		case !raddrASet:
			if err := commitA(i, r.Addr); err != nil {
				return ReadPlacement{}, err
			}
		case !raddrBSet:
			if err := commitB(i, r.Addr, false); err != nil {
				return ReadPlacement{}, err
			}
		case raddrA == r.Addr:
			muxes[i] = MuxRaddrA
		case raddrB == r.Addr && !raddrBIsImmediate:
			muxes[i] = MuxRaddrB
		default:
			return ReadPlacement{}, qpuerr.New(qpuerr.TooManyRegfileA, "locate_read_operands", fmt.Sprintf("operand %d (%s) fits neither committed file", i, r.Name))
		}
	}

	out := ReadPlacement{
		MuxAddA: muxes[0], MuxAddB: muxes[1], MuxMulA: muxes[2], MuxMulB: muxes[3],
		RaddrA: raddrA, RaddrB: raddrB, Immediate: raddrBIsImmediate, PM: pm,
	}
	if unpackCode >= 0 {
		out.HasUnpack = true
		out.Unpack = uint8(unpackCode)
	}
	return out, nil
}
