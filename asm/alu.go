package asm

import (
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/qpuerr"
	"github.com/S-YOU/qpu-assembler/regs"
)

// Rotate selects the mul-pipe rotate amount: either the dynamic amount held
// in r5, or a literal count in [1,15]. The zero value means "no rotate".
type Rotate struct {
	byR5   bool
	amount uint8
}

// NoRotate is the zero Rotate: the mul op is not a rotate.
func NoRotate() Rotate { return Rotate{} }

// RotateByR5 rotates by the dynamic amount held in accumulator r5.
func RotateByR5() Rotate { return Rotate{byR5: true} }

// RotateBy rotates by a literal amount in [1,15].
func RotateBy(amount uint8) Rotate { return Rotate{amount: amount} }

func (r Rotate) present() bool { return r.byR5 || r.amount != 0 }

// MulBinder is returned by EmitAdd. Calling Emit attaches a mul-pipe op to
// the word just emitted, rewriting it in place without advancing the PC; if
// Emit is never called the word stands as an add-only instruction with an
// implicit mul-pipe nop.
type MulBinder struct {
	asm   *Assembler
	index int

	addOp      AddOp
	addDst     regs.Register
	addA, addB operand.Read
	sig        encoding.Signal
	sf         bool
}

// EmitAdd records an add-pipe instruction and emits the word that will hold
// it, with the mul pipe defaulted to nop. The returned MulBinder lets a
// following mul mnemonic attach to and rewrite this same word.
func (a *Assembler) EmitAdd(op AddOp, dst regs.Register, opA, opB operand.Read, sig encoding.Signal, setFlags bool) (*MulBinder, error) {
	if err := a.checkOpen("emit_add"); err != nil {
		return nil, err
	}

	mb := &MulBinder{asm: a, addOp: op, addDst: dst, addA: opA, addB: opB, sig: sig, sf: setFlags}
	word, err := mb.build(MulNop, regs.NullReg(), operand.DefaultRead(), operand.DefaultRead(), NoRotate())
	if err != nil {
		return nil, err
	}
	mb.index = len(a.words)
	a.appendWord(word)
	return mb, nil
}

// Emit attaches a mul-pipe op to the preceding add-pipe word, recomputing
// the full operand placement across all four reads and both writes and
// overwriting that word in place.
func (mb *MulBinder) Emit(op MulOp, dst regs.Register, opA, opB operand.Read, rotate Rotate) error {
	if mb.asm.finalized {
		return qpuerr.New(qpuerr.AlreadyFinalized, "mul_binder_emit", "assembler already finalized")
	}
	word, err := mb.build(op, dst, opA, opB, rotate)
	if err != nil {
		return err
	}
	mb.asm.words[mb.index] = word
	return nil
}

func (mb *MulBinder) build(mulOp MulOp, mulDst regs.Register, mulA, mulB operand.Read, rotate Rotate) (uint64, error) {
	rp, err := operand.LocateReadOperands(mb.addA, mb.addB, mulA, mulB)
	if err != nil {
		return 0, err
	}

	if rotate.present() {
		if rp.Immediate {
			return 0, qpuerr.New(qpuerr.SignalConflictsWithImmediate, "alu_emit", "rotate cannot coexist with a small immediate")
		}
		ra, ok := mulA.AsRegister()
		if !ok || !ra.IsAccumulator() || ra.AccumIndex() > 2 {
			return 0, qpuerr.New(qpuerr.RotateOperandRestriction, "alu_emit", "rotate requires both mul operands to be accumulators r0..r2")
		}
		rb, ok := mulB.AsRegister()
		if !ok || !rb.IsAccumulator() || rb.AccumIndex() > 2 {
			return 0, qpuerr.New(qpuerr.RotateOperandRestriction, "alu_emit", "rotate requires both mul operands to be accumulators r0..r2")
		}
		if !rotate.byR5 && (rotate.amount < 1 || rotate.amount > 15) {
			return 0, qpuerr.New(qpuerr.RotateOperandRestriction, "alu_emit", "rotate amount must be in [1,15]")
		}
		if mb.sig != encoding.SigNoSignal {
			return 0, qpuerr.New(qpuerr.SignalConflictsWithImmediate, "alu_emit", "rotate forces signal alu_small_imm")
		}
		if rotate.byR5 {
			rp.RaddrB = 48
		} else {
			rp.RaddrB = 48 + rotate.amount
		}
	} else if rp.Immediate && mb.sig != encoding.SigNoSignal {
		return 0, qpuerr.New(qpuerr.SignalConflictsWithImmediate, "alu_emit", "a non-default signal cannot accompany a small immediate")
	}

	wp, err := operand.LocateWriteOperands(mb.addDst, mulDst)
	if err != nil {
		return 0, err
	}

	pm, err := reconcilePM(rp, wp)
	if err != nil {
		return 0, err
	}

	sig := mb.sig
	if rotate.present() || rp.Immediate {
		sig = encoding.SigAluSmallImm
	}

	sf := mb.sf
	if mb.addOp == AddNop {
		sf = false
	}

	word := encoding.ALUWord{
		AddA: rp.MuxAddA, AddB: rp.MuxAddB, MulA: rp.MuxMulA, MulB: rp.MuxMulB,
		RaddrA: rp.RaddrA, RaddrB: rp.RaddrB,
		OpAdd: uint8(mb.addOp), OpMul: uint8(mulOp),
		WaddrAdd: wp.WaddrAdd, WaddrMul: wp.WaddrMul, WS: wp.WS,
		SF: sf, CondAdd: 1, CondMul: 1,
		Pack: wp.Pack, PM: pm, Unpack: rp.Unpack,
		Sig: sig,
	}
	return word.Encode(), nil
}
