package regs

import (
	"fmt"

	"github.com/S-YOU/qpu-assembler/qpuerr"
)

// Null is the address of the sink/source register: reads as an unspecified
// value, writes are discarded. It is the default filler for an unused
// raddr_a or raddr_b slot.
const Null uint8 = 39

// Register is an immutable named QPU register. Deriving a packed or
// unpacked value never mutates the receiver; it returns a new Register with
// narrowed capabilities, matching the hardware rule that a modifier commits
// the register to one side of the A/B split.
type Register struct {
	Name       string
	Addr       uint8
	Caps       Capability
	PackCode   int8 // -1 means "no pack applied"
	UnpackCode int8 // -1 means "no unpack applied"
	PM         bool
	accum      bool
	accumIdx   uint8
	isR4       bool
}

// IsAccumulator reports whether r is one of r0..r5, addressed through the
// input mux rather than through a register-file read address.
func (r Register) IsAccumulator() bool { return r.accum }

// AccumIndex returns the mux index (0..5) of an accumulator register. It is
// only meaningful when IsAccumulator is true.
func (r Register) AccumIndex() uint8 { return r.accumIdx }

// IsR4 reports whether r is the mul-pipe/SFU result accumulator, the only
// register on which an unpack may make both A-read and B-read valid at once.
func (r Register) IsR4() bool { return r.isR4 }

// HasPack reports whether a pack modifier has been applied.
func (r Register) HasPack() bool { return r.PackCode >= 0 }

// HasUnpack reports whether an unpack modifier has been applied.
func (r Register) HasUnpack() bool { return r.UnpackCode >= 0 }

func (r Register) isLowAccumulator() bool {
	return r.accum && r.accumIdx <= 3
}

// Pack applies a non-mul pack code (used on the add-pipe destination). It
// requires A-write capability and narrows the register to the A-write path.
func (r Register) Pack(code uint8) (Register, error) {
	if code > 15 {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "pack", fmt.Sprintf("pack code %d out of range 0..15", code))
	}
	if r.isLowAccumulator() {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "pack", r.Name+" admits neither pack nor unpack")
	}
	if !r.Caps.CanWriteA() {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "pack", r.Name+" is not A-writable")
	}
	out := r
	out.PackCode = int8(code)
	out.PM = false
	out.Caps = r.Caps &^ BWritable
	return out, nil
}

// PackMul applies a mul-pipe pack code (the "mul" suffix forms). It requires
// B-write capability and sets pm, narrowing the register to the B-write path.
func (r Register) PackMul(code uint8) (Register, error) {
	if code > 15 {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "packmul", fmt.Sprintf("pack code %d out of range 0..15", code))
	}
	if r.isLowAccumulator() {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "packmul", r.Name+" admits neither pack nor unpack")
	}
	if !r.Caps.CanWriteB() {
		return Register{}, qpuerr.New(qpuerr.NotAWriteOperand, "packmul", r.Name+" is not B-writable")
	}
	out := r
	out.PackCode = int8(code)
	out.PM = true
	out.Caps = r.Caps &^ AWritable
	return out, nil
}

// Unpack applies an unpack code to a read operand. R4 is special: unpacking
// it makes both A-read and B-read valid and sets pm. Otherwise the register
// must already be A-readable, and the result narrows to A-read only.
func (r Register) Unpack(code uint8) (Register, error) {
	if code > 7 {
		return Register{}, qpuerr.New(qpuerr.NotAReadOperand, "unpack", fmt.Sprintf("unpack code %d out of range 0..7", code))
	}
	if r.isLowAccumulator() {
		return Register{}, qpuerr.New(qpuerr.NotAReadOperand, "unpack", r.Name+" admits neither pack nor unpack")
	}
	if r.isR4 {
		out := r
		out.UnpackCode = int8(code)
		out.PM = true
		out.Caps = AReadable | BReadable
		return out, nil
	}
	if !r.Caps.CanReadA() {
		return Register{}, qpuerr.New(qpuerr.NotAReadOperand, "unpack", r.Name+" is not A-readable")
	}
	out := r
	out.UnpackCode = int8(code)
	out.PM = false
	out.Caps = (r.Caps &^ BReadable) | AReadable
	return out, nil
}

func accumulator(name string, idx uint8) Register {
	return Register{
		Name:       name,
		Addr:       32 + idx,
		Caps:       AWritable | BWritable,
		PackCode:   -1,
		UnpackCode: -1,
		accum:      true,
		accumIdx:   idx,
		isR4:       idx == 4,
	}
}

func plain(name string, addr uint8, caps Capability) Register {
	return Register{Name: name, Addr: addr, Caps: caps, PackCode: -1, UnpackCode: -1}
}
