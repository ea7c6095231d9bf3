package asm

import (
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/imm"
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/regs"
)

// Mov is bor(dst, src, 0) at the bit level: the canonical register-move
// pseudo-instruction.
func (a *Assembler) Mov(dst, src regs.Register) error {
	_, err := a.EmitAdd(AddBOr, dst, operand.FromRegister(src), operand.FromImmediate(0), encoding.SigNoSignal, true)
	return err
}

// Read discards src into the null sink, a pseudo-instruction used purely
// for its side effects (e.g. draining a FIFO register).
func (a *Assembler) Read(src regs.Register) error {
	return a.Mov(regs.NullReg(), src)
}

// Write stores the null register's read value into dst, used to kick a
// register whose write triggers a hardware action (e.g. host_interrupt).
func (a *Assembler) Write(dst regs.Register) error {
	return a.Mov(dst, regs.NullReg())
}

// Nop emits a plain add-pipe/mul-pipe no-op carrying sig.
func (a *Assembler) Nop(sig encoding.Signal) error {
	_, err := a.EmitAdd(AddNop, regs.NullReg(), operand.DefaultRead(), operand.DefaultRead(), sig, false)
	return err
}

// Exit emits the program-termination sequence: a write to host_interrupt,
// a thread-end nop, and two further nops providing the pipeline drain.
func (a *Assembler) Exit() error {
	if err := a.Write(regs.MustLookup("host_interrupt")); err != nil {
		return err
	}
	if err := a.Nop(encoding.SigThreadEnd); err != nil {
		return err
	}
	if err := a.Nop(encoding.SigNoSignal); err != nil {
		return err
	}
	return a.Nop(encoding.SigNoSignal)
}

// VPMReadSetup describes a setup_vpm_read configuration.
type VPMReadSetup struct {
	Size       uint8 // 0=8bit,1=16bit,2=32bit
	Laned      bool
	Horizontal bool
	Stride     uint16
	NRows      uint8
	Y, X, B    uint8
}

// vpmSetupWord packs the common setup_vpm_read/write fields into a 32-bit
// configuration word. The exact field widths are an assembler-level
// convention (this layer only issues the word via ldi; the receiving
// hardware register's bit contract is outside this package's scope), sized
// generously against the textual description so every listed field has
// room: size:2, laned:1, horizontal:1, nrows:4(read-only), stride:8,
// Y:6, X:4, B:2, with bit 31 reserved as the DMA-mode marker used by the
// DMA setup words below.
func vpmSetupWord(size uint8, laned, horizontal bool, stride uint16, nrows, y, x, b uint8) uint32 {
	var w uint32
	w |= uint32(size&0x3) << 0
	if laned {
		w |= 1 << 2
	}
	if horizontal {
		w |= 1 << 3
	}
	w |= uint32(nrows&0xF) << 4
	w |= uint32(stride&0xFF) << 8
	w |= uint32(b&0x3) << 16
	w |= uint32(x&0xF) << 18
	w |= uint32(y&0x3F) << 22
	return w
}

// SetupVPMRead issues a setup_vpm_read configuration word to vpm_setup_read.
func (a *Assembler) SetupVPMRead(s VPMReadSetup) error {
	word := vpmSetupWord(s.Size, s.Laned, s.Horizontal, s.Stride, s.NRows, s.Y, s.X, s.B)
	dst := regs.MustLookup("vpm_setup_read")
	return a.LdiScalar(dst, regs.NullReg(), imm.Int(int64(word)))
}

// VPMWriteSetup describes a setup_vpm_write configuration; it has no nrows
// field (the write side streams until the caller stops writing).
type VPMWriteSetup struct {
	Size       uint8
	Laned      bool
	Horizontal bool
	Stride     uint16
	Y, X, B    uint8
}

// SetupVPMWrite issues a setup_vpm_write configuration word to
// vpm_setup_write.
func (a *Assembler) SetupVPMWrite(s VPMWriteSetup) error {
	word := vpmSetupWord(s.Size, s.Laned, s.Horizontal, s.Stride, 0, s.Y, s.X, s.B)
	dst := regs.MustLookup("vpm_setup_write")
	return a.LdiScalar(dst, regs.NullReg(), imm.Int(int64(word)))
}

const dmaModeMarker = uint32(1) << 31

// DMAStoreSetup describes a setup_dma_store configuration.
type DMAStoreSetup struct {
	NRows, NCols  uint8
	Horizontal    bool
	VPMAddr       uint16
	ModeWidth     uint8 // memory access width: 0=8bit,1=16bit,2=32bit
}

// SetupDMAStore issues a setup_dma_store configuration word to
// vpm_addr_store, setting the DMA-mode marker bit.
func (a *Assembler) SetupDMAStore(s DMAStoreSetup) error {
	var w uint32 = dmaModeMarker
	w |= uint32(s.NRows&0x7F) << 0
	w |= uint32(s.NCols&0x7F) << 7
	if s.Horizontal {
		w |= 1 << 14
	}
	w |= uint32(s.VPMAddr&0x7FF) << 15
	w |= uint32(s.ModeWidth&0x3) << 26
	dst := regs.MustLookup("vpm_addr_store")
	return a.LdiScalar(dst, regs.NullReg(), imm.Int(int64(w)))
}

// DMALoadSetup describes a setup_dma_load configuration, which additionally
// carries the memory-side row/column pitch.
type DMALoadSetup struct {
	NRows, NCols uint8
	Horizontal   bool
	VPMAddr      uint16
	ModeWidth    uint8
	MPitch       uint8
	VPitch       uint8
}

// SetupDMALoad issues a setup_dma_load configuration word to vpm_addr_load,
// setting the DMA-mode marker bit.
func (a *Assembler) SetupDMALoad(s DMALoadSetup) error {
	var w uint32 = dmaModeMarker
	w |= uint32(s.NRows&0xF) << 0
	w |= uint32(s.NCols&0xF) << 4
	if s.Horizontal {
		w |= 1 << 8
	}
	w |= uint32(s.VPMAddr&0x7FF) << 9
	w |= uint32(s.ModeWidth&0x3) << 20
	w |= uint32(s.MPitch&0xF) << 22
	w |= uint32(s.VPitch&0xF) << 26
	dst := regs.MustLookup("vpm_addr_load")
	return a.LdiScalar(dst, regs.NullReg(), imm.Int(int64(w)))
}
