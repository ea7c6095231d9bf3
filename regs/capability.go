package regs

// Capability is a 4-bit mask of which register-file paths a register may
// use. Most registers live in exactly one file; a handful of special
// registers (uniforms, vpm, mutex, the null sink) are readable or writable
// from both.
type Capability uint8

const (
	// AReadable means the register can be read through raddr_a.
	AReadable Capability = 1 << iota
	// BReadable means the register can be read through raddr_b.
	BReadable
	// AWritable means the register can be written through waddr_a (ws=0 side).
	AWritable
	// BWritable means the register can be written through waddr_b (ws=1 side).
	BWritable
)

// Has reports whether all bits of want are set.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Any reports whether c shares any bit with want.
func (c Capability) Any(want Capability) bool { return c&want != 0 }

// CanReadA reports A-file readability.
func (c Capability) CanReadA() bool { return c.Any(AReadable) }

// CanReadB reports B-file readability.
func (c Capability) CanReadB() bool { return c.Any(BReadable) }

// CanWriteA reports A-file writability.
func (c Capability) CanWriteA() bool { return c.Any(AWritable) }

// CanWriteB reports B-file writability.
func (c Capability) CanWriteB() bool { return c.Any(BWritable) }
