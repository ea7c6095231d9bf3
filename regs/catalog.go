package regs

import "fmt"

// Catalog is the static table of every named QPU register, keyed by name.
// It is built once at package init and never mutated afterwards; callers
// derive packed/unpacked values from a Catalog lookup rather than editing it
// in place.
var Catalog = buildCatalog()

func buildCatalog() map[string]Register {
	c := make(map[string]Register, 96)

	for i := uint8(0); i < 32; i++ {
		c[fmt.Sprintf("ra%d", i)] = plain(fmt.Sprintf("ra%d", i), i, AReadable|AWritable)
		c[fmt.Sprintf("rb%d", i)] = plain(fmt.Sprintf("rb%d", i), i, BReadable|BWritable)
	}

	for i := uint8(0); i < 6; i++ {
		name := fmt.Sprintf("r%d", i)
		c[name] = accumulator(name, i)
	}

	c["host_interrupt"] = plain("host_interrupt", 38, AWritable|BWritable)
	c["null"] = plain("null", Null, AReadable|BReadable|AWritable|BWritable)

	special := []struct {
		name string
		addr uint8
		caps Capability
	}{
		{"uniform_read", 40, AReadable | BReadable},
		{"uniforms_address", 41, AWritable | BWritable},
		{"varying_read", 42, AReadable | BReadable},
		{"xy_pixel_coord", 43, AReadable | BReadable},
		{"ms_mask", 44, AReadable | BReadable},
		{"rev_flag", 45, AReadable | BReadable},
		{"tlb_stencil_setup", 46, AWritable | BWritable},
		{"tlb_z", 47, AWritable | BWritable},
		{"tlb_color_ms", 48, AWritable | BWritable},
		{"tlb_color_all", 49, AWritable | BWritable},
		{"tlb_alpha_mask", 50, AWritable | BWritable},
		{"vpm", 51, AReadable | BReadable | AWritable | BWritable},
		{"vpm_ld_busy", 52, AReadable | BReadable},
		{"vpm_st_busy", 53, AReadable | BReadable},
		{"vpm_setup_read", 54, AWritable | BWritable},
		{"vpm_setup_write", 55, AWritable | BWritable},
		{"vpm_addr_load", 56, AWritable | BWritable},
		{"vpm_addr_store", 57, AWritable | BWritable},
		{"mutex", 58, AReadable | BReadable | AWritable | BWritable},
		{"sfu_recip", 59, AWritable | BWritable},
		{"sfu_recipsqrt", 60, AWritable | BWritable},
		{"sfu_exp", 61, AWritable | BWritable},
		{"sfu_log", 62, AWritable | BWritable},
		{"tmu0_s", 63, AWritable | BWritable},
		{"tmu0_t", 64, AWritable | BWritable},
		{"tmu0_r", 65, AWritable | BWritable},
		{"tmu0_b", 66, AWritable | BWritable},
		{"tmu1_s", 67, AWritable | BWritable},
		{"tmu1_t", 68, AWritable | BWritable},
		{"tmu1_r", 69, AWritable | BWritable},
		{"tmu1_b", 70, AWritable | BWritable},
		{"tmu_noswap", 71, AWritable | BWritable},
		{"elem_num", 72, AReadable | BReadable},
		{"qpu_number", 73, AReadable | BReadable},
	}
	for _, s := range special {
		c[s.name] = plain(s.name, s.addr, s.caps)
	}

	return c
}

// Lookup returns the named catalog register. ok is false for unknown names.
func Lookup(name string) (Register, bool) {
	r, ok := Catalog[name]
	return r, ok
}

// MustLookup is Lookup that panics on an unknown name; it is meant for
// internal use with names the package itself controls (catalog entries and
// generated accumulator/regfile names), never for user-supplied input.
func MustLookup(name string) Register {
	r, ok := Lookup(name)
	if !ok {
		panic("regs: unknown register " + name)
	}
	return r
}

// R0..R5 are convenience accessors for the accumulators, used as the
// default operand throughout the assembler package.
func R0() Register { return MustLookup("r0") }
func R1() Register { return MustLookup("r1") }
func R2() Register { return MustLookup("r2") }
func R3() Register { return MustLookup("r3") }
func R4() Register { return MustLookup("r4") }
func R5() Register { return MustLookup("r5") }

// NullReg returns the null (sink/source) register.
func NullReg() Register { return MustLookup("null") }
