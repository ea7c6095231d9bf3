// Package asm is the front-end-facing assembler core: instruction buffer,
// program counter, label map, backpatch list, and the mnemonic-to-encoding
// bindings built on top of the operand solver and the encoding package.
package asm

import (
	"fmt"
	"log"

	"github.com/S-YOU/qpu-assembler/config"
	"github.com/S-YOU/qpu-assembler/qpuerr"
)

type pendingBranch struct {
	emitPC uint32
	label  string
}

// Assembler holds the state of one in-progress program: the emitted word
// buffer, the byte program counter, the label table, and the list of
// branches awaiting backpatch. It is single-threaded and synchronous; there
// is no concurrent access support and none is needed.
type Assembler struct {
	words     []uint64
	pc        uint32
	labels    map[string]uint32
	pending   []pendingBranch
	finalized bool

	cfg    *config.Config
	logger *log.Logger

	warnings      []string
	warnedNearCap bool
}

// New returns an empty assembler configured with defaults, logging to
// log.Default().
func New() *Assembler {
	return NewWithConfig(config.DefaultConfig(), nil)
}

// NewWithConfig returns an empty assembler using cfg for capacity and
// diagnostic settings. A nil logger defaults to log.Default().
func NewWithConfig(cfg *config.Config, logger *log.Logger) *Assembler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{labels: make(map[string]uint32), cfg: cfg, logger: logger}
}

// PC returns the current byte program counter, i.e. 8 times the number of
// words emitted so far.
func (a *Assembler) PC() uint32 { return a.pc }

// Len returns the number of words emitted so far.
func (a *Assembler) Len() int { return len(a.words) }

// Warnings returns every non-fatal diagnostic accumulated so far (capacity
// near-limit notices, unused labels found at Finalize).
func (a *Assembler) Warnings() []string { return a.warnings }

// HasWarnings reports whether any warning was collected.
func (a *Assembler) HasWarnings() bool { return len(a.warnings) > 0 }

func (a *Assembler) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.warnings = append(a.warnings, msg)
	if a.cfg.Diagnostics.Verbose {
		a.logger.Println(msg)
	}
}

func (a *Assembler) checkOpen(op string) error {
	if a.finalized {
		return qpuerr.New(qpuerr.AlreadyFinalized, op, "assembler already finalized")
	}
	if uint64(len(a.words)) >= a.cfg.Emit.MaxInstructions {
		return qpuerr.New(qpuerr.CapacityExceeded, op, fmt.Sprintf("max_instructions capacity of %d reached", a.cfg.Emit.MaxInstructions))
	}
	limit := a.cfg.Emit.MaxInstructions
	pct := a.cfg.Emit.WarnNearLimitPct
	if !a.warnedNearCap && limit > 0 && pct > 0 && uint64(len(a.words))*100 >= limit*uint64(pct) {
		a.warnedNearCap = true
		a.warn("emit buffer at %d/%d words, past the %d%% warning threshold", len(a.words), limit, pct)
	}
	return nil
}

// appendWord appends word to the buffer and advances the PC, returning the
// byte PC the word was emitted at.
func (a *Assembler) appendWord(word uint64) uint32 {
	pc := a.pc
	a.words = append(a.words, word)
	a.pc += 8
	return pc
}

// Label records name as resolving to the current PC. A name defined twice
// fails with DuplicateLabel.
func (a *Assembler) Label(name string) error {
	if a.finalized {
		return qpuerr.New(qpuerr.AlreadyFinalized, "label", "assembler already finalized")
	}
	if _, exists := a.labels[name]; exists {
		return qpuerr.New(qpuerr.DuplicateLabel, "label", fmt.Sprintf("label %q already defined", name))
	}
	a.labels[name] = a.pc
	return nil
}

// branchDelayBytes is the pipeline's three-delay-slot offset added to every
// branch's PC-relative displacement: 4 words (32 bytes), covering the
// branch instruction itself plus the three slots that execute regardless.
const branchDelayBytes = 4 * 8

// Finalize drains the pending branch list, rewriting each branch word's
// immediate field with its resolved displacement, then concatenates the
// word buffer into a little-endian byte string. An unresolved label fails
// with UndefinedLabel. The assembler is consumed after this call; further
// emit calls fail.
func (a *Assembler) Finalize() ([]byte, error) {
	if a.finalized {
		return nil, qpuerr.New(qpuerr.AlreadyFinalized, "finalize", "assembler already finalized")
	}

	referenced := make(map[string]bool, len(a.pending))
	for _, p := range a.pending {
		target, ok := a.labels[p.label]
		if !ok {
			return nil, qpuerr.New(qpuerr.UndefinedLabel, "finalize", fmt.Sprintf("label %q is never defined", p.label))
		}
		referenced[p.label] = true
		disp := int64(target) - int64(p.emitPC+branchDelayBytes)
		idx := p.emitPC / 8
		a.words[idx] = rewriteImmediate(a.words[idx], uint32(int32(disp)))
	}

	if a.cfg.Diagnostics.WarnUnusedLabels {
		for name := range a.labels {
			if !referenced[name] {
				a.warn("label %q is defined but never branched to", name)
			}
		}
	}

	a.pending = nil
	a.finalized = true

	out := make([]byte, 8*len(a.words))
	for i, w := range a.words {
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(w >> (8 * b))
		}
	}
	return out, nil
}
