package encoding

// Signal is the 4-bit sig field: it both discriminates the word layout and
// requests a hardware-level event (thread switch, scoreboard wait, thread
// end).
type Signal uint8

const (
	// SigNoSignal is the default signal for an ordinary ALU instruction.
	SigNoSignal Signal = 1
	// SigThreadEnd marks the final nop of a program.
	SigThreadEnd Signal = 3
	// SigAluSmallImm marks an ALU word whose raddr_b holds a small
	// immediate or a rotate amount rather than a register address.
	SigAluSmallImm Signal = 13
	// SigLoad marks a load-immediate or semaphore word.
	SigLoad Signal = 14
	// SigBranch marks a branch word.
	SigBranch Signal = 15
)

var signalNames = map[Signal]string{
	SigNoSignal:    "no_signal",
	SigThreadEnd:   "thread_end",
	SigAluSmallImm: "alu_small_imm",
	SigLoad:        "load",
	SigBranch:      "branch",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "signal"
}
