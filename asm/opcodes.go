package asm

import (
	"fmt"
	"sort"

	"github.com/S-YOU/qpu-assembler/qpuerr"
)

func sortedMnemonics[T any](table map[string]T) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddOp is an add-pipe opcode. The gap indices (9-11, 25-29) have no
// mnemonic and are never bound.
type AddOp uint8

const (
	AddNop AddOp = iota
	AddFAdd
	AddFSub
	AddFMin
	AddFMax
	AddFMinAbs
	AddFMaxAbs
	AddFToI
	AddIToF
	_addGap0
	_addGap1
	_addGap2
	AddIAdd
	AddISub
	AddShr
	AddAsr
	AddRor
	AddShl
	AddIMin
	AddIMax
	AddBAnd
	AddBOr
	AddBXor
	AddBNot
	AddClz
	_addGap3
	_addGap4
	_addGap5
	_addGap6
	_addGap7
	AddV8Adds
	AddV8Subs
)

// addMnemonics binds every issuable add-pipe opcode to its mnemonic. The gap
// indices are simply absent: they are left out when this table is built, so
// no name resolves to them and LookupAddOp never returns one.
var addMnemonics = map[string]AddOp{
	"nop": AddNop, "fadd": AddFAdd, "fsub": AddFSub, "fmin": AddFMin,
	"fmax": AddFMax, "fminabs": AddFMinAbs, "fmaxabs": AddFMaxAbs,
	"ftoi": AddFToI, "itof": AddIToF,
	"iadd": AddIAdd, "isub": AddISub, "shr": AddShr, "asr": AddAsr,
	"ror": AddRor, "shl": AddShl, "imin": AddIMin, "imax": AddIMax,
	"band": AddBAnd, "bor": AddBOr, "bxor": AddBXor, "bnot": AddBNot,
	"clz": AddClz, "v8adds": AddV8Adds, "v8subs": AddV8Subs,
}

// LookupAddOp resolves an add-pipe mnemonic. An unknown name — including
// every gap index's absence of a name — is reported the same way.
func LookupAddOp(mnemonic string) (AddOp, error) {
	op, ok := addMnemonics[mnemonic]
	if !ok {
		return 0, qpuerr.New(qpuerr.UnknownMnemonic, "lookup_add_op", fmt.Sprintf("%q is not an add-pipe mnemonic", mnemonic))
	}
	return op, nil
}

// MulOp is a mul-pipe opcode.
type MulOp uint8

const (
	MulNop MulOp = iota
	MulFMul
	MulMul24
	MulV8MulD
	MulV8Min
	MulV8Max
	MulV8Adds
	MulV8Subs
)

var mulMnemonics = map[string]MulOp{
	"nop": MulNop, "fmul": MulFMul, "mul24": MulMul24, "v8muld": MulV8MulD,
	"v8min": MulV8Min, "v8max": MulV8Max, "v8adds": MulV8Adds, "v8subs": MulV8Subs,
}

// LookupMulOp resolves a mul-pipe mnemonic.
func LookupMulOp(mnemonic string) (MulOp, error) {
	op, ok := mulMnemonics[mnemonic]
	if !ok {
		return 0, qpuerr.New(qpuerr.UnknownMnemonic, "lookup_mul_op", fmt.Sprintf("%q is not a mul-pipe mnemonic", mnemonic))
	}
	return op, nil
}

// BranchCond is a branch condition code. Codes 12-14 are reserved and
// unused.
type BranchCond uint8

const (
	CondJZ BranchCond = iota
	CondJNZ
	CondJZAny
	CondJNZAny
	CondJN
	CondJNN
	CondJNAny
	CondJNNAny
	CondJC
	CondJNC
	CondJCAny
	CondJNCAny
	_branchGap0
	_branchGap1
	_branchGap2
	CondJMP
)

var branchMnemonics = map[string]BranchCond{
	"jz": CondJZ, "jnz": CondJNZ, "jz_any": CondJZAny, "jnz_any": CondJNZAny,
	"jn": CondJN, "jnn": CondJNN, "jn_any": CondJNAny, "jnn_any": CondJNNAny,
	"jc": CondJC, "jnc": CondJNC, "jc_any": CondJCAny, "jnc_any": CondJNCAny,
	"jmp": CondJMP,
}

// LookupBranchCond resolves a branch-condition mnemonic.
func LookupBranchCond(mnemonic string) (BranchCond, error) {
	cond, ok := branchMnemonics[mnemonic]
	if !ok {
		return 0, qpuerr.New(qpuerr.UnknownMnemonic, "lookup_branch_cond", fmt.Sprintf("%q is not a branch condition", mnemonic))
	}
	return cond, nil
}

// ListAddMnemonics returns every issuable add-pipe mnemonic, sorted.
func ListAddMnemonics() []string { return sortedMnemonics(addMnemonics) }

// ListMulMnemonics returns every issuable mul-pipe mnemonic, sorted.
func ListMulMnemonics() []string { return sortedMnemonics(mulMnemonics) }

// ListBranchMnemonics returns every branch condition mnemonic, sorted.
func ListBranchMnemonics() []string { return sortedMnemonics(branchMnemonics) }
