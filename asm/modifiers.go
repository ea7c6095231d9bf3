package asm

import (
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/qpuerr"
)

// reconcilePM applies the modifier-consistency rule: when a read unpack and
// a write pack are both present their pm bits must agree; otherwise the
// surviving modifier's pm wins.
func reconcilePM(rp operand.ReadPlacement, wp operand.WritePlacement) (bool, error) {
	switch {
	case rp.HasUnpack && wp.HasPack:
		if rp.PM != wp.PM {
			return false, qpuerr.New(qpuerr.InvalidPackUnpackCombination, "reconcile_pm", "unpack pm and pack pm disagree")
		}
		return rp.PM, nil
	case rp.HasUnpack:
		return rp.PM, nil
	case wp.HasPack:
		return wp.PM, nil
	default:
		return false, nil
	}
}
