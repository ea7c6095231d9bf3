package asm

import (
	"fmt"

	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/qpuerr"
)

// semaphoreUnpack is the fixed unpack value that marks a Semaphore-layout
// word sharing sig=14 with a plain load-immediate word.
const semaphoreUnpack = 4

func (a *Assembler) emitSemaphore(id uint8, up bool) error {
	if err := a.checkOpen("sema"); err != nil {
		return err
	}
	if id > 15 {
		return qpuerr.New(qpuerr.BadSemaphoreId, "sema", fmt.Sprintf("semaphore id %d out of range [0,15]", id))
	}
	word := encoding.SemaphoreWord{
		Semaphore: id,
		SA:        up,
		WaddrAdd:  39,
		WaddrMul:  39,
		CondAdd:   1,
		CondMul:   1,
		Unpack:    semaphoreUnpack,
		Sig:       encoding.SigLoad,
	}
	a.appendWord(word.Encode())
	return nil
}

// SemaUp raises semaphore id.
func (a *Assembler) SemaUp(id uint8) error { return a.emitSemaphore(id, true) }

// SemaDown lowers semaphore id.
func (a *Assembler) SemaDown(id uint8) error { return a.emitSemaphore(id, false) }
