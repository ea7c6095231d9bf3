// Command qpuasm is a small demonstration front end over package asm: it
// builds a hard-coded program through the assembler API (no text-format
// parser — that surface is out of scope) and writes the assembled bytes
// out in the configured format.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/S-YOU/qpu-assembler/asm"
	"github.com/S-YOU/qpu-assembler/config"
	"github.com/S-YOU/qpu-assembler/encoding"
	"github.com/S-YOU/qpu-assembler/imm"
	"github.com/S-YOU/qpu-assembler/operand"
	"github.com/S-YOU/qpu-assembler/regs"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qpuasm",
		Short: "QPU instruction-set assembler demo",
	}
	root.AddCommand(assembleDemoCmd(), dumpTablesCmd())
	return root
}

func assembleDemoCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "assemble-demo",
		Short: "Assemble a built-in demonstration program and print the bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output.Format = format
			}

			a := asm.NewWithConfig(cfg, nil)
			if err := buildDemoProgram(a); err != nil {
				return err
			}
			code, err := a.Finalize()
			if err != nil {
				return err
			}
			if a.HasWarnings() {
				for _, w := range a.Warnings() {
					fmt.Fprintln(os.Stderr, "warning:", w)
				}
			}

			rendered, err := render(code, cfg.Output.Format, cfg.Output.BytesPerLine)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(rendered)
				return nil
			}
			return os.WriteFile(output, []byte(rendered), 0644)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: hex | bin | c_array (overrides config)")
	cmd.Flags().StringVar(&output, "output", "", "write to this file instead of stdout")
	return cmd
}

func dumpTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-tables",
		Short: "Print the add-pipe, mul-pipe, and branch-condition mnemonic tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("add-pipe:", strings.Join(asm.ListAddMnemonics(), ", "))
			fmt.Println("mul-pipe:", strings.Join(asm.ListMulMnemonics(), ", "))
			fmt.Println("branch:  ", strings.Join(asm.ListBranchMnemonics(), ", "))
			return nil
		},
	}
}

// buildDemoProgram exercises the core mnemonic surface: a scalar load, a
// vector load, a register move, a data loop with a backpatched branch, a
// semaphore pair, and the program-termination sequence.
func buildDemoProgram(a *asm.Assembler) error {
	ra0 := regs.MustLookup("ra0")
	ra1 := regs.MustLookup("ra1")
	r1 := regs.R1()

	if err := a.Ldi(ra0, imm.Int(16)); err != nil {
		return err
	}
	lanes := make([]int32, 16)
	for i := range lanes {
		lanes[i] = int32(i % 3)
	}
	if err := a.LdiVector(ra1, regs.NullReg(), lanes); err != nil {
		return err
	}
	if err := a.Mov(r1, ra0); err != nil {
		return err
	}
	if err := a.SemaDown(0); err != nil {
		return err
	}

	if err := a.Label("loop"); err != nil {
		return err
	}
	mb, err := a.EmitAdd(asm.AddISub, r1, operand.FromRegister(r1), operand.FromRegister(regs.R0()), encoding.SigNoSignal, true)
	if err != nil {
		return err
	}
	_ = mb
	if err := a.Branch(asm.CondJNZ, asm.Label("loop"), nil, nil); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if err := a.Nop(encoding.SigNoSignal); err != nil {
			return err
		}
	}

	if err := a.SemaUp(0); err != nil {
		return err
	}
	return a.Exit()
}

func render(code []byte, format string, bytesPerLine int) (string, error) {
	switch format {
	case "", "hex":
		return hex.EncodeToString(code), nil
	case "bin":
		var b strings.Builder
		for _, byt := range code {
			fmt.Fprintf(&b, "%08b", byt)
		}
		return b.String(), nil
	case "c_array":
		var b strings.Builder
		b.WriteString("static const unsigned char qpu_program[] = {\n")
		if bytesPerLine <= 0 {
			bytesPerLine = 16
		}
		for i, byt := range code {
			if i%bytesPerLine == 0 {
				b.WriteString("    ")
			}
			fmt.Fprintf(&b, "0x%02x, ", byt)
			if i%bytesPerLine == bytesPerLine-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n};\n")
		return b.String(), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
