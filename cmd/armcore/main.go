// Command armcore runs a flat binary image against the core emulator
// and prints the register state after a fixed number of steps.
//
// Usage:
//
//	go run ./cmd/armcore -load image.bin [-steps N] [-isa arm32|thumb|a64]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/core"
	"github.com/ethereum/go-ethereum/log"
)

func main() {
	loadPath := flag.String("load", "", "flat binary image to load at address 0")
	steps := flag.Int("steps", 1, "number of instructions to execute")
	isaName := flag.String("isa", "arm32", "initial instruction set: arm32, thumb, or a64")
	flag.Parse()

	if *loadPath == "" {
		fmt.Fprintln(os.Stderr, "armcore: -load is required")
		os.Exit(1)
	}

	image, err := os.ReadFile(*loadPath)
	if err != nil {
		log.Error("failed to read image", "path", *loadPath, "err", err)
		os.Exit(1)
	}

	cfg := armstate.Config{
		Version:      armstate.V8,
		SupportedISA: armstate.ISAArm32 | armstate.ISAThumb | armstate.ISAArm64,
	}
	m := core.New(cfg)
	m.HighestEL = 1

	if err := m.Bus.LoadBytes(0, image); err != nil {
		log.Error("failed to load image", "err", err)
		os.Exit(1)
	}

	isa := armstate.Arm32
	switch *isaName {
	case "thumb":
		isa = armstate.Thumb
	case "a64":
		isa = armstate.Arm64
	}
	m.SetISA(isa)

	for i := 0; i < *steps; i++ {
		if err := m.Step(); err != nil {
			log.Error("step failed", "index", i, "err", err)
			break
		}
	}

	state := m.GetDebugState()
	fmt.Printf("pc=0x%x\n", state.PC)
	for i, r := range state.Registers {
		if r != 0 {
			fmt.Printf("r%d=0x%x\n", i, r)
		}
	}
}
