/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/massung/chip8-engine/chip8"
	"github.com/massung/chip8-engine/machine"
	"github.com/retroenv/retrogolib/log"
)

var (
	// The CHIP-8 virtual machine and the goroutine running it.
	Machine *machine.Machine

	// File is the ROM currently loaded, empty for the boot program.
	File string

	// Address programs are loaded to.
	Address int

	// Structured log output.
	logger *log.Logger
)

// Options are the command line settings.
type Options struct {
	Speed    int
	Address  int
	Seed     int64
	Terminal bool
	Debug    bool
	Quiet    bool
	ROM      string
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := ParseFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logger = CreateLogger(opts.Debug, opts.Quiet)

	// create a new CHIP-8 virtual machine
	vmOpts := []chip8.Option{chip8.WithLogger(logger)}
	if opts.Seed != 0 {
		vmOpts = append(vmOpts, chip8.WithSeed(opts.Seed))
	}

	Machine = machine.New(chip8.New(vmOpts...), logger, opts.Speed)
	Address = opts.Address

	// start with the boot program, replaced by any ROM given
	if err := Machine.Load(chip8.ProgramStart, Boot); err != nil {
		logger.Fatal(err.Error())
	}

	if opts.Terminal {
		if opts.ROM == "" {
			logger.Fatal("a ROM file is required in terminal mode")
		}
		if err := LoadFile(opts.ROM); err != nil {
			logger.Fatal(err.Error())
		}

		Machine.Start(context.Background())
		defer Machine.Stop()

		if err := RunTerminal(); err != nil {
			logger.Error("Terminal failed", err)
		}
		return
	}

	if err := RunWindow(opts.ROM); err != nil {
		logger.Error("Window failed", err)
	}
}

// ParseFlags reads the command line into Options.
func ParseFlags(args []string) (Options, error) {
	var opts Options

	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.IntVar(&opts.Speed, "speed", machine.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Address, "address", chip8.ProgramStart, "address to load the ROM at")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 for a random seed")
	flags.BoolVar(&opts.Terminal, "term", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: chip8 [options] [rom file]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if flags.NArg() > 1 {
		return opts, fmt.Errorf("expected a single ROM file, got %d arguments", flags.NArg())
	}

	opts.ROM = flags.Arg(0)

	return opts, nil
}

// CreateLogger creates a logger with the level chosen on the command line.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}

// LoadFile reads a ROM file and loads it into the virtual machine.
func LoadFile(file string) error {
	program, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if err := Machine.Load(Address, program); err != nil {
		return fmt.Errorf("loading %s: %w", file, err)
	}

	// the program counter must point at the program
	if Address != chip8.ProgramStart {
		logger.Warn("ROM loaded away from the program start",
			log.String("address", fmt.Sprintf("%04X", Address)))
	}

	File = file

	return nil
}
