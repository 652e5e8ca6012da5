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

package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

/// CHIP_8 virtual machine emulator.
/// The machine is not safe for concurrent use. Hosts that step it from
/// one goroutine and render from another must guard it themselves.
///
type CHIP_8 struct {
	/// Memory addressable by CHIP-8. The first 512 bytes are reserved
	/// for the font sprites. Programs are loaded at 0x200.
	///
	Memory [MemorySize]byte

	/// Video memory for CHIP-8 (64x32 bits).
	///
	Video Frame

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// SP is the stack pointer. It is pre-incremented on call, so the
	/// deepest usable slot is 15.
	///
	SP uint8

	/// Stack of return addresses.
	///
	Stack [StackDepth]uint16

	/// I is the address register, always 12 bits.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the flag register.
	///
	V [16]byte

	/// DT and ST are the delay and sound timer registers.
	///
	DT byte
	ST byte

	/// Keys hold the current host snapshot of the 16-key pad.
	///
	Keys [16]bool

	/// Cycles is how many instructions have been executed since reset.
	///
	Cycles int64

	/// dirty is set whenever the video memory changes
	///
	dirty bool

	/// waiting is set while suspended on LD Vx, K
	///
	waiting bool

	/// next is the instant the timers are next due to decrement
	///
	next time.Time

	now    func() time.Time
	rng    *rand.Rand
	logger *log.Logger
}

/// Option configures a CHIP_8 at construction.
///
type Option func(*CHIP_8)

/// WithLogger sets the logger used for debug tracing.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *CHIP_8) {
		vm.logger = logger
	}
}

/// WithSeed makes RND deterministic.
///
func WithSeed(seed int64) Option {
	return func(vm *CHIP_8) {
		vm.rng = rand.New(rand.NewSource(seed))
	}
}

/// WithClock replaces the wall clock used by the timer unit.
///
func WithClock(now func() time.Time) Option {
	return func(vm *CHIP_8) {
		vm.now = now
	}
}

/// New creates a CHIP-8 virtual machine with the font preloaded and
/// the program counter at 0x200.
///
func New(opts ...Option) *CHIP_8 {
	vm := &CHIP_8{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// copy the font sprites into reserved memory
	copy(vm.Memory[FontBase:], Font[:])

	vm.Reset()

	return vm
}

/// LoadROM creates a new virtual machine with program loaded at 0x200.
///
func LoadROM(program []byte, opts ...Option) (*CHIP_8, error) {
	vm := New(opts...)

	if err := vm.Load(ProgramStart, program); err != nil {
		return nil, err
	}

	return vm, nil
}

/// Reset the virtual machine. Memory, and so any loaded program and the
/// font, is left untouched.
///
func (vm *CHIP_8) Reset() {
	vm.V = [16]byte{}
	vm.Stack = [StackDepth]uint16{}
	vm.Video = Frame{}

	// reset program counter and stack pointer
	vm.PC = ProgramStart
	vm.SP = 0

	// reset address register
	vm.I = 0

	// reset timer registers and reschedule the next tick
	vm.DT = 0
	vm.ST = 0
	vm.RestartTimers()

	vm.Cycles = 0
	vm.waiting = false

	// the cleared screen still needs to be shown
	vm.dirty = true
}

/// SetPC moves the program counter. Addresses in reserved memory, past
/// the end of memory, or not aligned to an instruction are rejected.
///
func (vm *CHIP_8) SetPC(pc uint16) error {
	if pc < ProgramStart || pc > MemorySize-2 || pc&1 != 0 {
		return fmt.Errorf("%w: program counter #%04X", ErrAddress, pc)
	}

	vm.PC = pc
	vm.waiting = false

	return nil
}

/// Waiting is true while the machine is suspended on LD Vx, K.
///
func (vm *CHIP_8) Waiting() bool {
	return vm.waiting
}

/// Step the CHIP-8 virtual machine a single instruction.
///
func (vm *CHIP_8) Step() error {
	vm.UpdateTimers()

	// fetch the next instruction
	inst := vm.fetch()

	// increment the cycle count
	vm.Cycles++

	switch inst >> 12 {
	case 0x0:
		return vm.system(inst)
	case 0x1:
		vm.jump(inst & 0xFFF)
	case 0x2:
		return vm.call(inst & 0xFFF)
	case 0x3:
		vm.skipIf(x(inst), b(inst))
	case 0x4:
		vm.skipIfNot(x(inst), b(inst))
	case 0x5:
		if n(inst) == 0 {
			vm.skipIfXY(x(inst), y(inst))
		} else {
			vm.unknown(inst)
		}
	case 0x6:
		vm.loadX(x(inst), b(inst))
	case 0x7:
		vm.addX(x(inst), b(inst))
	case 0x8:
		vm.alu(inst)
	case 0x9:
		if n(inst) == 0 {
			vm.skipIfNotXY(x(inst), y(inst))
		} else {
			vm.unknown(inst)
		}
	case 0xA:
		vm.loadI(inst & 0xFFF)
	case 0xB:
		vm.jumpV0(inst & 0xFFF)
	case 0xC:
		vm.rnd(x(inst), b(inst))
	case 0xD:
		vm.drw(x(inst), y(inst), n(inst))
	case 0xE:
		vm.keys(inst)
	case 0xF:
		vm.misc(inst)
	}

	return nil
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *CHIP_8) fetch() uint16 {
	i := vm.PC & 0xFFF

	// advance the program counter before execution
	vm.PC += 2

	return uint16(vm.Memory[i])<<8 | uint16(vm.Memory[(i+1)&0xFFF])
}

/// Operand decoding.
///
func x(inst uint16) uint8 { return uint8(inst>>8) & 0xF }
func y(inst uint16) uint8 { return uint8(inst>>4) & 0xF }
func n(inst uint16) uint8 { return uint8(inst) & 0xF }
func b(inst uint16) byte  { return byte(inst) }

/// unknown opcodes are ignored.
///
func (vm *CHIP_8) unknown(inst uint16) {
	if vm.logger != nil {
		vm.logger.Debug("Ignoring unknown opcode",
			log.String("opcode", fmt.Sprintf("%04X", inst)),
			log.String("address", fmt.Sprintf("%04X", vm.PC-2)))
	}
}
