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

	"github.com/retroenv/retrogolib/log"
)

/// system instructions: CLS, RET and the ignored SYS.
///
func (vm *CHIP_8) system(inst uint16) error {
	switch inst {
	case 0x00E0:
		vm.cls()
	case 0x00EE:
		return vm.ret()
	default:
		vm.sys(inst & 0xFFF)
	}

	return nil
}

/// system call an RCA 1802 program at address. Not supported.
///
func (vm *CHIP_8) sys(address uint16) {
	vm.unknown(address)
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint16) error {
	if int(vm.SP) >= StackDepth-1 {
		vm.fault("Stack overflow", address)

		return fmt.Errorf("%w: CALL #%03X at #%04X", ErrStackOverflow, address, vm.PC-2)
	}

	// pre-increment
	vm.SP++

	// push program counter onto stack
	vm.Stack[vm.SP] = vm.PC

	// jump to address
	vm.PC = address

	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	if vm.SP == 0 {
		vm.fault("Stack underflow", vm.PC-2)

		return fmt.Errorf("%w: RET at #%04X", ErrStackUnderflow, vm.PC-2)
	}

	// restore program counter
	vm.PC = vm.Stack[vm.SP]

	// post-decrement
	vm.SP--

	return nil
}

func (vm *CHIP_8) fault(msg string, address uint16) {
	if vm.logger != nil {
		vm.logger.Debug(msg,
			log.String("address", fmt.Sprintf("%04X", address)),
			log.Int("sp", int(vm.SP)))
	}
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(x uint8, b byte) {
	if vm.V[x] == b {
		vm.PC += 2
	}
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(x uint8, b byte) {
	if vm.V[x] != b {
		vm.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(x, y uint8) {
	if vm.V[x] == vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(x, y uint8) {
	if vm.V[x] != vm.V[y] {
		vm.PC += 2
	}
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(x uint8, b byte) {
	vm.V[x] = b
}

/// add n to vx. VF is not affected.
///
func (vm *CHIP_8) addX(x uint8, b byte) {
	vm.V[x] += b
}

/// alu decodes the 8XYN register operations.
///
func (vm *CHIP_8) alu(inst uint16) {
	x, y := x(inst), y(inst)

	switch n(inst) {
	case 0x0:
		vm.loadXY(x, y)
	case 0x1:
		vm.or(x, y)
	case 0x2:
		vm.and(x, y)
	case 0x3:
		vm.xor(x, y)
	case 0x4:
		vm.addXY(x, y)
	case 0x5:
		vm.subXY(x, y)
	case 0x6:
		vm.shr(x)
	case 0x7:
		vm.subYX(x, y)
	case 0xE:
		vm.shl(x)
	default:
		vm.unknown(inst)
	}
}

/// load vy into vx.
///
func (vm *CHIP_8) loadXY(x, y uint8) {
	vm.V[x] = vm.V[y]
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(x, y uint8) {
	vm.V[x] |= vm.V[y]
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(x, y uint8) {
	vm.V[x] &= vm.V[y]
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(x, y uint8) {
	vm.V[x] ^= vm.V[y]
}

// The flag producing operations below compute VF from the operands
// before writing the result, then write VF last so that it wins when
// x is 0xF.

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(x, y uint8) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = byte(sum >> 8)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(x, y uint8) {
	f := flag(vm.V[x] > vm.V[y])

	vm.V[x] = vm.V[x] - vm.V[y]
	vm.V[0xF] = f
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(x, y uint8) {
	f := flag(vm.V[y] > vm.V[x])

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = f
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(x uint8) {
	f := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.V[0xF] = f
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(x uint8) {
	f := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.V[0xF] = f
}

func flag(b bool) byte {
	if b {
		return 1
	}

	return 0
}

/// load address register.
///
func (vm *CHIP_8) loadI(address uint16) {
	vm.I = address & 0xFFF
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(x uint8, b byte) {
	vm.V[x] = byte(vm.rng.Intn(256)) & b
}

/// keys decodes the EX9E and EXA1 instructions.
///
func (vm *CHIP_8) keys(inst uint16) {
	switch b(inst) {
	case 0x9E:
		vm.skipIfPressed(x(inst))
	case 0xA1:
		vm.skipIfNotPressed(x(inst))
	default:
		vm.unknown(inst)
	}
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(x uint8) {
	if vm.Keys[vm.V[x]&0xF] {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(x uint8) {
	if !vm.Keys[vm.V[x]&0xF] {
		vm.PC += 2
	}
}

/// misc decodes the FXNN instructions.
///
func (vm *CHIP_8) misc(inst uint16) {
	x := x(inst)

	switch b(inst) {
	case 0x07:
		vm.loadXDT(x)
	case 0x0A:
		vm.loadXK(x)
	case 0x15:
		vm.loadDTX(x)
	case 0x18:
		vm.loadSTX(x)
	case 0x1E:
		vm.addIX(x)
	case 0x29:
		vm.loadF(x)
	case 0x33:
		vm.loadB(x)
	case 0x55:
		vm.saveRegs(x)
	case 0x65:
		vm.loadRegs(x)
	default:
		vm.unknown(inst)
	}
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(x uint8) {
	vm.V[x] = vm.DT
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(x uint8) {
	vm.DT = vm.V[x]
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(x uint8) {
	vm.ST = vm.V[x]
}

/// load vx with next key hit. Until a key is down the instruction is
/// re-executed by every step.
///
func (vm *CHIP_8) loadXK(x uint8) {
	if key, ok := vm.pressed(); ok {
		vm.V[x] = key
		vm.waiting = false

		return
	}

	if !vm.waiting && vm.logger != nil {
		vm.logger.Debug("Waiting for key",
			log.String("address", fmt.Sprintf("%04X", vm.PC-2)))
	}

	// stay on this instruction
	vm.waiting = true
	vm.PC -= 2
}

/// add vx to i.
///
func (vm *CHIP_8) addIX(x uint8) {
	vm.I = (vm.I + uint16(vm.V[x])) & 0xFFF
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(x uint8) {
	vm.I = FontBase + uint16(vm.V[x]&0xF)*5
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(x uint8) {
	n := uint16(vm.V[x])
	b := uint16(0)

	// perform 8 shifts
	for i := uint(0); i < 8; i++ {
		if (b>>0)&0xF >= 5 {
			b += 3
		}
		if (b>>4)&0xF >= 5 {
			b += 3 << 4
		}
		if (b>>8)&0xF >= 5 {
			b += 3 << 8
		}

		// apply shift, pull next bit
		b = (b << 1) | (n >> (7 - i) & 1)
	}

	// write to memory
	vm.Write(vm.I+0, byte(b>>8)&0xF)
	vm.Write(vm.I+1, byte(b>>4)&0xF)
	vm.Write(vm.I+2, byte(b>>0)&0xF)
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x uint8) {
	for i := uint16(0); i <= uint16(x); i++ {
		vm.Write(vm.I+i, vm.V[i])
	}
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x uint8) {
	for i := uint16(0); i <= uint16(x); i++ {
		vm.V[i] = vm.Read(vm.I + i)
	}
}
