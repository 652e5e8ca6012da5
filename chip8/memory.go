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
)

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where programs are loaded and execution begins.
	///
	ProgramStart = 0x200

	/// FontBase is the address of the first font glyph. Glyph N is at
	/// FontBase + 5*N.
	///
	FontBase = 0x000

	/// StackDepth is the number of return address slots.
	///
	StackDepth = 16
)

/// Font is the built-in 4x5 hexadecimal digit sprites, 5 bytes each.
///
var Font = [16 * 5]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// Load copies program into memory starting at address. Nothing is
/// written if the program would not fit.
///
func (vm *CHIP_8) Load(address int, program []byte) error {
	if address < 0 || address+len(program) > MemorySize {
		return fmt.Errorf("%w: %d bytes at #%04X exceeds memory", ErrAddress, len(program), address)
	}

	copy(vm.Memory[address:], program)

	return nil
}

/// Read a byte of memory. The address is masked to 12 bits.
///
func (vm *CHIP_8) Read(address uint16) byte {
	return vm.Memory[address&0xFFF]
}

/// Write a byte of memory. The address is masked to 12 bits.
///
func (vm *CHIP_8) Write(address uint16, value byte) {
	vm.Memory[address&0xFFF] = value
}
