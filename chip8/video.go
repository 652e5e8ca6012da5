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

const (
	/// Width and Height of the display in pixels.
	///
	Width  = 64
	Height = 32
)

/// Frame is the video memory. Each bit represents a single pixel, stored
/// MSB first, so pixel <0,0> is bit 0x80 of byte 0.
///
type Frame [Width * Height / 8]byte

/// Pixel returns true if the pixel at <x,y> is lit. Coordinates wrap.
///
func (f *Frame) Pixel(x, y int) bool {
	p := f.offset(x, y)

	return f[p>>3]&(0x80>>uint(p&7)) != 0
}

/// flip xors the pixel at <x,y> and returns true if it was turned off.
///
func (f *Frame) flip(x, y int) bool {
	p := f.offset(x, y)
	m := byte(0x80 >> uint(p&7))

	// was the pixel already lit?
	on := f[p>>3]&m != 0

	f[p>>3] ^= m

	return on
}

func (f *Frame) offset(x, y int) int {
	return (y&(Height-1))*Width + x&(Width-1)
}

/// Pixel returns true if the pixel at <x,y> of video memory is lit.
///
func (vm *CHIP_8) Pixel(x, y int) bool {
	return vm.Video.Pixel(x, y)
}

/// Dirty is true if video memory changed since ClearDirty was called.
///
func (vm *CHIP_8) Dirty() bool {
	return vm.dirty
}

/// ClearDirty marks video memory as drawn.
///
func (vm *CHIP_8) ClearDirty() {
	vm.dirty = false
}

/// Frame returns a copy of video memory.
///
func (vm *CHIP_8) Frame() Frame {
	return vm.Video
}

/// Clear the video display memory.
///
func (vm *CHIP_8) cls() {
	vm.Video = Frame{}
	vm.dirty = true
}

/// draw a sprite at I to video memory at vx, vy. Pixels wrap around
/// both edges of the screen. VF is set if any lit pixel was turned off.
///
func (vm *CHIP_8) drw(x, y, n uint8) {
	c := false

	// origin of the sprite
	ox := int(vm.V[x])
	oy := int(vm.V[y])

	// draw each row of the sprite
	for row := 0; row < int(n); row++ {
		s := vm.Read(vm.I + uint16(row))

		for bit := 0; bit < 8; bit++ {
			if s&(0x80>>uint(bit)) != 0 && vm.Video.flip(ox+bit, oy+row) {
				c = true
			}
		}
	}

	// set carry flag if any collision occurred
	vm.V[0xF] = flag(c)
	vm.dirty = true
}
