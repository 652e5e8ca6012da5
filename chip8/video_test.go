package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawGlyph(t *testing.T) {
	vm, _ := newTestVM(t, 0xA2, 0x10, 0xD0, 0x05)
	assert.NoError(t, vm.Load(0x210, Font[0:5]))
	vm.ClearDirty()

	steps(t, vm, 2)

	for row := 0; row < 5; row++ {
		for col := 0; col < 8; col++ {
			lit := Font[row]&(0x80>>uint(col)) != 0
			assert.Equal(t, lit, vm.Pixel(col, row))
		}
	}

	assert.Equal(t, byte(0), vm.V[0xF])
	assert.True(t, vm.Dirty())
}

func TestDrawTwiceRestoresFrame(t *testing.T) {
	// draw the "8" glyph twice at <3,4>
	vm, _ := newTestVM(t,
		0x61, 0x03, 0x62, 0x04, 0x63, 0x08, 0xF3, 0x29,
		0xD1, 0x25,
		0xD1, 0x25)
	vm.Video[0x40] = 0x01
	before := vm.Frame()

	steps(t, vm, 5)
	assert.False(t, before == vm.Frame())
	assert.Equal(t, byte(0), vm.V[0xF])

	steps(t, vm, 1)
	assert.True(t, before == vm.Frame())
	assert.Equal(t, byte(1), vm.V[0xF])
}

func TestDrawWraps(t *testing.T) {
	vm, _ := newTestVM(t, 0xA3, 0x00, 0xD1, 0x22)
	assert.NoError(t, vm.Load(0x300, []byte{0xFF, 0x81}))
	vm.V[1], vm.V[2] = 60, 31

	steps(t, vm, 2)

	// first row at the bottom, split across the right edge
	for _, px := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		assert.True(t, vm.Pixel(px, 31))
	}
	assert.False(t, vm.Pixel(4, 31))
	assert.False(t, vm.Pixel(59, 31))

	// second row wrapped to the top
	assert.True(t, vm.Pixel(60, 0))
	assert.True(t, vm.Pixel(3, 0))
	assert.False(t, vm.Pixel(61, 0))
	assert.False(t, vm.Pixel(2, 0))
}

func TestDrawCoordinatesWrap(t *testing.T) {
	vm, _ := newTestVM(t, 0xA3, 0x00, 0xD1, 0x21)
	assert.NoError(t, vm.Load(0x300, []byte{0x80}))
	vm.V[1], vm.V[2] = 64+5, 32+7

	steps(t, vm, 2)
	assert.True(t, vm.Pixel(5, 7))
}

func TestDrawCollision(t *testing.T) {
	vm, _ := newTestVM(t, 0xA3, 0x00, 0xD1, 0x21, 0xA3, 0x01, 0xD1, 0x21)
	assert.NoError(t, vm.Load(0x300, []byte{0xF0, 0x0F}))

	steps(t, vm, 2)
	assert.Equal(t, byte(0), vm.V[0xF])

	// no overlapping pixels, no collision
	steps(t, vm, 2)
	assert.Equal(t, byte(0), vm.V[0xF])
	assert.True(t, vm.Pixel(0, 0))
	assert.True(t, vm.Pixel(7, 0))
}

func TestClearScreen(t *testing.T) {
	vm, _ := newTestVM(t, 0x00, 0xE0)
	vm.Video[10] = 0xFF
	vm.ClearDirty()

	assert.NoError(t, vm.Step())
	assert.True(t, vm.Frame() == Frame{})
	assert.True(t, vm.Dirty())
}

func TestFramePixel(t *testing.T) {
	var f Frame

	assert.False(t, f.flip(63, 31))
	assert.True(t, f.Pixel(63, 31))
	assert.True(t, f.Pixel(-1, -1))
	assert.Equal(t, byte(0x01), f[len(f)-1])

	assert.True(t, f.flip(63, 31))
	assert.False(t, f.Pixel(63, 31))
}
