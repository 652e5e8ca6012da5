package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAddImmediateWraps(t *testing.T) {
	for _, k := range []byte{0x00, 0x01, 0x7F, 0x80, 0xFF} {
		for _, k2 := range []byte{0x00, 0x01, 0x80, 0xFE, 0xFF} {
			vm, _ := newTestVM(t, 0x63, k, 0x73, k2)
			vm.V[0xF] = 0xAA
			steps(t, vm, 2)

			assert.Equal(t, k+k2, vm.V[3])
			assert.Equal(t, byte(0xAA), vm.V[0xF])
		}
	}
}

func TestALU(t *testing.T) {
	tests := []struct {
		name   string
		op     byte
		vx, vy byte
		result byte
		vf     byte
	}{
		{"LD", 0x0, 0x12, 0x34, 0x34, 0x77},
		{"OR", 0x1, 0xF0, 0x0F, 0xFF, 0x77},
		{"AND", 0x2, 0xF3, 0x3F, 0x33, 0x77},
		{"XOR", 0x3, 0xFF, 0x0F, 0xF0, 0x77},
		{"ADD no carry", 0x4, 0x05, 0x03, 0x08, 0},
		{"ADD carry", 0x4, 0xFF, 0x02, 0x01, 1},
		{"ADD exactly 256", 0x4, 0x80, 0x80, 0x00, 1},
		{"SUB no borrow", 0x5, 0x05, 0x03, 0x02, 1},
		{"SUB borrow", 0x5, 0x03, 0x05, 0xFE, 0},
		{"SUB equal", 0x5, 0x07, 0x07, 0x00, 0},
		{"SHR odd", 0x6, 0x05, 0x00, 0x02, 1},
		{"SHR even", 0x6, 0x84, 0x00, 0x42, 0},
		{"SUBN no borrow", 0x7, 0x03, 0x05, 0x02, 1},
		{"SUBN borrow", 0x7, 0x05, 0x03, 0xFE, 0},
		{"SHL high bit", 0xE, 0x81, 0x00, 0x02, 1},
		{"SHL low bits", 0xE, 0x41, 0x00, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm, _ := newTestVM(t, 0x81, 0x20|tt.op)
			vm.V[1], vm.V[2] = tt.vx, tt.vy
			vm.V[0xF] = 0x77

			assert.NoError(t, vm.Step())
			assert.Equal(t, tt.result, vm.V[1])
			assert.Equal(t, tt.vf, vm.V[0xF])
			assert.Equal(t, tt.vy, vm.V[2])
		})
	}
}

func TestALUFlagRegisterAsDestination(t *testing.T) {
	tests := []struct {
		name   string
		op     uint16
		vf, vy byte
		expect byte
	}{
		{"ADD carry", 0x8F14, 0xFF, 0x01, 1},
		{"ADD no carry", 0x8F14, 0x01, 0x01, 0},
		{"SUB no borrow", 0x8F15, 0x05, 0x01, 1},
		{"SUB borrow", 0x8F15, 0x01, 0x05, 0},
		{"SHR", 0x8F06, 0x03, 0x00, 1},
		{"SHL", 0x8F0E, 0x03, 0x00, 0},
		{"SUBN", 0x8F17, 0x01, 0x05, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm, _ := newTestVM(t, byte(tt.op>>8), byte(tt.op))
			vm.V[0xF], vm.V[1] = tt.vf, tt.vy

			assert.NoError(t, vm.Step())
			assert.Equal(t, tt.expect, vm.V[0xF])
		})
	}
}

func TestALUSourceIsFlagRegister(t *testing.T) {
	// the carry is computed from VF before it is overwritten
	vm, _ := newTestVM(t, 0x81, 0xF4)
	vm.V[1], vm.V[0xF] = 0xFF, 0x01

	assert.NoError(t, vm.Step())
	assert.Equal(t, byte(0x00), vm.V[1])
	assert.Equal(t, byte(1), vm.V[0xF])
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name   string
		op     uint16
		v1, v2 byte
		skip   bool
	}{
		{"SE imm equal", 0x3142, 0x42, 0, true},
		{"SE imm differ", 0x3142, 0x41, 0, false},
		{"SNE imm equal", 0x4142, 0x42, 0, false},
		{"SNE imm differ", 0x4142, 0x41, 0, true},
		{"SE reg equal", 0x5120, 9, 9, true},
		{"SE reg differ", 0x5120, 9, 8, false},
		{"SNE reg equal", 0x9120, 9, 9, false},
		{"SNE reg differ", 0x9120, 9, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm, _ := newTestVM(t, byte(tt.op>>8), byte(tt.op))
			vm.V[1], vm.V[2] = tt.v1, tt.v2

			assert.NoError(t, vm.Step())

			if tt.skip {
				assert.Equal(t, uint16(0x204), vm.PC)
			} else {
				assert.Equal(t, uint16(0x202), vm.PC)
			}
		})
	}
}

func TestJumps(t *testing.T) {
	vm, _ := newTestVM(t, 0x13, 0x45)
	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x345), vm.PC)

	vm, _ = newTestVM(t, 0xB3, 0x00)
	vm.V[0] = 0x10
	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x310), vm.PC)
}

func TestLoadIndex(t *testing.T) {
	vm, _ := newTestVM(t, 0xAF, 0xFF, 0x61, 0x02, 0xF1, 0x1E)
	steps(t, vm, 1)
	assert.Equal(t, uint16(0xFFF), vm.I)

	// I stays within 12 bits
	steps(t, vm, 2)
	assert.Equal(t, uint16(0x001), vm.I)
}

func TestRandom(t *testing.T) {
	vm, _ := newTestVM(t, 0xC1, 0x0F, 0xC2, 0x00)

	for i := 0; i < 64; i++ {
		assert.NoError(t, vm.SetPC(ProgramStart))
		vm.V[2] = 0xFF
		steps(t, vm, 2)

		assert.Equal(t, byte(0), vm.V[1]&0xF0)
		assert.Equal(t, byte(0), vm.V[2])
	}
}

func TestRandomIsSeeded(t *testing.T) {
	a, _ := newTestVM(t, 0xC1, 0xFF)
	b, _ := newTestVM(t, 0xC1, 0xFF)
	steps(t, a, 1)
	steps(t, b, 1)

	assert.Equal(t, a.V[1], b.V[1])
}

func TestTimerRegisters(t *testing.T) {
	vm, _ := newTestVM(t, 0x61, 0x30, 0xF1, 0x15, 0xF1, 0x18, 0xF2, 0x07)
	steps(t, vm, 4)

	assert.Equal(t, byte(0x30), vm.DelayTimer())
	assert.Equal(t, byte(0x30), vm.SoundTimer())
	assert.Equal(t, byte(0x30), vm.V[2])
	assert.True(t, vm.SoundActive())
}

func TestFontAddress(t *testing.T) {
	for digit := byte(0); digit < 16; digit++ {
		vm, _ := newTestVM(t, 0xF1, 0x29)
		vm.V[1] = digit

		assert.NoError(t, vm.Step())
		assert.Equal(t, uint16(FontBase)+uint16(digit)*5, vm.I)
	}
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value byte
		bcd   [3]byte
	}{
		{0, [3]byte{0, 0, 0}},
		{7, [3]byte{0, 0, 7}},
		{10, [3]byte{0, 1, 0}},
		{42, [3]byte{0, 4, 2}},
		{100, [3]byte{1, 0, 0}},
		{199, [3]byte{1, 9, 9}},
		{255, [3]byte{2, 5, 5}},
	}

	for _, tt := range tests {
		vm, _ := newTestVM(t, 0xA3, 0x00, 0xF5, 0x33)
		vm.V[5] = tt.value
		steps(t, vm, 2)

		assert.Equal(t, tt.bcd[0], vm.Memory[0x300])
		assert.Equal(t, tt.bcd[1], vm.Memory[0x301])
		assert.Equal(t, tt.bcd[2], vm.Memory[0x302])
		assert.Equal(t, uint16(0x300), vm.I)
	}
}

func TestSaveLoadRegisters(t *testing.T) {
	vm, _ := newTestVM(t, 0xA3, 0x00, 0xF3, 0x55, 0xA4, 0x00, 0xF2, 0x65)
	vm.V = [16]byte{10, 11, 12, 13, 14}
	assert.NoError(t, vm.Load(0x400, []byte{20, 21, 22, 23}))
	steps(t, vm, 2)

	assert.Equal(t, byte(10), vm.Memory[0x300])
	assert.Equal(t, byte(13), vm.Memory[0x303])
	assert.Equal(t, byte(0), vm.Memory[0x304])

	steps(t, vm, 2)

	assert.Equal(t, byte(20), vm.V[0])
	assert.Equal(t, byte(22), vm.V[2])
	assert.Equal(t, byte(13), vm.V[3])
	assert.Equal(t, uint16(0x400), vm.I)
}

func TestKeySkips(t *testing.T) {
	vm, _ := newTestVM(t, 0xE1, 0x9E, 0xE1, 0xA1)
	vm.V[1] = 0xA
	vm.PressKey(0xA)

	// pressed: SKP skips over SKNP
	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x204), vm.PC)

	vm.ReleaseKey(0xA)
	assert.NoError(t, vm.SetPC(0x200))
	steps(t, vm, 2)
	assert.Equal(t, uint16(0x206), vm.PC)
}

func TestFontAddressUsesLowNibble(t *testing.T) {
	// only the low nibble of Vx selects a glyph
	vm, _ := newTestVM(t, 0xF1, 0x29)
	vm.V[1] = 0x1A

	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(FontBase+0xA*5), vm.I)
	assert.Equal(t, Font[0xA*5], vm.Read(vm.I))
}
