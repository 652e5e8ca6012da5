package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyWait(t *testing.T) {
	vm, _ := newTestVM(t, 0xF4, 0x0A, 0x60, 0x01)

	for i := 0; i < 10; i++ {
		assert.NoError(t, vm.Step())
		assert.Equal(t, uint16(0x200), vm.PC)
		assert.True(t, vm.Waiting())
	}
	assert.Equal(t, byte(0), vm.V[4])

	vm.PressKey(0x7)
	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x202), vm.PC)
	assert.Equal(t, byte(0x7), vm.V[4])
	assert.False(t, vm.Waiting())

	// execution carries on normally
	assert.NoError(t, vm.Step())
	assert.Equal(t, byte(1), vm.V[0])
}

func TestKeyWaitPicksHighestKey(t *testing.T) {
	vm, _ := newTestVM(t, 0xF4, 0x0A)

	var keys [16]bool
	keys[0x2] = true
	keys[0xC] = true
	keys[0x5] = true
	vm.SetKeys(keys)

	assert.NoError(t, vm.Step())
	assert.Equal(t, byte(0xC), vm.V[4])
}

func TestKeyWaitTimersKeepRunning(t *testing.T) {
	vm, clock := newTestVM(t, 0xF4, 0x0A)
	vm.DT = 5

	clock.advance(2 * TimerPeriod)
	assert.NoError(t, vm.Step())
	assert.True(t, vm.Waiting())
	assert.Equal(t, byte(3), vm.DT)
}

func TestInvalidKeysIgnored(t *testing.T) {
	vm := New()

	vm.PressKey(16)
	vm.PressKey(100)
	assert.True(t, vm.Keys == [16]bool{})

	vm.PressKey(0xF)
	assert.True(t, vm.Keys[0xF])
	vm.ReleaseKey(0xF)
	assert.False(t, vm.Keys[0xF])
}
