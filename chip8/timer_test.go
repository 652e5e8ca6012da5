package chip8

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersDecrementAt60Hz(t *testing.T) {
	vm, clock := newTestVM(t)
	vm.DT, vm.ST = 10, 3

	// not yet due
	clock.advance(TimerPeriod - time.Millisecond)
	vm.UpdateTimers()
	assert.Equal(t, byte(10), vm.DT)

	clock.advance(time.Millisecond)
	vm.UpdateTimers()
	assert.Equal(t, byte(9), vm.DT)
	assert.Equal(t, byte(2), vm.ST)

	// several periods elapsed at once
	clock.advance(4 * TimerPeriod)
	vm.UpdateTimers()
	assert.Equal(t, byte(5), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.False(t, vm.SoundActive())
}

func TestTimersIndependentOfStepRate(t *testing.T) {
	program := make([]byte, 0, 200)
	for i := 0; i < 100; i++ {
		program = append(program, 0x70, 0x01)
	}
	vm, clock := newTestVM(t, program...)
	vm.DT = 50

	// a burst of instructions inside one timer period
	steps(t, vm, 100)
	assert.Equal(t, byte(50), vm.DT)

	clock.advance(TimerPeriod)
	vm.UpdateTimers()
	assert.Equal(t, byte(49), vm.DT)
}

func TestTimersSaturate(t *testing.T) {
	vm, clock := newTestVM(t)

	for i := 0; i < 10; i++ {
		vm.DecrementTimers()
	}
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)

	clock.advance(time.Hour)
	vm.UpdateTimers()
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
}

func TestTimersAfterLongStall(t *testing.T) {
	vm, clock := newTestVM(t)
	vm.DT = 200

	clock.advance(time.Minute)
	vm.UpdateTimers()
	assert.Equal(t, byte(0), vm.DT)

	// the schedule restarts from now instead of replaying the stall
	vm.DT = 2
	clock.advance(TimerPeriod)
	vm.UpdateTimers()
	assert.Equal(t, byte(1), vm.DT)
}

func TestRestartTimers(t *testing.T) {
	vm, clock := newTestVM(t)
	vm.DT = 30

	// time that passes while the machine is held is discarded
	clock.advance(time.Second)
	vm.RestartTimers()
	vm.UpdateTimers()
	assert.Equal(t, byte(30), vm.DT)

	clock.advance(TimerPeriod)
	vm.UpdateTimers()
	assert.Equal(t, byte(29), vm.DT)
}
