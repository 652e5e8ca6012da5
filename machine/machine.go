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

// Package machine runs a CHIP-8 virtual machine on its own goroutine and
// gives renderers and input pollers synchronized access to it.
package machine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/massung/chip8-engine/chip8"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultSpeed is roughly how many instructions per second the RCA
	// 1802 could interpret.
	DefaultSpeed = 500

	// MinSpeed and MaxSpeed bound the adjustable clock.
	MinSpeed = 50
	MaxSpeed = 5000

	// tick is how often the CPU goroutine wakes to catch up.
	tick = time.Millisecond
)

// Machine owns a virtual machine and the goroutine that steps it.
type Machine struct {
	mu sync.Mutex
	vm *chip8.CHIP_8

	logger *log.Logger

	// instructions per second
	speed int

	paused bool

	// last error returned by a step
	err error

	// clock is when emulation (re)started and cycles how many steps
	// have been scheduled since then
	clock  time.Time
	cycles int64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Snapshot is a consistent copy of the registers for a debugger view.
type Snapshot struct {
	PC, I  uint16
	SP     uint8
	V      [16]byte
	DT, ST byte
	Paused bool

	// Waiting is true while blocked on a key press.
	Waiting bool
}

// New wraps vm. A speed of zero selects DefaultSpeed.
func New(vm *chip8.CHIP_8, logger *log.Logger, speed int) *Machine {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	return &Machine{
		vm:     vm,
		logger: logger,
		speed:  clamp(speed),
	}
}

// Start spawns the CPU goroutine. Stop must be called to join it.
func (m *Machine) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.mu.Lock()
	m.restartClock()
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.run(ctx)
	}()
}

// Stop cancels the CPU goroutine and waits for it to exit.
func (m *Machine) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

func (m *Machine) run(ctx context.Context) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.process(now)
		}
	}
}

// process executes until the clock is caught up.
func (m *Machine) process(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// calculate how many cycles should have been executed
	count := cyclesDue(now.Sub(m.clock), m.speed)

	// if paused, count cycles without stepping
	if m.paused {
		m.cycles = count
		return
	}

	for m.cycles < count {
		m.cycles++

		if err := m.vm.Step(); err != nil {
			m.fault(err)
			return
		}

		// if waiting for a key, catch up
		if m.vm.Waiting() {
			m.cycles = count
		}
	}
}

// cyclesDue is how many instructions speed owes for elapsed. Whole
// seconds and the remainder are scaled apart so long sessions cannot
// overflow.
func cyclesDue(elapsed time.Duration, speed int) int64 {
	secs := int64(elapsed / time.Second)
	frac := int64(elapsed % time.Second)

	return secs*int64(speed) + frac*int64(speed)/int64(time.Second)
}

func (m *Machine) fault(err error) {
	m.err = err
	m.paused = true

	m.logger.Error("Emulation paused", err)
}

func (m *Machine) restartClock() {
	m.clock = time.Now()
	m.cycles = 0
}

// Pause or resume emulation.
func (m *Machine) Pause(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// time spent paused is not owed to the timers
	if m.paused && !paused {
		m.vm.RestartTimers()
	}

	m.paused = paused
	if !paused {
		m.err = nil
	}
}

// Paused is true while emulation is paused.
func (m *Machine) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.paused
}

// StepOnce executes a single instruction while paused.
func (m *Machine) StepOnce() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.paused {
		return nil
	}

	// the timers only run while emulation does
	m.vm.RestartTimers()

	if err := m.vm.Step(); err != nil {
		m.err = err
		return err
	}

	return nil
}

// Reset the virtual machine, keeping the loaded program.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vm.Reset()
	m.err = nil
	m.restartClock()

	m.logger.Info("Reset")
}

// Load a program at address and reset. On error memory is untouched.
func (m *Machine) Load(address int, program []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.vm.Load(address, program); err != nil {
		return err
	}

	m.vm.Reset()
	m.err = nil
	m.restartClock()

	m.logger.Info("Loaded program",
		log.Int("size", len(program)),
		log.String("address", fmt.Sprintf("%04X", address)))

	return nil
}

// Speed returns the clock in instructions per second.
func (m *Machine) Speed() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.speed
}

// SetSpeed changes the clock, clamped to MinSpeed..MaxSpeed.
func (m *Machine) SetSpeed(speed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.speed = clamp(speed)
	m.restartClock()
}

func clamp(speed int) int {
	switch {
	case speed <= 0:
		return DefaultSpeed
	case speed < MinSpeed:
		return MinSpeed
	case speed > MaxSpeed:
		return MaxSpeed
	}

	return speed
}

// SetKey updates one key of the key pad.
func (m *Machine) SetKey(key uint, down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if down {
		m.vm.PressKey(key)
	} else {
		m.vm.ReleaseKey(key)
	}
}

// Frame copies video memory. The bool is true if it changed since the
// last call, which also marks it as drawn.
func (m *Machine) Frame() (chip8.Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirty := m.vm.Dirty()
	m.vm.ClearDirty()

	return m.vm.Frame(), dirty
}

// SoundActive is true while the sound timer is running.
func (m *Machine) SoundActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.vm.SoundActive()
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		PC:      m.vm.PC,
		I:       m.vm.I,
		SP:      m.vm.SP,
		V:       m.vm.V,
		DT:      m.vm.DT,
		ST:      m.vm.ST,
		Paused:  m.paused,
		Waiting: m.vm.Waiting(),
	}
}

// Disassemble count instructions starting at address.
func (m *Machine) Disassemble(address uint16, count int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, m.vm.Disassemble(address+uint16(i*2)))
	}

	return lines
}

// Err returns the error that last paused emulation.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.err
}
