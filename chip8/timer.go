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
	"time"
)

/// TimerPeriod is the interval between delay and sound timer ticks (60 Hz).
///
const TimerPeriod = time.Second / 60

/// UpdateTimers decrements the delay and sound timers once for every
/// timer period that has elapsed since the last tick. It is called by
/// Step, but hosts may call it on their own schedule as well.
///
func (vm *CHIP_8) UpdateTimers() {
	now := vm.now()

	for !now.Before(vm.next) {
		vm.DecrementTimers()

		// schedule the next tick
		vm.next = vm.next.Add(TimerPeriod)

		// after a long stall the timers are long expired, stop catching up
		if vm.DT == 0 && vm.ST == 0 && !now.Before(vm.next) {
			vm.next = now.Add(TimerPeriod)
			break
		}
	}
}

/// RestartTimers schedules the next timer tick one period from now,
/// discarding any time that elapsed while the machine was not stepped.
///
func (vm *CHIP_8) RestartTimers() {
	vm.next = vm.now().Add(TimerPeriod)
}

/// DecrementTimers performs a single timer tick. Neither timer will go
/// below zero.
///
func (vm *CHIP_8) DecrementTimers() {
	if vm.DT > 0 {
		vm.DT--
	}
	if vm.ST > 0 {
		vm.ST--
	}
}

/// DelayTimer returns the delay timer register.
///
func (vm *CHIP_8) DelayTimer() byte {
	return vm.DT
}

/// SoundTimer returns the sound timer register.
///
func (vm *CHIP_8) SoundTimer() byte {
	return vm.ST
}

/// SoundActive is true while the host should be playing a tone.
///
func (vm *CHIP_8) SoundActive() bool {
	return vm.ST > 0
}
