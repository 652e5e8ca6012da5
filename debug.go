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

package main

import (
	"fmt"

	"github.com/massung/chip8-engine/machine"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// LogLines is how many lines of the log are visible.
	///
	LogLines = 16

	/// widest log line that fits the panel
	///
	logColumns = 92
)

var (
	/// Address at the top of the disassembly window.
	///
	DebugAddress uint16
)

/// Show the HELP text in the log.
///
func DebugHelp() {
	Console.Logln("Virtual keys:")
	Console.Log("  1-2-3-4")
	Console.Log("  Q-W-E-R")
	Console.Log("  A-S-D-F")
	Console.Log("  Z-X-C-V")
	Console.Logln("Emulation keys:")
	Console.Log("  ESC      - Quit")
	Console.Log("  BS       - Reset")
	Console.Log("  F2       - Reload ROM")
	Console.Log("  F3       - Load ROM")
	Console.Log("  SPACE/F5 - Pause")
	Console.Log("  F6       - Step")
	Console.Log("  [ ]      - Speed")
	Console.Log("  Up/Down  - Scroll log")
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func DebugAssembly(regs machine.Snapshot, x, y int32) {
	pc := regs.PC

	// keep the window still while the pc is inside it
	if pc < DebugAddress+2 || pc >= DebugAddress+30 || (DebugAddress^pc)&1 == 1 {
		DebugAddress = pc - 2
	}

	// show the disassembled instructions
	for i, line := range Machine.Disassemble(DebugAddress, 16) {
		ly := y + int32(i)*10

		if DebugAddress+uint16(i*2) == pc {
			if regs.Paused {
				Renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			Renderer.FillRect(&sdl.Rect{X: x, Y: ly - 2, W: 196, H: 9})
		}

		Renderer.SetDrawColor(255, 255, 255, 255)
		DrawText(line, x, ly)
	}
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(regs machine.Snapshot, x, y int32) {
	Renderer.SetDrawColor(255, 255, 255, 255)

	for i := 0; i < 16; i++ {
		DrawText(fmt.Sprintf("V%X - #%02X", i, regs.V[i]), x, y+int32(i)*10)
	}

	// shift over for the other registers
	x += 70

	DrawText(fmt.Sprintf("PC - #%04X", regs.PC), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", regs.SP), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", regs.I), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", regs.DT), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", regs.ST), x, y+60)

	if regs.Waiting {
		DrawText("KEY?", x, y+80)
	}
	if regs.Paused {
		DrawText("PAUSED", x, y+90)
	}
}

/// Show the visible portion of the log.
///
func DebugLog(x, y int32) {
	Renderer.SetDrawColor(255, 255, 255, 255)

	// the scroll position takes the right end of the first line
	status := Console.Scrolled()
	if status != "" {
		DrawText(status, x+logColumns*Advance-int32(len(status))*Advance, y)
	}

	for i, line := range Console.Window(LogLines) {
		width := logColumns
		if i == 0 && status != "" {
			width -= len(status) + 1
		}

		if len(line) > width {
			line = line[:width-3] + "..."
		}

		DrawText(line, x, y)

		// advance to the next line
		y += 10
	}
}
