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
	"context"
	"errors"
	"time"

	"github.com/massung/chip8-engine/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Console is the on-screen log.
	///
	Console = NewLog()

	/// the last emulation error shown in the console
	///
	lastErr error
)

/// RunWindow opens the SDL window and runs until it is closed. If rom is
/// empty the user is asked to pick one.
///
func RunWindow(rom string) error {
	var err error

	// initialize SDL
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.Quit()

	// create the main window and renderer
	Window, err = sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 550, 348, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return err
	}
	defer Window.Destroy()

	if Renderer, err = sdl.CreateRenderer(Window, -1, uint32(sdl.RENDERER_ACCELERATED)); err != nil {
		return err
	}
	defer Renderer.Destroy()

	// initialize subsystems
	if err = InitScreen(); err != nil {
		return err
	}
	if err = InitAudio(); err != nil {
		logger.Warn("Audio unavailable", log.Err(err))
	}
	defer CloseAudio()

	Console.Log("Press H for help")

	if rom != "" {
		Load(rom)
	} else {
		LoadDialog()
	}

	// the CPU runs on its own goroutine, joined before SDL shuts down
	ctx, cancel := context.WithCancel(context.Background())
	Machine.Start(ctx)
	defer func() {
		cancel()
		Machine.Stop()
	}()

	// refresh rate
	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		<-video.C

		Refresh()
		UpdateAudio()
	}

	return nil
}

/// Load a ROM file, reporting failures to the user.
///
func Load(file string) {
	if err := LoadFile(file); err != nil {
		logger.Error("Loading ROM failed", err)
		Console.Logln("Failed to load", file)

		dialog.Message("%s", err.Error()).Title("Load ROM").Error()
		return
	}

	Console.Logln("Loaded", file)
	Window.SetTitle("CHIP-8 - " + file)
}

/// LoadDialog asks the user for a ROM file.
///
func LoadDialog() {
	file, err := dialog.File().Filter("CHIP-8 ROMs", "ch8", "c8", "rom").Title("Load ROM").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			logger.Error("File dialog failed", err)
		}
		return
	}

	Load(file)
}

/// Reload the current ROM, or the boot program.
///
func Reload() {
	if File == "" {
		Console.Logln("Rebooting")

		if err := Machine.Load(chip8.ProgramStart, Boot); err != nil {
			logger.Error("Boot failed", err)
		}
		return
	}

	Load(File)
}

/// Refresh redraws the whole window.
///
func Refresh() {
	// show any new emulation fault
	if err := Machine.Err(); err != nil && err != lastErr {
		Console.Logln(err.Error())
	}
	lastErr = Machine.Err()

	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	// frame various portions of the app
	Frame(8, 8, 322, 162)
	Frame(338, 8, 204, 162)
	Frame(8, 176, 146, 164)
	Frame(162, 176, 380, 164)

	// update the video screen and copy it
	RefreshScreen()
	CopyScreen(10, 10, 5)

	// debug assembly, virtual registers and log
	regs := Machine.Registers()
	DebugAssembly(regs, 342, 12)
	DebugRegisters(regs, 12, 180)
	DebugLog(166, 180)

	// show the new frame
	Renderer.Present()
}

/// Frame draws a bevelled border.
///
func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
