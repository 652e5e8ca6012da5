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
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/massung/chip8-engine/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

/// Terminals only report key presses, so each press holds the key down
/// for this long.
///
const KeyHold = 150 * time.Millisecond

var (
	/// Mapping of terminal characters to CHIP-8 keys.
	///
	TermKeyMap = map[byte]uint{
		'x': 0x0,
		'1': 0x1,
		'2': 0x2,
		'3': 0x3,
		'q': 0x4,
		'w': 0x5,
		'e': 0x6,
		'a': 0x7,
		's': 0x8,
		'd': 0x9,
		'z': 0xA,
		'c': 0xB,
		'4': 0xC,
		'r': 0xD,
		'f': 0xE,
		'v': 0xF,
	}

	errNotTerminal = errors.New("standard input is not a terminal")
)

/// RunTerminal renders the machine to the terminal and feeds it keys
/// from standard input until ESC or Ctrl-C is pressed.
///
func RunTerminal() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < chip8.Width || h < chip8.Height/2+1) {
		logger.Warn("Terminal is too small for the display",
			log.Int("columns", w),
			log.Int("rows", h))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	// hide the cursor, clear the screen, and restore on exit
	fmt.Print("\x1b[?25l\x1b[2J")
	defer fmt.Print("\x1b[?25h\x1b[2J\x1b[H")

	// the reader blocks on stdin and ends with the process
	keys := make(chan byte, 16)
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			c, err := r.ReadByte()
			if err != nil {
				close(keys)
				return
			}
			keys <- c
		}
	}()

	// when each held key is released
	var held [16]time.Time

	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	beeping := false

	for now := range video.C {
		// drain pending key presses
		for pending := true; pending; {
			select {
			case c, ok := <-keys:
				if !ok {
					return nil
				}
				if !TermCommand(c) {
					return nil
				}
				if key, ok := TermKeyMap[lower(c)]; ok {
					held[key] = now.Add(KeyHold)
					Machine.SetKey(key, true)
				}
			default:
				pending = false
			}
		}

		// release keys whose hold expired
		for key, until := range held {
			if !until.IsZero() && now.After(until) {
				held[key] = time.Time{}
				Machine.SetKey(uint(key), false)
			}
		}

		if frame, dirty := Machine.Frame(); dirty {
			fmt.Print(RenderFrame(&frame))
		}

		// ring the bell as the tone starts
		sound := Machine.SoundActive()
		if sound && !beeping {
			fmt.Print("\a")
		}
		beeping = sound
	}

	return nil
}

/// TermCommand handles the emulator keys. Returns false to quit.
///
func TermCommand(c byte) bool {
	switch c {
	case 0x03, 0x1B:
		return false
	case 0x7F, 0x08:
		Machine.Reset()
	case ' ':
		Machine.Pause(!Machine.Paused())
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

/// RenderFrame draws video memory with half block characters, two pixel
/// rows per line of text, homing the cursor first.
///
func RenderFrame(frame *chip8.Frame) string {
	var sb strings.Builder

	sb.WriteString("\x1b[H")

	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			top, bottom := frame.Pixel(x, y), frame.Pixel(x, y+1)

			switch {
			case top && bottom:
				sb.WriteString("█")
			case top:
				sb.WriteString("▀")
			case bottom:
				sb.WriteString("▄")
			default:
				sb.WriteByte(' ')
			}
		}

		// raw mode needs an explicit carriage return
		sb.WriteString("\r\n")
	}

	return sb.String()
}
