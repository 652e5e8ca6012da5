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
	"github.com/massung/chip8-engine/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Screen is the render target holding the CHIP-8 video memory.
	///
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 video memory.
///
func InitScreen() (err error) {
	Screen, err = Renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888), int(sdl.TEXTUREACCESS_TARGET), chip8.Width, chip8.Height)

	return err
}

/// RefreshScreen with the CHIP-8 video memory. The texture is only
/// redrawn when the video memory has changed.
///
func RefreshScreen() {
	video, dirty := Machine.Frame()
	if !dirty {
		return
	}

	if err := Renderer.SetRenderTarget(Screen); err != nil {
		panic(err)
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the pixels
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if video.Pixel(x, y) {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen to the window, scaled.
///
func CopyScreen(x, y, scale int32) {
	src := sdl.Rect{W: chip8.Width, H: chip8.Height}
	dst := sdl.Rect{X: x, Y: y, W: chip8.Width * scale, H: chip8.Height * scale}

	// stretch the render target to fit
	Renderer.Copy(Screen, &src, &dst)
}
