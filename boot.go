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

/// Boot is the program run when no ROM is loaded. It shows "C8" in the
/// middle of the screen and spins.
///
var Boot = []byte{
	0x00, 0xE0, // CLS
	0x6A, 0x0C, // LD     VA, #0C
	0x6B, 0x08, // LD     VB, #08
	0x61, 0x1A, // LD     V1, #1A
	0x62, 0x0D, // LD     V2, #0D
	0xFA, 0x29, // LD     F, VA
	0xD1, 0x25, // DRW    V1, V2, 5
	0x71, 0x06, // ADD    V1, #06
	0xFB, 0x29, // LD     F, VB
	0xD1, 0x25, // DRW    V1, V2, 5
	0x12, 0x14, // JP     #214
}
