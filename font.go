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
	"unicode"
)

const (
	/// Advance is the horizontal distance between characters.
	///
	Advance = 4
)

/// Glyphs is a 3x5 font for the debug panels. Each row uses the low 3
/// bits, 0b100 being the leftmost pixel.
///
var Glyphs = map[rune][5]byte{
	'0':  {7, 5, 5, 5, 7},
	'1':  {2, 6, 2, 2, 7},
	'2':  {7, 1, 7, 4, 7},
	'3':  {7, 1, 7, 1, 7},
	'4':  {5, 5, 7, 1, 1},
	'5':  {7, 4, 7, 1, 7},
	'6':  {7, 4, 7, 5, 7},
	'7':  {7, 1, 1, 1, 1},
	'8':  {7, 5, 7, 5, 7},
	'9':  {7, 5, 7, 1, 7},
	'A':  {2, 5, 7, 5, 5},
	'B':  {6, 5, 6, 5, 6},
	'C':  {3, 4, 4, 4, 3},
	'D':  {6, 5, 5, 5, 6},
	'E':  {7, 4, 6, 4, 7},
	'F':  {7, 4, 6, 4, 4},
	'G':  {3, 4, 5, 5, 3},
	'H':  {5, 5, 7, 5, 5},
	'I':  {7, 2, 2, 2, 7},
	'J':  {1, 1, 1, 5, 2},
	'K':  {5, 5, 6, 5, 5},
	'L':  {4, 4, 4, 4, 7},
	'M':  {5, 7, 7, 5, 5},
	'N':  {6, 5, 5, 5, 5},
	'O':  {2, 5, 5, 5, 2},
	'P':  {6, 5, 6, 4, 4},
	'Q':  {2, 5, 5, 6, 3},
	'R':  {6, 5, 6, 5, 5},
	'S':  {3, 4, 2, 1, 6},
	'T':  {7, 2, 2, 2, 2},
	'U':  {5, 5, 5, 5, 7},
	'V':  {5, 5, 5, 5, 2},
	'W':  {5, 5, 7, 7, 5},
	'X':  {5, 5, 2, 5, 5},
	'Y':  {5, 5, 2, 2, 2},
	'Z':  {7, 1, 2, 4, 7},
	'-':  {0, 0, 7, 0, 0},
	'+':  {0, 2, 7, 2, 0},
	'=':  {0, 7, 0, 7, 0},
	'#':  {5, 7, 5, 7, 5},
	'[':  {6, 4, 4, 4, 6},
	']':  {3, 1, 1, 1, 3},
	'(':  {2, 4, 4, 4, 2},
	')':  {2, 1, 1, 1, 2},
	',':  {0, 0, 0, 2, 4},
	'.':  {0, 0, 0, 0, 2},
	':':  {0, 2, 0, 2, 0},
	'/':  {1, 1, 2, 4, 4},
	'_':  {0, 0, 0, 0, 7},
	'%':  {5, 1, 2, 4, 5},
	'\'': {2, 2, 0, 0, 0},
	'?':  {7, 1, 2, 0, 2},
}

/// DrawText using the built-in font. Letters are shown upper case and
/// unknown characters as '?'.
///
func DrawText(s string, x, y int32) {
	for _, c := range s {
		if c != ' ' {
			glyph, ok := Glyphs[unicode.ToUpper(c)]
			if !ok {
				glyph = Glyphs['?']
			}

			// plot each lit pixel of the glyph
			for row, bits := range glyph {
				for col := int32(0); col < 3; col++ {
					if bits&(4>>uint(col)) != 0 {
						Renderer.DrawPoint(x+col, y+int32(row))
					}
				}
			}
		}

		// advance
		x += Advance
	}
}
