/******************************************************************************/
/* lua_table.go                                                               */
/******************************************************************************/
/*                           This file is part of:                            */
/*                                KAIJU ENGINE                                */
/*                          https://kaijuengine.org                           */
/******************************************************************************/
/* MIT License                                                                */
/*                                                                            */
/* Copyright (c) 2023-present Kaiju Engine authors (AUTHORS.md).              */
/* Copyright (c) 2015-present Brent Farris.                                   */
/*                                                                            */
/* May all those that this source may reach be blessed by the LORD and find   */
/* peace and joy in life.                                                     */
/* Everyone who drinks of this water will be thirsty again; but whoever       */
/* drinks of the water that I will give him shall never thirst; John 4:13-14  */
/*                                                                            */
/* Permission is hereby granted, free of charge, to any person obtaining a    */
/* copy of this software and associated documentation files (the "Software"), */
/* to deal in the Software without restriction, including without limitation  */
/* the rights to use, copy, modify, merge, publish, distribute, sublicense,   */
/* and/or sell copies of the Software, and to permit persons to whom the      */
/* Software is furnished to do so, subject to the following conditions:       */
/*                                                                            */
/* The above copyright, blessing, biblical verse, notice and                  */
/* this permission notice shall be included in all copies or                  */
/* substantial portions of the Software.                                      */
/*                                                                            */
/* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS    */
/* OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF                 */
/* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.     */
/* IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY       */
/* CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT  */
/* OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE      */
/* OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.                              */
/******************************************************************************/

package lua_table

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fnt2lua/bmfont"
)

const indent = "    "

// Format renders the decoded font as a Lua chunk whose single return value
// is a table: a numeric Size and a Characters table keyed by glyph, each
// entry listing atlas size, atlas position, draw offset and advance. The
// entries are emitted in ascending codepoint order so the same descriptor
// always produces the same bytes
func Format(font *bmfont.Font) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "return {\n%sSize = %d,\n%sCharacters = {\n", indent, font.Size, indent)
	for _, id := range font.SortedCodepoints() {
		g := font.Glyphs[id]
		fmt.Fprintf(&sb, "%s%s[\"%s\"] = { Vector2.new(%d, %d), Vector2.new(%d, %d), Vector2.new(%d, %d), %d },\n",
			indent, indent, keyFor(id),
			g.Size.Width, g.Size.Height,
			g.Position.X, g.Position.Y,
			g.Offset.X, g.Offset.Y,
			g.Advance)
	}
	fmt.Fprintf(&sb, "%s}\n}\n", indent)
	return sb.String()
}

// keyFor renders a codepoint as the body of a quoted Lua string key.
// Codepoints 0 and 13 collapse to the empty key, quotes and backslashes
// are escaped, and control characters or values outside the Unicode scalar
// range fall back to a \u{HEX} escape. Everything else is written as the
// character itself
func keyFor(id uint32) string {
	if id == 0 || id == 13 {
		return ""
	}
	r := rune(id)
	if !utf8.ValidRune(r) {
		return fmt.Sprintf(`\u{%X}`, id)
	}
	switch r {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	if unicode.IsControl(r) {
		return fmt.Sprintf(`\u{%X}`, id)
	}
	return string(r)
}
