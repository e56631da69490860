/******************************************************************************/
/* bmfont.go                                                                  */
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

package bmfont

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Point is a pixel coordinate pair within the font atlas
type Point struct {
	X int32
	Y int32
}

// Extent is the pixel width and height of a glyph's atlas subrectangle
type Extent struct {
	Width  int32
	Height int32
}

// Glyph holds the metrics read from a single <char> element. Position and
// Size locate the glyph inside the atlas image, Offset is applied relative
// to the pen when the glyph is placed, and Advance is the pen motion after
// drawing it
type Glyph struct {
	Size     Extent
	Position Point
	Offset   Point
	Advance  int32
}

// Font is the decoded descriptor: the nominal point size from <info> and
// one Glyph per <char>, keyed by codepoint
type Font struct {
	Size   int32
	Glyphs map[uint32]Glyph
}

// SortedCodepoints returns the glyph codepoints in ascending order
func (f *Font) SortedCodepoints() []uint32 {
	ids := maps.Keys(f.Glyphs)
	slices.Sort(ids)
	return ids
}

const (
	elemOther = iota
	elemInfo
	elemChar
)

// Decode reads a BMFont XML descriptor and collects the nominal font size
// and the per-glyph metrics. Only <info size=""> and the <char> metric
// attributes are read; every other element and attribute is skipped, and a
// metric attribute that is missing stays zero. A duplicated codepoint keeps
// the last definition seen. Both <char .../> and <char ...></char> forms
// are accepted. The partially filled Font is returned alongside any error
func Decode(text string) (*Font, error) {
	font := &Font{Glyphs: map[uint32]Glyph{}}
	lexer := xml.NewLexer(parse.NewInputString(text))
	state := elemOther
	var id uint32
	var glyph Glyph
	for {
		tt, _ := lexer.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				slog.Error("failed to lex font descriptor", "error", err)
				return font, fmt.Errorf("lex descriptor: %w", err)
			}
			return font, nil
		case xml.StartTagToken:
			switch string(lexer.Text()) {
			case "char":
				state = elemChar
				id = 0
				glyph = Glyph{}
			case "info":
				state = elemInfo
			default:
				state = elemOther
			}
		case xml.StartTagPIToken, xml.EndTagToken:
			state = elemOther
		case xml.AttributeToken:
			if state == elemOther {
				break
			}
			name := string(lexer.Text())
			val := unquote(lexer.AttrVal())
			if state == elemInfo {
				if name == "size" {
					n, err := parseMetric(name, val)
					if err != nil {
						return font, err
					}
					font.Size = n
				}
				break
			}
			if name == "id" {
				cp, err := strconv.ParseUint(val, 10, 32)
				if err != nil {
					return font, fmt.Errorf("char attribute id=%q: %w", val, err)
				}
				id = uint32(cp)
				break
			}
			target, ok := metricField(&glyph, name)
			if !ok {
				break
			}
			n, err := parseMetric(name, val)
			if err != nil {
				return font, err
			}
			*target = n
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			if state == elemChar {
				font.Glyphs[id] = glyph
			}
			state = elemOther
		}
	}
}

// DecodeFile reads the descriptor at path. The file must be UTF-8; a
// leading byte order mark is tolerated since BMFont on Windows writes one
func DecodeFile(path string) (*Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, _, err := transform.Bytes(transform.Chain(
		encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Decode(string(text))
}

func metricField(g *Glyph, name string) (*int32, bool) {
	switch name {
	case "x":
		return &g.Position.X, true
	case "y":
		return &g.Position.Y, true
	case "width":
		return &g.Size.Width, true
	case "height":
		return &g.Size.Height, true
	case "xoffset":
		return &g.Offset.X, true
	case "yoffset":
		return &g.Offset.Y, true
	case "xadvance":
		return &g.Advance, true
	}
	return nil, false
}

func parseMetric(name, val string) (int32, error) {
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("attribute %s=%q: %w", name, val, err)
	}
	return int32(n), nil
}

// the lexer hands attribute values back with their surrounding quotes
func unquote(raw []byte) string {
	if len(raw) > 1 && (raw[0] == '"' || raw[0] == '\'') {
		raw = raw[1 : len(raw)-1]
	}
	return string(raw)
}
