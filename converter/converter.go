/******************************************************************************/
/* converter.go                                                               */
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

package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fnt2lua/bmfont"
	"fnt2lua/lua_table"
)

var (
	// ErrParse covers unreadable input, invalid UTF-8 and descriptor
	// decode failures
	ErrParse = errors.New("error parsing file")
	// ErrSave covers any failure while writing the generated table
	ErrSave = errors.New("error saving file")
)

// Convert reads the BMFont descriptor at path and renders it as a Lua
// table chunk. It is a pure function of the file's bytes; nothing is
// written anywhere
func Convert(path string) (string, error) {
	font, err := bmfont.DecodeFile(path)
	if err != nil {
		slog.Error("failed to parse font descriptor", "file", path, "error", err)
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}
	return lua_table.Format(font), nil
}

// WriteFile writes the rendered chunk to path, replacing any existing file
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		slog.Error("failed to write lua table", "file", path, "error", err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
