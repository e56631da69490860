/******************************************************************************/
/* shell.go                                                                   */
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
	"log/slog"

	"fnt2lua/lua_table"
)

// Severity tags a status message for display
type Severity uint8

const (
	StatusInfo Severity = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// FilePicker asks the user for the input descriptor. ok is false when the
// dialog was cancelled
type FilePicker interface {
	PickFont() (path string, ok bool)
}

// SavePicker asks the user where the generated table should go
type SavePicker interface {
	PickOutput() (path string, ok bool)
}

// StatusSink displays a message with its severity
type StatusSink interface {
	Status(message string, severity Severity)
}

// Controller drives one conversion at a time on behalf of a graphical
// shell. The shell supplies the dialogs and the message area; the
// controller owns the selected path and the pipeline. All calls are
// synchronous, so a second conversion cannot start while one is running
type Controller struct {
	open     FilePicker
	save     SavePicker
	status   StatusSink
	selected string
}

func NewController(open FilePicker, save SavePicker, status StatusSink) *Controller {
	return &Controller{open: open, save: save, status: status}
}

// SelectFile prompts for a descriptor and remembers the choice. A
// cancelled dialog keeps the previous selection
func (c *Controller) SelectFile() {
	if path, ok := c.open.PickFont(); ok {
		c.selected = path
	}
}

// Selected returns the path chosen by the last successful SelectFile
func (c *Controller) Selected() string {
	return c.selected
}

// ConvertAndSave converts the selected descriptor and writes the result
// wherever the save picker points. Every outcome is reported through the
// status sink; nothing panics across the shell boundary
func (c *Controller) ConvertAndSave() {
	if c.selected == "" {
		c.status.Status("Please select a .fnt file first", StatusWarning)
		return
	}
	text, err := Convert(c.selected)
	if err != nil {
		c.status.Status(ErrParse.Error(), StatusError)
		return
	}
	if err := lua_table.Verify(text); err != nil {
		slog.Warn("generated table failed to load", "file", c.selected, "error", err)
		c.status.Status("generated table failed to load: "+err.Error(), StatusWarning)
	}
	out, ok := c.save.PickOutput()
	if !ok {
		return
	}
	if err := WriteFile(out, text); err != nil {
		c.status.Status(err.Error(), StatusError)
		return
	}
	c.status.Status("Saved to "+out, StatusSuccess)
}
