package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubOpen struct {
	path string
	ok   bool
}

func (s stubOpen) PickFont() (string, bool) { return s.path, s.ok }

type stubSave struct {
	path string
	ok   bool
}

func (s stubSave) PickOutput() (string, bool) { return s.path, s.ok }

type recordedStatus struct {
	message  string
	severity Severity
}

type statusRecorder struct {
	log []recordedStatus
}

func (r *statusRecorder) Status(message string, severity Severity) {
	r.log = append(r.log, recordedStatus{message, severity})
}

func (r *statusRecorder) last(t *testing.T) recordedStatus {
	t.Helper()
	if len(r.log) == 0 {
		t.Fatal("no status was reported")
	}
	return r.log[len(r.log)-1]
}

func TestControllerNoSelection(t *testing.T) {
	sink := &statusRecorder{}
	c := NewController(stubOpen{ok: false}, stubSave{}, sink)
	c.SelectFile()
	if c.Selected() != "" {
		t.Errorf("cancelled pick selected %q", c.Selected())
	}
	c.ConvertAndSave()
	got := sink.last(t)
	if got.message != "Please select a .fnt file first" || got.severity != StatusWarning {
		t.Errorf("got %+v", got)
	}
}

func TestControllerParseFailure(t *testing.T) {
	path := writeTestFont(t, `<font><chars><char id="oops"/></chars></font>`)
	sink := &statusRecorder{}
	c := NewController(stubOpen{path: path, ok: true}, stubSave{}, sink)
	c.SelectFile()
	c.ConvertAndSave()
	got := sink.last(t)
	if got.message != "error parsing file" || got.severity != StatusError {
		t.Errorf("got %+v", got)
	}
}

func TestControllerSaveCancelled(t *testing.T) {
	path := writeTestFont(t, testDoc)
	sink := &statusRecorder{}
	c := NewController(stubOpen{path: path, ok: true}, stubSave{ok: false}, sink)
	c.SelectFile()
	c.ConvertAndSave()
	if len(sink.log) != 0 {
		t.Errorf("cancelled save still reported %+v", sink.log)
	}
}

func TestControllerSaveFailure(t *testing.T) {
	path := writeTestFont(t, testDoc)
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "font.lua")
	sink := &statusRecorder{}
	c := NewController(stubOpen{path: path, ok: true}, stubSave{path: out, ok: true}, sink)
	c.SelectFile()
	c.ConvertAndSave()
	got := sink.last(t)
	if !strings.HasPrefix(got.message, "error saving file") || got.severity != StatusError {
		t.Errorf("got %+v", got)
	}
}

func TestControllerRoundTrip(t *testing.T) {
	path := writeTestFont(t, testDoc)
	out := filepath.Join(t.TempDir(), "font.lua")
	sink := &statusRecorder{}
	c := NewController(stubOpen{path: path, ok: true}, stubSave{path: out, ok: true}, sink)
	c.SelectFile()
	if c.Selected() != path {
		t.Fatalf("selected %q, want %q", c.Selected(), path)
	}
	c.ConvertAndSave()
	got := sink.last(t)
	if got.message != "Saved to "+out || got.severity != StatusSuccess {
		t.Errorf("got %+v", got)
	}
	written, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Convert(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != want {
		t.Errorf("saved file does not match conversion output:\n%s", written)
	}
}

// A second pick keeps the old selection when the dialog is cancelled.
func TestControllerReselect(t *testing.T) {
	path := writeTestFont(t, testDoc)
	sink := &statusRecorder{}
	open := &switchableOpen{path: path, ok: true}
	c := NewController(open, stubSave{}, sink)
	c.SelectFile()
	open.ok = false
	c.SelectFile()
	if c.Selected() != path {
		t.Errorf("selection lost after cancelled dialog: %q", c.Selected())
	}
}

type switchableOpen struct {
	path string
	ok   bool
}

func (s *switchableOpen) PickFont() (string, bool) { return s.path, s.ok }
