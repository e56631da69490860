package lua_table

import (
	"errors"
	"fmt"

	lua "github.com/KaijuEngine/go-lua"
)

// Verify loads a rendered chunk into a scratch Lua state with a stand-in
// Vector2.new and checks that it returns a table carrying a numeric Size
// and a Characters table. go-lua is a Lua 5.2 implementation, so chunks
// holding \u{} escapes (control-character glyphs) fail to load here even
// though newer runtimes accept them
func Verify(src string) error {
	l := lua.NewState()
	RegisterVector2(l)
	if err := lua.DoString(l, src); err != nil {
		return fmt.Errorf("load chunk: %w", err)
	}
	if !l.IsTable(-1) {
		return errors.New("chunk did not return a table")
	}
	l.Field(-1, "Size")
	if _, ok := l.ToNumber(-1); !ok {
		return errors.New("Size is not a number")
	}
	l.Pop(1)
	l.Field(-1, "Characters")
	if !l.IsTable(-1) {
		return errors.New("Characters is not a table")
	}
	l.Pop(2)
	return nil
}

// RegisterVector2 installs a Vector2 global whose new constructor builds a
// plain {X, Y} table, mimicking the runtime the emitted table targets
func RegisterVector2(l *lua.State) {
	l.NewTable()
	l.PushGoFunction(func(l *lua.State) int {
		x, _ := l.ToNumber(1)
		y, _ := l.ToNumber(2)
		l.NewTable()
		l.PushNumber(x)
		l.SetField(-2, "X")
		l.PushNumber(y)
		l.SetField(-2, "Y")
		return 1
	})
	l.SetField(-2, "new")
	l.SetGlobal("Vector2")
}
