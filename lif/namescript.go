package lif

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

const (
	NameScriptFunction = "filename"
)

// Output naming driven by a user lua script. The script must define a global
// function filename(block, index) which returns the name for that image.
type LuaNamer struct {
	state *lua.LState
	fn    *lua.LFunction
}

func NewLuaNamer(script string) (*LuaNamer, error) {
	L := lua.NewState()
	L.SetGlobal("default_name", L.NewFunction(luaDefaultName))
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, err
	}
	fn, ok := L.GetGlobal(NameScriptFunction).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("name script doesn't define a '%s' function", NameScriptFunction)
	}
	return &LuaNamer{state: L, fn: fn}, nil
}

func LoadLuaNamer(path string) (*LuaNamer, error) {
	script, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewLuaNamer(string(script))
}

// Lets a script fall back to the regular name for some images
func luaDefaultName(L *lua.LState) int {
	block := L.CheckInt(1)
	index := L.CheckInt(2)
	L.Push(lua.LString(DefaultName(uint16(block), index)))
	return 1
}

func (n *LuaNamer) Name(block uint16, index int) (string, error) {
	err := n.state.CallByParam(lua.P{
		Fn:      n.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(block), lua.LNumber(index))
	if err != nil {
		return "", err
	}
	ret := n.state.Get(-1)
	n.state.Pop(1)
	name, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%s returned %s, expected a string", NameScriptFunction, ret.Type())
	}
	if strings.TrimSpace(string(name)) == "" {
		return "", fmt.Errorf("%s returned an empty name", NameScriptFunction)
	}
	return string(name), nil
}

func (n *LuaNamer) Close() {
	n.state.Close()
}
