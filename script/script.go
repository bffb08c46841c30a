// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"math"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

// largest magnitude a Lua number can hold without losing integer precision
const maxExactKey = 1 << 53

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/avltree/script Store

// Store - the tree operations made available to a script
type Store interface {
	Insert(key int, value lua.LValue) bool
	Delete(key int) (lua.LValue, bool)
	Get(key int) (lua.LValue, bool)
	Count() int
	Height() int
	Keys() []int
	Check() error
	Print(w io.Writer, printData bool) (int, error)
}

// Runner - executes scripts against a single store
type Runner struct {
	store Store
	w     io.Writer
	log   *logger.L
}

// New - create a runner, print output goes to w
func New(store Store, w io.Writer, log *logger.L) (*Runner, error) {
	if nil == store || nil == w {
		return nil, fault.ErrMissingParameters
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		store: store,
		w:     w,
		log:   log,
	}, nil
}

// RunFile - read a script from the file system and run it
func (r *Runner) RunFile(fs afero.Fs, fileName string) error {
	f, err := fs.Open(fileName)
	if nil != err {
		return errors.Wrapf(err, "open script: %q", fileName)
	}
	defer f.Close()

	return r.Run(fileName, f)
}

// Run - compile and execute a script, name is used in error messages
func (r *Runner) Run(name string, reader io.Reader) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()
	r.register(L)

	fn, err := L.Load(reader, name)
	if nil != err {
		return errors.Wrapf(err, "load script: %q", name)
	}

	r.log.Debugf("run script: %q", name)

	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); nil != err {
		return errors.Wrapf(err, "run script: %q", name)
	}
	return nil
}

func (r *Runner) register(L *lua.LState) {
	functions := map[string]lua.LGFunction{
		"insert": r.insert,
		"delete": r.delete,
		"search": r.search,
		"count":  r.count,
		"height": r.height,
		"keys":   r.keys,
		"check":  r.check,
		"print":  r.print,
		"log":    r.logMessage,
	}
	for name, fn := range functions {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// fetch argument n as a tree key, raising a Lua error if it is not
// an exact integer
func checkKey(L *lua.LState, n int) int {
	f := float64(L.CheckNumber(n))
	if f != math.Trunc(f) || math.Abs(f) > maxExactKey {
		L.ArgError(n, fault.ErrInvalidKey.Error())
	}
	return int(f)
}

func (r *Runner) insert(L *lua.LState) int {
	key := checkKey(L, 1)
	value := lua.LValue(lua.LNumber(key))
	if L.GetTop() >= 2 {
		value = L.Get(2)
	}
	L.Push(lua.LBool(r.store.Insert(key, value)))
	return 1
}

func (r *Runner) delete(L *lua.LState) int {
	value, ok := r.store.Delete(checkKey(L, 1))
	if !ok {
		value = lua.LNil
	}
	L.Push(value)
	return 1
}

func (r *Runner) search(L *lua.LState) int {
	value, ok := r.store.Get(checkKey(L, 1))
	if !ok {
		value = lua.LNil
	}
	L.Push(value)
	return 1
}

func (r *Runner) count(L *lua.LState) int {
	L.Push(lua.LNumber(r.store.Count()))
	return 1
}

func (r *Runner) height(L *lua.LState) int {
	L.Push(lua.LNumber(r.store.Height()))
	return 1
}

func (r *Runner) keys(L *lua.LState) int {
	t := L.NewTable()
	for _, key := range r.store.Keys() {
		t.Append(lua.LNumber(key))
	}
	L.Push(t)
	return 1
}

func (r *Runner) check(L *lua.LState) int {
	if err := r.store.Check(); nil != err {
		r.log.Errorf("check failed: %s", err)
		L.RaiseError("check: %s", err)
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runner) print(L *lua.LState) int {
	printData := L.OptBool(1, false)
	depth, err := r.store.Print(r.w, printData)
	if nil != err {
		L.RaiseError("print: %s", err)
	}
	L.Push(lua.LNumber(depth))
	return 1
}

func (r *Runner) logMessage(L *lua.LState) int {
	r.log.Info(L.CheckString(1))
	return 0
}
