// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func runApp(t *testing.T, fs afero.Fs, arguments ...string) (string, string, error) {
	var w bytes.Buffer
	var e bytes.Buffer
	app := newApp(&w, &e, fs)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(" 50, 30,70 ,-4")
	require.Nil(t, err, "parse failed")
	assert.Equal(t, []int{50, 30, 70, -4}, keys, "wrong keys")

	keys, err = parseKeys("")
	assert.Nil(t, err, "empty list rejected")
	assert.Empty(t, keys, "keys from empty list")

	_, err = parseKeys("1,x,3")
	require.NotNil(t, err, "invalid key accepted")
	assert.Contains(t, err.Error(), fault.ErrInvalidKey.Error(), "wrong error")
}

func TestPrintCommand(t *testing.T) {
	out, _, err := runApp(t, afero.NewMemMapFs(), "--keys", "10,20,30", "print")
	require.Nil(t, err, "print failed")

	expected := "       /------+ 30\n" +
		"|------+ 20\n" +
		"       \\------+ 10\n"
	assert.Equal(t, expected, out, "wrong rendering")
}

func TestPrintCommandEmpty(t *testing.T) {
	out, _, err := runApp(t, afero.NewMemMapFs(), "print")
	require.Nil(t, err, "print failed")
	assert.Equal(t, "empty tree\n", out, "wrong output")
}

func TestDeleteCommand(t *testing.T) {
	out, e, err := runApp(t, afero.NewMemMapFs(), "--verbose", "--keys", "50,30,70,20,40,60,80,10", "delete", "50", "99")
	require.Nil(t, err, "delete failed")
	assert.Contains(t, out, "|------+ 40\n", "wrong root")
	assert.NotContains(t, out, "+ 50\n", "key not deleted")
	assert.Equal(t, "not present: 99\n", e, "missing key not reported")
}

func TestDeleteCommandToEmpty(t *testing.T) {
	out, _, err := runApp(t, afero.NewMemMapFs(), "--keys", "5", "delete", "5")
	require.Nil(t, err, "delete failed")
	assert.Equal(t, "empty tree\n", out, "wrong output")
}

func TestInsertCommand(t *testing.T) {
	out, _, err := runApp(t, afero.NewMemMapFs(), "insert", "30", "10", "20")
	require.Nil(t, err, "insert failed")
	assert.Contains(t, out, "|------+ 20\n", "wrong root")
}

func TestInsertCommandRequiresKeys(t *testing.T) {
	_, _, err := runApp(t, afero.NewMemMapFs(), "insert")
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := runApp(t, afero.NewMemMapFs(), "--keys", "1,2,3,4,5,6,7", "check")
	require.Nil(t, err, "check failed")
	assert.Equal(t, "count: 7  height: 3  rotations: 4\n", out, "wrong summary")
}

func TestRunCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := `
insert(15)
assert(search(10) == 10)
assert(delete(20) == 20)
print()
`
	require.Nil(t, afero.WriteFile(fs, "/test.lua", []byte(source), 0600), "write script")

	out, _, err := runApp(t, fs, "--log-directory", t.TempDir(), "--keys", "10,20,30", "run", "/test.lua")
	require.Nil(t, err, "run failed")
	assert.Contains(t, out, "+ 15\n", "inserted key missing")
	assert.NotContains(t, out, "+ 20\n", "deleted key present")
}

// watcher output is written from another goroutine
type syncBuffer struct {
	sync.Mutex
	b bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.Lock()
	defer s.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.Lock()
	defer s.Unlock()
	return s.b.String()
}

func TestWatchScript(t *testing.T) {
	dir := t.TempDir()

	logging := logger.Configuration{
		Directory: dir,
		File:      "watch.log",
		Size:      logSize,
		Count:     logCount,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.Nil(t, logger.Initialise(logging), "logger setup")
	defer logger.Finalise()

	fileName := filepath.Join(dir, "watch.lua")
	require.Nil(t, os.WriteFile(fileName, []byte("insert(1)\nprint()\n"), 0600), "write script")

	var w syncBuffer
	var e syncBuffer
	m := &metadata{
		keys: []int{10},
		fs:   afero.NewOsFs(),
		w:    &w,
		e:    &e,
	}

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchScript(m, logger.New("watch-test"), fileName, stop)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "+ 1\n")
	}, 5*time.Second, 10*time.Millisecond, "initial run missing")

	require.Nil(t, os.WriteFile(fileName, []byte("insert(2)\nprint()\n"), 0600), "rewrite script")

	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "+ 2\n")
	}, 5*time.Second, 10*time.Millisecond, "no run after write")

	stop <- os.Interrupt

	select {
	case err := <-done:
		assert.Nil(t, err, "watch error")
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
