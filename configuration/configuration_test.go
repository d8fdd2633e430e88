// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondrake/Rbppavl/configuration"
	"github.com/mondrake/Rbppavl/fault"
)

type testConfiguration struct {
	BalanceFactor int    `gluamapper:"balance_factor"`
	Items         int    `gluamapper:"items"`
	Seed          int64  `gluamapper:"seed"`
	Nickname      string `gluamapper:"nickname"`
}

const luaSource = `
local M = {}
M.balance_factor = 3
M.items = 1000
M.seed = 42
M.nickname = "bench-" .. tostring(M.items)
return M
`

// test mapping a Lua table into a struct
func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.lua")
	if err := ioutil.WriteFile(fileName, []byte(luaSource), 0600); nil != err {
		t.Fatalf("cannot write configuration: %s", err)
	}

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NoError(t, err)

	assert.Equal(t, 3, config.BalanceFactor)
	assert.Equal(t, 1000, config.Items)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, "bench-1000", config.Nickname)
}

// test that a file returning anything but a table is rejected
func TestParseConfigurationFileRejectsNonTable(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "scalar.lua")
	if err := ioutil.WriteFile(fileName, []byte("return 42\n"), 0600); nil != err {
		t.Fatalf("cannot write configuration: %s", err)
	}

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrConfigurationIsNotTable, err)
}

// test that only a struct pointer is accepted
func TestParseConfigurationFileRejectsNonPointer(t *testing.T) {
	var config testConfiguration

	err := configuration.ParseConfigurationFile("no-such-file.lua", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	n := 42
	err = configuration.ParseConfigurationFile("no-such-file.lua", &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
