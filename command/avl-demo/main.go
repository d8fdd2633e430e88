// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-demo - exercise a relaxed balance tree from the command line
//
// inserts integer keys supplied as arguments and shows ordered
// traversal, nearest-match searches and the tree shape
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/mondrake/Rbppavl/avl"
	"github.com/mondrake/Rbppavl/messages"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl-demo"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " show diagnostic events",
		},
		cli.IntFlag{
			Name:  "balance-factor, b",
			Value: 1,
			Usage: " height tolerance `FACTOR`, 1 = classic AVL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sorted",
			Usage:     "insert the keys and list them in order",
			ArgsUsage: " KEY...",
			Action:    runSorted,
		},
		{
			Name:      "nearest",
			Usage:     "insert the keys and resolve a target with the three match modes",
			ArgsUsage: " TARGET KEY...",
			Action:    runNearest,
		},
		{
			Name:      "shape",
			Usage:     "insert the keys and draw the tree",
			ArgsUsage: " KEY...",
			Action:    runShape,
		},
	}

	if err := app.Run(os.Args); err != nil {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// console diagnostic routing for the demo
type demoCallback struct {
	verbose bool
}

// Compare - numeric ordering
func (cb demoCallback) Compare(a interface{}, b interface{}) int {
	x := a.(int)
	y := b.(int)
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// Dump - payload display form
func (cb demoCallback) Dump(a interface{}) string {
	return strconv.Itoa(a.(int))
}

// DiagnosticMessage - echo events to stderr when verbose
func (cb demoCallback) DiagnosticMessage(severity messages.Severity, code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) {
	if cb.verbose {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", severity, source, qualifiedText)
	}
}

// ErrorHandler - surface fatal events as ordinary errors
func (cb demoCallback) ErrorHandler(code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) error {
	return fmt.Errorf("%s", text)
}

// build a tree from the integer arguments
func treeFromArguments(c *cli.Context, arguments []string) (*avl.Tree, error) {
	tree, err := avl.New(demoCallback{verbose: c.GlobalBool("verbose")}, c.GlobalInt("balance-factor"))
	if err != nil {
		return nil, err
	}
	for _, argument := range arguments {
		key, err := strconv.Atoi(argument)
		if err != nil {
			return nil, fmt.Errorf("key: %q is not an integer", argument)
		}
		if _, err := tree.Insert(key); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func runSorted(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("at least one key is required")
	}
	tree, err := treeFromArguments(c, c.Args())
	if err != nil {
		return err
	}
	cursor := tree.NewCursor()
	for payload := cursor.First(); nil != payload; payload = cursor.Next() {
		fmt.Fprintf(c.App.Writer, "%d\n", payload.(int))
	}
	return nil
}

func runNearest(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("a target and at least one key are required")
	}
	target, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("target: %q is not an integer", c.Args().First())
	}
	tree, err := treeFromArguments(c, c.Args().Tail())
	if err != nil {
		return err
	}

	modes := []struct {
		name  string
		match avl.Match
	}{
		{"exact", avl.MatchExact},
		{"prev", avl.MatchPrev},
		{"next", avl.MatchNext},
	}
	for _, mode := range modes {
		payload, err := tree.Find(target, mode.match)
		if err != nil {
			return err
		}
		if nil == payload {
			fmt.Fprintf(c.App.Writer, "%-5s %d → none\n", mode.name, target)
		} else {
			fmt.Fprintf(c.App.Writer, "%-5s %d → %d\n", mode.name, target, payload.(int))
		}
	}
	return nil
}

func runShape(c *cli.Context) error {
	if 0 == c.NArg() {
		return fmt.Errorf("at least one key is required")
	}
	tree, err := treeFromArguments(c, c.Args())
	if err != nil {
		return err
	}
	depth := tree.Print(true)
	fmt.Fprintf(c.App.Writer, "keys: %d  height: %d  depth: %d\n", tree.Count(), tree.Height(), depth)
	return nil
}
