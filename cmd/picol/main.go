//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command picol is the minimal driver for the interpreter: after
// sourcing init.pcl from the working directory (if present) it runs a
// script file, a -e expression, or, with no arguments, a read-eval
// loop over stdin that prints "[rc] text" whenever rc is non-zero or
// text is non-empty.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbohdan/picol-sub000/picol"
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:          "picol [script] [arg ...]",
	Short:        "picol - an embeddable Tcl-family interpreter",
	SilenceUsage: true,
	Args:         cobra.ArbitraryArgs,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate the given script text and exit")
}

func run(cmd *cobra.Command, args []string) error {
	ip := picol.NewInterpreter()

	if _, err := os.Stat("init.pcl"); err == nil {
		ip.Source("init.pcl")
	}

	if evalExpr != "" {
		code, terr := ip.Eval(evalExpr)
		return report(ip, code, terr)
	}

	if len(args) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("picol> ")
			if !sc.Scan() {
				return nil
			}
			code, _ := ip.Eval(sc.Text())
			if code != picol.Ok || ip.Result() != "" {
				fmt.Printf("[%d] %s\n", code, ip.Result())
			}
		}
	}

	ip.SetVar("argv0", args[0])
	ip.SetVar("argv", joinArgs(args[1:]))
	ip.SetIntVar("argc", int64(len(args)-1))

	code, terr := ip.Source(args[0])
	return report(ip, code, terr)
}

func joinArgs(args []string) string {
	out := ""
	for _, a := range args {
		if out != "" {
			out += " "
		}
		out += a
	}
	return out
}

func report(ip *picol.Interpreter, code picol.ReturnCode, err *picol.TclError) error {
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if code == picol.Ok && ip.Result() != "" {
		fmt.Println(ip.Result())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
