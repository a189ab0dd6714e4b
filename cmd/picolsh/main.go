//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command picolsh is the interactive shell on top of the interpreter:
// it loads ~/.picolshrc on startup, keeps a persistent command history
// in ~/.picolsh_history, and reads input with raw-mode line editing
// where the host supports it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbohdan/picol-sub000/picol"
)

const (
	rcFileName      = ".picolshrc"
	historyFileName = ".picolsh_history"
	maxHistoryLines = 1000
)

var log = logrus.StandardLogger()

var traceFlag bool

var rootCmd = &cobra.Command{
	Use:          "picolsh",
	Short:        "picolsh - an interactive shell for the picol interpreter",
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "enable command tracing to the log")
}

func runShell(cmd *cobra.Command, args []string) error {
	ip := picol.NewInterpreter()
	ip.SetTrace(traceFlag)

	home, _ := os.UserHomeDir()
	rcPath := filepath.Join(home, rcFileName)
	histPath := filepath.Join(home, historyFileName)

	if _, err := os.Stat(rcPath); err == nil {
		log.WithField("path", rcPath).Info("loading init file")
		if code, terr := ip.Source(rcPath); terr != nil {
			log.WithFields(logrus.Fields{"code": code, "error": terr}).Warn("init file reported an error")
		}
	}

	history := loadHistory(histPath)

	fmt.Println("picolsh - an embeddable Tcl-family shell. Type 'exit' to quit.")
	lr := newLineReader(history)
	defer lr.Close()

	for {
		line, ok := lr.readLine("picolsh> ")
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "exit" {
			break
		}
		history = append(history, line)
		lr.history = history

		code, terr := ip.Eval(line)
		if terr != nil {
			fmt.Fprintln(os.Stderr, terr.Error())
			continue
		}
		if code == picol.Ok && ip.Result() != "" {
			fmt.Println(ip.Result())
		}
	}

	saveHistory(histPath, history)
	return nil
}

func loadHistory(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func saveHistory(path string, lines []string) {
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).Warn("could not save history file")
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
