//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build windows

package main

import "github.com/pkg/errors"

// setRawIO is unsupported on Windows hosts: the shell falls back to
// plain line-buffered input without history recall.
func setRawIO() (func(), error) {
	return nil, errors.New("raw IO not supported on this platform")
}
