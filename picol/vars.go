//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// arrayBuckets is the fixed bucket count of the associative-array hash
// table (§3, §4.3): a compile-time constant, not a growable table.
const arrayBuckets = 16

// arrayEntry is one (key, value) pair in an open-chain bucket.
type arrayEntry struct {
	key, value string
	next       *arrayEntry
}

// arrayTable is a fixed-size open-chain hash table. isEnv marks the
// virtual ::env array, whose misses fall through to the process
// environment.
type arrayTable struct {
	buckets [arrayBuckets]*arrayEntry
	size    int
	isEnv   bool
}

// arrayHash is a simple shift-xor hash, matching §4.3's "simple
// shift-xor hash modulo the bucket count".
func arrayHash(key string) int {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = (h << 5) ^ (h >> 2) ^ uint32(key[i])
	}
	return int(h % arrayBuckets)
}

func (a *arrayTable) get(key string) (string, bool) {
	b := arrayHash(key)
	for e := a.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

func (a *arrayTable) set(key, value string) {
	b := arrayHash(key)
	for e := a.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}
	a.buckets[b] = &arrayEntry{key: key, value: value, next: a.buckets[b]}
	a.size++
}

func (a *arrayTable) unset(key string) bool {
	b := arrayHash(key)
	var prev *arrayEntry
	for e := a.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				a.buckets[b] = e.next
			} else {
				prev.next = e.next
			}
			a.size--
			return true
		}
		prev = e
	}
	return false
}

func (a *arrayTable) names() []string {
	names := make([]string, 0, a.size)
	for _, b := range a.buckets {
		for e := b; e != nil; e = e.next {
			names = append(names, e.key)
		}
	}
	return names
}

// statistics reports, per bucket, the chain depth, for test
// observability ('array statistics').
func (a *arrayTable) statistics() []int {
	depths := make([]int, arrayBuckets)
	for i, b := range a.buckets {
		n := 0
		for e := b; e != nil; e = e.next {
			n++
		}
		depths[i] = n
	}
	return depths
}

// splitArrayRef splits "name(key)" into name and key. ok is false if
// name contains no array-element syntax.
func splitArrayRef(name string) (base, key string, ok bool) {
	i := strings.IndexByte(name, '(')
	if i < 0 || name[len(name)-1] != ')' {
		return name, "", false
	}
	return name[:i], name[i+1 : len(name)-1], true
}

// resolveName strips a leading "::" (global-frame qualifier).
func resolveName(name string) (stripped string, forceGlobal bool) {
	if strings.HasPrefix(name, "::") {
		return name[2:], true
	}
	return name, false
}

// scalarSlot locates the *string slot backing a plain (non-array)
// variable name in the given frame, following a redirect to the
// global frame when the local slot holds a nil value (installed by
// 'global'/'variable').
func (ip *Interpreter) scalarSlot(f *frame, name string) (*string, bool) {
	slot, ok := f.vars[name]
	if !ok {
		return nil, false
	}
	if slot == nil {
		// redirect placeholder: read through to global
		gslot, gok := ip.globalFrame().vars[name]
		if !gok {
			return nil, false
		}
		return gslot, true
	}
	return slot, true
}

// GetVariable reads a variable from the current frame (or the global
// frame, if the name is "::"-qualified or forceGlobal is set).
// Array-element syntax name(key) is recognized lexically.
func (ip *Interpreter) GetVariable(name string) (string, *TclError) {
	name, forceGlobal := resolveName(name)
	if base, key, isArray := splitArrayRef(name); isArray {
		return ip.getArrayElement(base, key, forceGlobal)
	}
	f := ip.currentFrame()
	if forceGlobal {
		f = ip.globalFrame()
	}
	slot, ok := ip.scalarSlot(f, name)
	if !ok {
		return "", newErrorf(ENAME, "can't read %q: no such variable", name)
	}
	if slot == nil {
		return "", newErrorf(ENAME, "can't read %q: no such variable", name)
	}
	return *slot, nil
}

// SetVariable writes a variable in the current frame (or global, if
// "::"-qualified or forceGlobal). A local slot that already holds a
// redirect (nil) writes through to the global frame; a missing local
// name containing array syntax auto-creates the array.
func (ip *Interpreter) SetVariable(name, value string) *TclError {
	name, forceGlobal := resolveName(name)
	if base, key, isArray := splitArrayRef(name); isArray {
		return ip.setArrayElement(base, key, value, forceGlobal)
	}
	f := ip.currentFrame()
	if forceGlobal {
		f = ip.globalFrame()
	}
	if slot, ok := f.vars[name]; ok {
		if slot == nil {
			// redirect: write through to global
			gv := value
			if gslot, gok := ip.globalFrame().vars[name]; gok && gslot != nil {
				*gslot = value
			} else {
				ip.globalFrame().vars[name] = &gv
			}
			return nil
		}
		*slot = value
		return nil
	}
	v := value
	f.vars[name] = &v
	return nil
}

// SetIntVariable formats an integer and sets it, per SetIntVar.
func (ip *Interpreter) SetIntVariable(name string, value int64) *TclError {
	return ip.SetVariable(name, strconv.FormatInt(value, 10))
}

// SetFmtVariable formats per format/args and sets the result.
func (ip *Interpreter) SetFmtVariable(name, format string, args ...interface{}) *TclError {
	return ip.SetVariable(name, fmt.Sprintf(format, args...))
}

// installRedirect installs a redirect-to-global placeholder for name
// in the current frame, the mechanism behind 'global' and 'variable'.
// If initial is non-nil and the global doesn't already exist, the
// global is seeded with that value.
func (ip *Interpreter) installRedirect(name string, initial *string) {
	f := ip.currentFrame()
	f.vars[name] = nil
	if initial != nil {
		if _, ok := ip.globalFrame().vars[name]; !ok {
			v := *initial
			ip.globalFrame().vars[name] = &v
		}
	} else if _, ok := ip.globalFrame().vars[name]; !ok {
		var v string
		ip.globalFrame().vars[name] = &v
	}
}

// arrayHandleFor resolves the array header handle stored in the
// scalar slot named base, auto-creating it when missing and
// autoCreate is true.
func (ip *Interpreter) arrayHandleFor(base string, forceGlobal, autoCreate bool) (*arrayTable, *TclError) {
	f := ip.currentFrame()
	if forceGlobal {
		f = ip.globalFrame()
	}
	slot, ok := ip.scalarSlot(f, base)
	if ok && slot != nil && *slot != "" {
		if t, found := ip.arrays.get(handle(*slot)); found {
			return t.(*arrayTable), nil
		}
		return nil, newErrorf(ENAME, "%q is not an array", base)
	}
	if !autoCreate {
		return nil, newErrorf(ENAME, "can't read %q: no such array", base)
	}
	table := &arrayTable{isEnv: base == "env" && forceGlobal}
	h := ip.arrays.alloc(table)
	v := string(h)
	f.vars[base] = &v
	return table, nil
}

func (ip *Interpreter) getArrayElement(base, key string, forceGlobal bool) (string, *TclError) {
	table, err := ip.arrayHandleFor(base, forceGlobal, base == "env")
	if err != nil {
		return "", err
	}
	if v, ok := table.get(key); ok {
		return v, nil
	}
	if table.isEnv {
		if v, ok := os.LookupEnv(key); ok {
			table.set(key, v)
			return v, nil
		}
	}
	return "", newErrorf(ENAME, "can't read %q: no such element in array", base+"("+key+")")
}

func (ip *Interpreter) setArrayElement(base, key, value string, forceGlobal bool) *TclError {
	table, err := ip.arrayHandleFor(base, forceGlobal, true)
	if err != nil {
		return err
	}
	table.set(key, value)
	return nil
}
