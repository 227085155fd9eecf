// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ScopeEnv overrides the derived session scope.
const ScopeEnv = "CASEVAULT_SESSION_ID"

const procRoot = "/proc"

// ResolveScope returns the scope sessions are stored under.
// The first non-empty of configured, $CASEVAULT_SESSION_ID and a scope
// derived from the parent process wins. The parent is the invoking shell,
// so two terminals never share a token.
func ResolveScope(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv(ScopeEnv); env != "" {
		return env
	}
	return parentScope(procRoot, os.Getppid())
}

// parentScope names the scope after process ppid. Where procfs is
// available the boot id and the start time of the process are appended, so
// a shell that gets a recycled pid does not inherit the scope of a dead one.
func parentScope(proc string, ppid int) string {
	scope := "ppid-" + strconv.Itoa(ppid)
	if boot, ok := bootID(proc); ok {
		scope += "-" + boot
	}
	if start, ok := processStartTicks(proc, ppid); ok {
		scope += "-" + start
	}
	return scope
}

// processStartTicks returns field 22 (starttime) of /proc/<pid>/stat.
func processStartTicks(proc string, pid int) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(proc, strconv.Itoa(pid), "stat"))
	if err != nil {
		return "", false
	}

	// comm may contain spaces and parentheses; fields after the last ')'
	// start at field 3.
	end := bytes.LastIndexByte(raw, ')')
	if end < 0 {
		return "", false
	}
	fields := strings.Fields(string(raw[end+1:]))
	if len(fields) < 20 {
		return "", false
	}
	if _, err = strconv.ParseUint(fields[19], 10, 64); err != nil {
		return "", false
	}
	return fields[19], true
}

func bootID(proc string) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(proc, "sys", "kernel", "random", "boot_id"))
	if err != nil {
		return "", false
	}
	id := strings.ReplaceAll(strings.TrimSpace(string(raw)), "-", "")
	if len(id) < 8 {
		return "", false
	}
	return id[:8], true
}
