// Package memstat reports the memory usage of the current process by
// parsing the kernel's /proc/self/status pseudo-file. It only works on
// Linux; other platforms get a wrapped not-exist error.
package memstat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const statusPath = "/proc/self/status"

// Usage holds process memory counters, all in bytes.
type Usage struct {
	CurrentResident uint64 // VmRSS
	PeakResident    uint64 // VmHWM
	CurrentVirtual  uint64 // VmSize
	PeakVirtual     uint64 // VmPeak
}

// Sample reads the current process's memory usage.
func Sample() (Usage, error) {
	f, err := os.Open(statusPath)
	if err != nil {
		return Usage{}, fmt.Errorf("memstat: failed to open %s: %w", statusPath, err)
	}
	defer f.Close()
	return parseStatus(f)
}

// parseStatus extracts the Vm counters from a /proc/<pid>/status stream.
// Lines look like "VmRSS:      1234 kB"; the kernel always reports kB.
func parseStatus(r io.Reader) (Usage, error) {
	var u Usage
	seen := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		var dst *uint64
		switch name {
		case "VmRSS":
			dst = &u.CurrentResident
		case "VmHWM":
			dst = &u.PeakResident
		case "VmSize":
			dst = &u.CurrentVirtual
		case "VmPeak":
			dst = &u.PeakVirtual
		default:
			continue
		}

		kb, err := parseKB(rest)
		if err != nil {
			return Usage{}, fmt.Errorf("memstat: bad %s line %q: %w", name, line, err)
		}
		*dst = kb * 1024
		seen++
	}
	if err := scanner.Err(); err != nil {
		return Usage{}, fmt.Errorf("memstat: failed to read status: %w", err)
	}
	if seen == 0 {
		return Usage{}, fmt.Errorf("memstat: no Vm counters found")
	}
	return u, nil
}

func parseKB(s string) (uint64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing value")
	}
	if len(fields) > 1 && fields[1] != "kB" {
		return 0, fmt.Errorf("unexpected unit %q", fields[1])
	}
	return strconv.ParseUint(fields[0], 10, 64)
}
