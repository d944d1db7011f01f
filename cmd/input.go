// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/untou3/gelfand"
)

// readFields returns args when present, otherwise the first n
// whitespace-separated words of r.
func readFields(args []string, r io.Reader, n int) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	fields := make([]string, 0, n)
	for len(fields) < n && sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return fields, nil
}

// readPattern parses r4 r3 r2 r1 r0 from args or r.
func readPattern(args []string, r io.Reader) (gelfand.Pattern, error) {
	fields, err := readFields(args, r, gelfand.Size)
	if err != nil {
		return gelfand.Pattern{}, err
	}
	p, err := gelfand.Parse(fields)
	if err != nil {
		return gelfand.Pattern{}, fmt.Errorf("pattern %v: %w", fields, err)
	}

	return p, nil
}

// readShellAndPattern parses n r4 r3 r2 r1 r0 from args or r.
func readShellAndPattern(args []string, r io.Reader) (int, gelfand.Pattern, error) {
	fields, err := readFields(args, r, gelfand.Size+1)
	if err != nil {
		return 0, gelfand.Pattern{}, err
	}
	if len(fields) != gelfand.Size+1 {
		return 0, gelfand.Pattern{}, fmt.Errorf("expected %d numbers (n r4 r3 r2 r1 r0), got %d", gelfand.Size+1, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, gelfand.Pattern{}, fmt.Errorf("invalid shell %q", fields[0])
	}
	p, err := gelfand.Parse(fields[1:])
	if err != nil {
		return 0, gelfand.Pattern{}, fmt.Errorf("pattern %v: %w", fields[1:], err)
	}

	return n, p, nil
}
