// SPDX-License-Identifier: MIT

package scanner

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/beaconreg/geom"
)

const (
	headerPrefix = "--- scanner "
	headerSuffix = " ---"
)

// Parse reads every scanner block from r and validates each scanner.
// Returns ErrEmptyInput when r holds no blocks, a *ParseError for malformed
// lines, or a wrapped validation sentinel.
// Complexity: O(total lines).
func Parse(r io.Reader) ([]Scanner, error) {
	var (
		out    []Scanner
		cur    *Scanner
		lineNo int
		sc     = bufio.NewScanner(r)
	)
	// flush validates and stores the open block, if any.
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := cur.Validate(); err != nil {
			return err
		}
		out = append(out, *cur)
		cur = nil
		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		// blank line closes the current block
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		// a header always opens a new block, even without a blank separator
		if strings.HasPrefix(line, "---") {
			if err := flush(); err != nil {
				return nil, err
			}
			id, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			cur = &Scanner{ID: id}
			continue
		}

		if cur == nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrBadHeader}
		}
		p, err := parseBeacon(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		cur.Beacons = append(cur.Beacons, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// parseHeader extracts N from "--- scanner N ---".
func parseHeader(line string) (int, error) {
	if !strings.HasPrefix(line, headerPrefix) || !strings.HasSuffix(line, headerSuffix) {
		return 0, ErrBadHeader
	}
	body := strings.TrimSuffix(strings.TrimPrefix(line, headerPrefix), headerSuffix)
	id, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil || id < 0 {
		return 0, ErrBadHeader
	}
	return id, nil
}

// parseBeacon parses "x,y,z".
func parseBeacon(line string) (geom.Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return geom.Point{}, ErrBadBeacon
	}
	var p geom.Point
	for axis, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.Point{}, ErrBadBeacon
		}
		p[axis] = v
	}
	return p, nil
}
