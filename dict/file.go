// Copyright 2026 Abydos Authors.
// All rights reserved.

package dict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

// Read reads a newline-delimited name list from r.
// Blank lines are skipped and trailing '\r' characters are trimmed.
func Read(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadFile reads a newline-delimited name list.
// Blank lines are skipped and trailing '\r' characters are trimmed.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	// Zero-length mappings fail on some platforms.
	if fi.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %v: %v", path, err)
	}
	defer m.Unmap()

	var names []string
	for _, line := range bytes.Split(m, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}
		// The string conversion copies, so names outlive the mapping.
		names = append(names, string(line))
	}
	return names, nil
}
