// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// enumFlag accepts a single string from a list of allowed values.
type enumFlag struct {
	val     string   // specified value (also default)
	allowed []string // acceptable values
}

func (ef *enumFlag) String() string { return ef.val }
func (ef *enumFlag) Set(v string) error {
	for _, a := range ef.allowed {
		if v == a {
			ef.val = v
			return nil
		}
	}
	return fmt.Errorf("want %v", strings.Join(ef.allowed, ", "))
}
func (ef *enumFlag) allowedList() string { return strings.Join(ef.allowed, ", ") }

// floatsFlag can be specified multiple times to supply float values.
type floatsFlag []float64

func (ff *floatsFlag) String() string {
	strs := make([]string, len(*ff))
	for i, v := range *ff {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, ",")
}
func (ff *floatsFlag) Set(v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*ff = append(*ff, f)
	return nil
}
