package main

import (
	"bufio"
	"fmt"
	"io"
)

// defaultLiteralBuffer is the 100 KiB numeric-literal bound of spec §6.2.
const defaultLiteralBuffer = 100 * 1024

// scannerBuffer is sized comfortably above the largest literal a line can
// carry, since bufio.Scanner's default 64 KiB buffer is smaller than the
// literal bound it must accommodate.
const scannerBuffer = defaultLiteralBuffer * 2

// run reads expressions from r line by line, printing each result's decimal
// form to w. It stops at the first error, reporting it to errw and
// returning a non-zero-exit signal — it never prints a partial result
// (spec §7).
func run(r io.Reader, w io.Writer, errw io.Writer, maxLiteral int) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBuffer)

	for scanner.Scan() {
		line := scanner.Bytes()

		lx := newLexer(line, maxLiteral)
		p, err := newParser(lx)
		if err != nil {
			fmt.Fprintln(errw, err)
			return err
		}

		v, err := p.parseLine()
		if err != nil {
			fmt.Fprintln(errw, err)
			return err
		}

		fmt.Fprintln(w, v.String())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(errw, err)
		return err
	}

	return nil
}
