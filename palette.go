// palette.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned when a resource entry references a color name
// the palette file never defined. It aborts the whole run; there is no
// fallback color.
var ErrUnknownColor = errors.New("unknown color name")

// loadPalette reads the palette file: one color per line, whitespace
// separated, "R G B Name". Lines that do not split into exactly 4 tokens
// (comments, blanks, junk) are skipped without diagnostics. A later line
// redefining a name overwrites the earlier one.
func (state *GeneratorState) loadPalette(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 4 {
			continue
		}
		var channels [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				return fmt.Errorf("L%d: invalid palette channel '%s': %w", lineNum, tokens[i], err)
			}
			channels[i] = v
		}
		state.Palette[tokens[3]] = RGB{channels[0], channels[1], channels[2]}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading palette: %w", err)
	}
	return nil
}

// resolve looks up a color name. The caller prefixes the source line number.
func (p Palette) resolve(name string) (RGB, error) {
	c, ok := p[name]
	if !ok {
		return RGB{}, fmt.Errorf("%w: '%s'", ErrUnknownColor, name)
	}
	return c, nil
}
