// parser.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseResource reads the resource description line by line and fills in
// the geometry scalars, the background color, and the two style tables.
//
// The format is lenient by contract: comment lines, lines without a colon,
// malformed indexed keys, and node values with too few fields are skipped
// silently. Only two things are fatal: a color name missing from the
// palette, and a numeric field that does not parse.
func (state *GeneratorState) parseResource(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	state.CurrentLineNum = 0
	for scanner.Scan() {
		state.CurrentLineNum++

		// Leading whitespace is tolerated before the key, nothing else is:
		// keys are matched exactly as they appear up to the first colon.
		line := strings.TrimLeftFunc(scanner.Text(), unicode.IsSpace)
		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]

		var err error
		switch {
		case key == "DrawAreaBackgroundColor":
			state.BackgroundColor, err = state.resolveColor(value)
		case key == "TreeLevelSeparationValue":
			state.TreeLevelSep, err = state.parseScalar(value)
		case key == "TreeSubtreeSeparationValue":
			state.TreeSubtreeSep, err = state.parseScalar(value)
		case key == "TreeSiblingSeparationValue":
			state.TreeSiblingSep, err = state.parseScalar(value)
		case key == "TreeNodeRadiusValue":
			state.TreeNodeRadius, err = state.parseScalar(value)
		case strings.HasPrefix(key, "Nodes"):
			err = state.parseNodeEntry(key, value)
		case strings.HasPrefix(key, "Edges"):
			err = state.parseEdgeEntry(key, value)
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading resource file: %w", err)
	}
	return nil
}

// resolveColor trims a value and looks it up in the palette.
func (state *GeneratorState) resolveColor(value string) (RGB, error) {
	c, err := state.Palette.resolve(strings.TrimSpace(value))
	if err != nil {
		return RGB{}, fmt.Errorf("L%d: %w", state.CurrentLineNum, err)
	}
	return c, nil
}

// parseScalar trims a value and parses it as a float.
func (state *GeneratorState) parseScalar(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("L%d: invalid numeric value '%s': %w", state.CurrentLineNum, strings.TrimSpace(value), err)
	}
	return v, nil
}

// typeIndex extracts the integer type-index from an indexed key ("Nodes 3",
// "Edges 0"). A key that does not split into exactly 2 whitespace tokens
// skips the line (ok=false); a non-integer index is fatal.
func (state *GeneratorState) typeIndex(key string) (idx int, ok bool, err error) {
	tokens := strings.Fields(key)
	if len(tokens) != 2 {
		return 0, false, nil
	}
	idx, err = strconv.Atoi(tokens[1])
	if err != nil {
		return 0, false, fmt.Errorf("L%d: invalid type-index '%s': %w", state.CurrentLineNum, tokens[1], err)
	}
	return idx, true, nil
}

// parseNodeEntry handles one "Nodes <idx>: fill-font-<legacy>-flags-name"
// line. The third field is a legacy slot and is never read. The flags field
// sets has-number/is-filled/is-circle from its first three characters; a
// missing fifth field leaves the display name empty.
func (state *GeneratorState) parseNodeEntry(key, value string) error {
	idx, ok, err := state.typeIndex(key)
	if err != nil || !ok {
		return err
	}

	fields := splitFields(value)
	if len(fields) < 4 {
		return nil
	}

	fill, err := state.resolveColor(fields[0])
	if err != nil {
		return err
	}
	font, err := state.resolveColor(fields[1])
	if err != nil {
		return err
	}

	flags := strings.TrimSpace(fields[3])
	name := ""
	if len(fields) >= 5 {
		name = strings.TrimSpace(fields[4])
	}

	state.padNodeStyles(idx)
	state.NodeStyles = append(state.NodeStyles, NodeStyle{
		Color:     fill,
		FontColor: font,
		HasNumber: len(flags) > 0 && (flags[0] == 'y' || flags[0] == 'Y'),
		IsFilled:  len(flags) > 1 && (flags[1] == 'y' || flags[1] == 'Y'),
		IsCircle:  len(flags) > 2 && (flags[2] == 'y' || flags[2] == 'Y'),
		Name:      name,
	})
	return nil
}

// parseEdgeEntry handles one "Edges <idx>: color" line.
func (state *GeneratorState) parseEdgeEntry(key, value string) error {
	idx, ok, err := state.typeIndex(key)
	if err != nil || !ok {
		return err
	}

	fields := splitFields(value)
	if len(fields) == 0 {
		return fmt.Errorf("L%d: missing edge color field", state.CurrentLineNum)
	}
	stroke, err := state.resolveColor(fields[0])
	if err != nil {
		return err
	}

	state.padEdgeStyles(idx)
	state.EdgeStyles = append(state.EdgeStyles, EdgeStyle{Color: stroke})
	return nil
}
