// writer.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// --- Pass 3: Emit Generated Code ---

// formatScalar renders a geometry scalar with Go's shortest round-trip
// float conversion.
func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatColor renders an RGB triple as an SkColorSetRGB call. Channels are
// emitted exactly as parsed; the palette range is unchecked.
func formatColor(c RGB) string {
	return fmt.Sprintf("SkColorSetRGB(%d, %d, %d)", c.R, c.G, c.B)
}

func boolLit(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// writeStyleCode emits the generated C++ initializer source for the style
// tables: warning header, the include of the hand-written declarations, the
// geometry scalars and background color, then the two tables in insertion
// order. It performs no validation and no escaping; whatever the parser put
// in the tables appears verbatim.
func (state *GeneratorState) writeStyleCode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "// WARNING: THIS CODE IS AUTOMATICALLY GENERATED. DO NOT ALTER IT!")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `#include "Styles.hpp"`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "SkScalar tree_level_sep = SkScalar(%s);\n", formatScalar(state.TreeLevelSep))
	fmt.Fprintf(bw, "SkScalar tree_subtree_sep = SkScalar(%s);\n", formatScalar(state.TreeSubtreeSep))
	fmt.Fprintf(bw, "SkScalar tree_sibling_sep = SkScalar(%s);\n", formatScalar(state.TreeSiblingSep))
	fmt.Fprintf(bw, "SkScalar tree_node_radius = SkScalar(%s);\n", formatScalar(state.TreeNodeRadius))
	fmt.Fprintf(bw, "SkColor background_color = %s;\n", formatColor(state.BackgroundColor))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "std::vector<NodeStyle> node_style_table {")
	for _, style := range state.NodeStyles {
		fmt.Fprintf(bw, "    { %s, %s, %s, %s, %s, \"%s\" },\n",
			formatColor(style.Color), formatColor(style.FontColor),
			boolLit(style.HasNumber), boolLit(style.IsFilled), boolLit(style.IsCircle),
			style.Name)
	}
	fmt.Fprintln(bw, "};")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "std::vector<EdgeStyle> edge_style_table {")
	for _, style := range state.EdgeStyles {
		fmt.Fprintf(bw, "    { %s },\n", formatColor(style.Color))
	}
	fmt.Fprintln(bw, "};")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing generated code: %w", err)
	}
	return nil
}
