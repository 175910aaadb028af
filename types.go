// types.go
package main

import "fmt"

// --- Fixed Input Locations ---
// The generator runs from the project root and reads the vbctool resource
// bundle in place. No flags, no environment lookups.
const (
	ResourceDir  = "vbctool/vbctool/GRAPHResource"
	PaletteFile  = "GRAPHrgb.txt"
	ResourceFile = "GRAPHStandardResource.rsc"
)

// --- Geometry Defaults ---
// Overwritten by a matching resource key; otherwise emitted as-is.
const (
	DefaultLevelSep   = 4.0
	DefaultSubtreeSep = 6.0
	DefaultSiblingSep = 6.0
	DefaultNodeRadius = 20.0
)

// RGB is a color triple as read from the palette file. Channels stay plain
// ints: the palette range is unchecked, and whatever value the file carries
// is emitted verbatim.
type RGB struct {
	R, G, B int
}

// Palette maps a case-sensitive color name to its RGB triple.
type Palette map[string]RGB

// NodeStyle describes how one node type is drawn.
type NodeStyle struct {
	Color     RGB // fill
	FontColor RGB
	HasNumber bool
	IsFilled  bool
	IsCircle  bool
	Name      string // display name, may be empty
}

// EdgeStyle describes how one edge type is drawn.
type EdgeStyle struct {
	Color RGB // stroke
}

// GeneratorState holds the entire state of a generation run: the loaded
// palette, the geometry scalars, and the two ordered style tables. It is
// mutated during Pass 1 and Pass 2 and read-only during Pass 3.
type GeneratorState struct {
	Palette Palette

	TreeLevelSep    float64
	TreeSubtreeSep  float64
	TreeSiblingSep  float64
	TreeNodeRadius  float64
	BackgroundColor RGB

	NodeStyles []NodeStyle
	EdgeStyles []EdgeStyle

	// State for the resource parser
	CurrentLineNum int
}

// newGeneratorState returns a state carrying the documented defaults.
func newGeneratorState() *GeneratorState {
	return &GeneratorState{
		Palette:         make(Palette, 256),
		TreeLevelSep:    DefaultLevelSep,
		TreeSubtreeSep:  DefaultSubtreeSep,
		TreeSiblingSep:  DefaultSiblingSep,
		TreeNodeRadius:  DefaultNodeRadius,
		BackgroundColor: RGB{255, 255, 255},
		NodeStyles:      make([]NodeStyle, 0, 16),
		EdgeStyles:      make([]EdgeStyle, 0, 16),
	}
}

// padNodeStyles extends the node table with placeholder entries until its
// length reaches idx. Table positions are purely append-order: an entry
// declared with index k lands at physical position k only when indices
// 0..k-1 were all defined in increasing order. Out-of-order or repeated
// indices shift later entries; downstream code relies on the resulting
// order, so this must stay an append, not a direct-indexed store.
func (state *GeneratorState) padNodeStyles(idx int) {
	for len(state.NodeStyles) < idx {
		state.NodeStyles = append(state.NodeStyles, NodeStyle{
			Color:     RGB{0, 0, 0},
			FontColor: RGB{255, 255, 255},
			IsFilled:  true,
			IsCircle:  true,
			Name:      fmt.Sprintf("Undefined Node Type %d", len(state.NodeStyles)),
		})
	}
}

// padEdgeStyles is the edge-table counterpart of padNodeStyles.
func (state *GeneratorState) padEdgeStyles(idx int) {
	for len(state.EdgeStyles) < idx {
		state.EdgeStyles = append(state.EdgeStyles, EdgeStyle{Color: RGB{0, 0, 0}})
	}
}
