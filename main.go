// main.go
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// loadFile opens path, feeds it to load, and closes it before returning so
// each input is fully consumed and released before the next pass starts.
func loadFile(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return load(f)
}

func main() {
	// Use log package for consistent diagnostics on stderr; stdout carries
	// only the generated code.
	log.SetFlags(0)

	palettePath := filepath.Join(ResourceDir, PaletteFile)
	resourcePath := filepath.Join(ResourceDir, ResourceFile)

	state := newGeneratorState()

	// --- Pass 1: Load Palette ---
	log.Printf("Pass 1: Loading palette from '%s'...\n", palettePath)
	if err := loadFile(palettePath, state.loadPalette); err != nil {
		log.Fatalf("Failed: Palette - %v\n", err)
	}
	log.Printf("   Loaded %d colors.\n", len(state.Palette))

	// --- Pass 2: Parse Resource Description ---
	log.Printf("Pass 2: Parsing resources from '%s'...\n", resourcePath)
	if err := loadFile(resourcePath, state.parseResource); err != nil {
		log.Fatalf("Failed: Parsing - %v\n", err)
	}
	log.Printf("   Parsed %d node styles, %d edge styles.\n",
		len(state.NodeStyles), len(state.EdgeStyles))

	// --- Pass 3: Emit Generated Code ---
	if err := state.writeStyleCode(os.Stdout); err != nil {
		log.Fatalf("Failed: Writing - %v\n", err)
	}
}
