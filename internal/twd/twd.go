// Package twd has functions for loading game data using the TWD (Tale World
// Data) file format, a TOML-based format that defines the locations, items
// and NPCs a game starts out with.
package twd

import (
	"os"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/guicampos/tale/internal/world"
)

// WorldData contains data loaded from a TWD World Data file.
type WorldData struct {
	// Locations has every location in the world, pre-loaded with NPCs and
	// items and wired to each other, ready for immediate use.
	Locations map[string]*world.Location

	// Start is the name of the location the player starts in.
	Start string
}

// FileInfo contains the essential information all TWD format files must
// contain. It can be obtained from a file by reading it into memory and
// calling ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// LoadWorldFile loads a world from a world definition file.
func LoadWorldFile(path string) (WorldData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldData{}, err
	}
	return LoadWorldBytes(data)
}

// LoadWorldBytes loads a world from the bytes of a world definition file.
func LoadWorldBytes(data []byte) (WorldData, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return WorldData{}, err
	}
	return parseWorldData(unmarshaled)
}

// ScanFileInfo takes the given bytes and attempts to read the TWD format
// common header info from them. The bytes are read up to the first table
// definition header and those bytes are parsed for the info.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-level table
	topLevelEnd := -1
	onNewLine := true
	for b := range data {
		if onNewLine && data[b] == '[' {
			topLevelEnd = b
			break
		}
		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
