// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package terrain

import (
	"encoding/json"
	"fmt"
)

// EdgeTerrain_e is an enum for the terrain tag on one edge of a tile.
type EdgeTerrain_e int

const (
	None EdgeTerrain_e = iota
	Grass
	Road
	River
	Ocean
	Coast
)

// All is a helper for iterating over the non-zero terrain tags.
var All = []EdgeTerrain_e{Grass, Road, River, Ocean, Coast}

// MarshalJSON implements the json.Marshaler interface.
func (e EdgeTerrain_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *EdgeTerrain_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid EdgeTerrain %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e EdgeTerrain_e) String() string {
	if str, ok := EnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("EdgeTerrain(%d)", int(e))
}

var (
	// EnumToString is a helper map for marshalling the enum.
	EnumToString = map[EdgeTerrain_e]string{
		None:  "",
		Grass: "grass",
		Road:  "road",
		River: "river",
		Ocean: "ocean",
		Coast: "coast",
	}
	// StringToEnum is a helper map for unmarshalling the enum.
	StringToEnum = map[string]EdgeTerrain_e{
		"":      None,
		"grass": Grass,
		"road":  Road,
		"river": River,
		"ocean": Ocean,
		"coast": Coast,
	}
)

// Compatible reports whether two facing edges at the given levels satisfy
// the edge compatibility rule. When grassSpansLevels is true, two grass
// edges are compatible regardless of level; every other terrain, and every
// other combination, still requires an exact match of both terrain and
// level.
func Compatible(aTerrain EdgeTerrain_e, aLevel int, bTerrain EdgeTerrain_e, bLevel int, grassSpansLevels bool) bool {
	if aTerrain != bTerrain {
		return false
	}
	if grassSpansLevels && aTerrain == Grass {
		return true
	}
	return aLevel == bLevel
}
