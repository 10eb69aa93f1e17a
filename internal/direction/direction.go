// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package direction

import (
	"encoding/json"
	"fmt"
)

// Direction_e is an enum for the six hex directions, fixed in clockwise order.
type Direction_e int

const (
	NE Direction_e = iota
	E
	SE
	SW
	W
	NW
)

const (
	NumDirections = int(NW) + 1
)

// All is a helper for iterating over the directions in clockwise order.
var All = []Direction_e{NE, E, SE, SW, W, NW}

// MarshalJSON implements the json.Marshaler interface.
func (d Direction_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[d])
}

// MarshalText implements the encoding.TextMarshaler interface.
//
// Note that this is called by the json package when Direction_e is used as a map key.
func (d Direction_e) MarshalText() (text []byte, err error) {
	return []byte(EnumToString[d]), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Direction_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *d, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Direction %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (d Direction_e) String() string {
	if str, ok := EnumToString[d]; ok {
		return str
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

var (
	// EnumToString is a helper map for marshalling the enum.
	EnumToString = map[Direction_e]string{
		NE: "NE",
		E:  "E",
		SE: "SE",
		SW: "SW",
		W:  "W",
		NW: "NW",
	}
	// StringToEnum is a helper map for unmarshalling the enum.
	StringToEnum = map[string]Direction_e{
		"NE": NE,
		"E":  E,
		"SE": SE,
		"SW": SW,
		"W":  W,
		"NW": NW,
	}
)

// Opposite returns the direction three steps around the clockwise order.
//
// This is the geometric opposite on an unbounded grid, but the solver never
// assumes it equals the return direction of a specific cell; see
// ReturnDirection in package hexgrid.
func (d Direction_e) Opposite() Direction_e {
	return Direction_e((int(d) + 3) % NumDirections)
}

// Rotate returns the direction r steps clockwise from d, wrapping modulo 6.
// Negative r rotates counter-clockwise.
func (d Direction_e) Rotate(r int) Direction_e {
	n := (int(d) + r) % NumDirections
	if n < 0 {
		n += NumDirections
	}
	return Direction_e(n)
}
