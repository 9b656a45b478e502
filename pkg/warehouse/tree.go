package warehouse

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout Tree - Engine Output
// =============================================================================

// Vec3 is an absolute corner position in centimeters.
type Vec3 struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// Tree is the immutable output of a layout computation.
//
// Sections, racks, and pallets are ordered ascending by their indices
// (section position, then side, floor, row, column, depth), so serialized
// output is byte-identical for identical configs.
type Tree struct {
	WarehouseDimensions Dimensions `json:"warehouse_dimensions" bson:"warehouse_dimensions"`
	Sections            []Section  `json:"sections" bson:"sections"`
}

// Section is one placed storage section.
type Section struct {
	ID         string     `json:"id" bson:"id"`
	Position   Vec3       `json:"position" bson:"position"`
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
	Racks      []Rack     `json:"racks" bson:"racks"`
}

// Indices is the 1-based logical address of a rack cell.
type Indices struct {
	Floor int `json:"floor" bson:"floor"`
	Row   int `json:"row" bson:"row"`
	Col   int `json:"col" bson:"col"`
	Depth int `json:"depth" bson:"depth"`
	// Side is "left" or "right" in dual-sided sections, empty otherwise.
	Side string `json:"side,omitempty" bson:"side,omitempty"`
}

// Rack is the smallest addressable storage cell.
type Rack struct {
	ID         string     `json:"id" bson:"id"`
	Indices    Indices    `json:"indices" bson:"indices"`
	Position   Vec3       `json:"position" bson:"position"`
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
	Pallets    []Pallet   `json:"pallets" bson:"pallets"`
}

// Pallet is a pallet assigned to a rack cell. Dims are clamped to fit the
// rack; Position is the absolute corner after centering within the rack
// footprint, published so renderers never recompute geometry.
type Pallet struct {
	Type     string     `json:"type" bson:"type"`
	Color    string     `json:"color,omitempty" bson:"color,omitempty"`
	Dims     Dimensions `json:"dims" bson:"dims"`
	Position Vec3       `json:"position" bson:"position"`
}

// =============================================================================
// Geometry Accessors
// =============================================================================

// Contains reports whether the box (pos, dims) lies fully inside the
// box (opos, odims), within tol on every axis.
func Contains(opos Vec3, odims Dimensions, pos Vec3, dims Dimensions, tol float64) bool {
	return pos.X >= opos.X-tol &&
		pos.Y >= opos.Y-tol &&
		pos.Z >= opos.Z-tol &&
		pos.X+dims.Width <= opos.X+odims.Width+tol &&
		pos.Y+dims.Length <= opos.Y+odims.Length+tol &&
		pos.Z+dims.Height <= opos.Z+odims.Height+tol
}

// RackCount returns the total number of rack cells in the tree.
func (t *Tree) RackCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Racks)
	}
	return n
}

// PalletCount returns the total number of assigned pallets in the tree.
func (t *Tree) PalletCount() int {
	n := 0
	for _, s := range t.Sections {
		for _, r := range s.Racks {
			n += len(r.Pallets)
		}
	}
	return n
}

// =============================================================================
// Serialization
// =============================================================================

// MarshalTree serializes a Tree to pretty-printed JSON bytes.
// Serialization is deterministic: struct field order is fixed and node
// ordering is part of the Tree contract.
func MarshalTree(t *Tree) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// UnmarshalTree deserializes JSON bytes into a Tree.
func UnmarshalTree(data []byte) (*Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	return &t, nil
}

// WriteTreeFile writes a Tree to a JSON file.
func WriteTreeFile(t *Tree, path string) error {
	data, err := MarshalTree(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTreeFile reads a Tree from a JSON file.
func ReadTreeFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalTree(data)
}
