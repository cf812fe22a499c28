// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package restype maps the 32-bit resource type ids found in RIM archives to
// descriptors.  The codec itself treats type ids as opaque; this registry is
// for callers that need to display, name, or file resources by type.
//
// The id table follows the Aurora-engine convention shared by the games that
// produce these archives.  Unknown ids are not an error: Lookup synthesizes a
// descriptor so tools can still round-trip resources of types they have never
// heard of.
package restype

import "fmt"

// Type describes one resource type.
type Type struct {
	ID        uint32
	Extension string
	Name      string
}

// Invalid is the descriptor Lookup returns for ids it does not know, with the
// ID field filled in from the query.
var Invalid = Type{Extension: "", Name: "Unknown"}

var types = map[uint32]Type{
	1:    {1, "bmp", "Bitmap Image"},
	3:    {3, "tga", "Targa Image"},
	4:    {4, "wav", "Wave Audio"},
	7:    {7, "ini", "Configuration Text"},
	10:   {10, "txt", "Plain Text"},
	2002: {2002, "mdl", "Model"},
	2009: {2009, "nss", "Script Source"},
	2010: {2010, "ncs", "Compiled Script"},
	2012: {2012, "are", "Area Layout"},
	2014: {2014, "ifo", "Module Info"},
	2015: {2015, "bic", "Character"},
	2016: {2016, "wok", "Walkmesh"},
	2017: {2017, "2da", "2D Array Table"},
	2018: {2018, "tlk", "Talk Table"},
	2022: {2022, "txi", "Texture Info"},
	2023: {2023, "git", "Area Instances"},
	2025: {2025, "uti", "Item Blueprint"},
	2027: {2027, "utc", "Creature Blueprint"},
	2029: {2029, "dlg", "Dialog"},
	2030: {2030, "itp", "Palette"},
	2032: {2032, "utt", "Trigger Blueprint"},
	2033: {2033, "dds", "DirectDraw Surface"},
	2035: {2035, "uts", "Sound Blueprint"},
	2036: {2036, "ltr", "Letter Combo"},
	2037: {2037, "gff", "Generic File Format"},
	2038: {2038, "fac", "Faction"},
	2040: {2040, "ute", "Encounter Blueprint"},
	2042: {2042, "utd", "Door Blueprint"},
	2044: {2044, "utp", "Placeable Blueprint"},
	2045: {2045, "dft", "Default Values"},
	2046: {2046, "gic", "Game Instance Comments"},
	2047: {2047, "gui", "GUI Layout"},
	2051: {2051, "utm", "Merchant Blueprint"},
	2052: {2052, "dwk", "Door Walkmesh"},
	2053: {2053, "pwk", "Placeable Walkmesh"},
	2056: {2056, "jrl", "Journal"},
	2058: {2058, "utw", "Waypoint Blueprint"},
	2060: {2060, "ssf", "Sound Set"},
	2064: {2064, "ndb", "Script Debug Info"},
	2065: {2065, "ptm", "Plot Manager"},
	2066: {2066, "ptt", "Plot Wizard"},
}

// Lookup returns the descriptor for id.  Unknown ids yield Invalid with the
// queried id filled in.
func Lookup(id uint32) Type {
	if t, ok := types[id]; ok {
		return t
	}
	unknown := Invalid
	unknown.ID = id
	return unknown
}

// Known reports whether id is in the registry.
func Known(id uint32) bool {
	_, ok := types[id]
	return ok
}

func (t Type) String() string {
	if t.Extension == "" {
		return fmt.Sprintf("%s (%d)", t.Name, t.ID)
	}
	return fmt.Sprintf("%s (%d)", t.Extension, t.ID)
}
