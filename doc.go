// Package layerlist parses the compact layer list notation used to refer to
// sets of mask layers, such as
//
//	metal1 (1/0) via1 (2/0) metal2 (3/0) 1/0 99/42
//
// A layer is written as a symbolic name, a layer/datatype pair, or a name
// followed by a parenthesised pair. Layers are separated by blanks or commas.
// Parsing either yields every layer in the order written, or every error
// found along with the column it was found at.
package layerlist
