// Package types defines the Part and PartsList entities, the run Config,
// and the standard error values for the partslist tools.
//
// A Part is one inventory line: a catalog number in a given color with a
// quantity and a total weight. A PartsList is a keyed multiset of Parts,
// one Part per "catalog:color" key. The algebra over PartsLists lives in
// package operations; tabular I/O lives in internal/csvfile.
package types
