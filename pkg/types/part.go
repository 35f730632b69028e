package types

import (
	"strconv"
	"strings"
)

// Sentinel color values for a Part that matches any color.
const (
	AnyColorID     = "0"
	AnyAltColorID  = "9999"
	AnyColorName   = "(Not Applicable)"
	keySeparator   = ":"
	PartFieldCount = 10
)

// DefaultHeader is the column layout of a full parts list export. It is
// written for synthesized lists that never saw a source header.
var DefaultHeader = []string{
	"BLItemNo", "ElementId", "LdrawId", "PartName", "BLColorId",
	"LDrawColorId", "ColorName", "ColorCategory", "Qty", "Weight",
}

// SimpleHeader is the header of a simple (part, color, quantity) export.
var SimpleHeader = []string{"part", "color", "quantity"}

// Part is a single parts list entry.
type Part struct {
	CatalogNo     string  `json:"catalog_no"`     // Catalog item number (e.g. "3001").
	ElementID     string  `json:"element_id"`     // Manufacturer element ID.
	AltID         string  `json:"alt_id"`         // Alternate (LDraw) part ID.
	Name          string  `json:"name"`           // Human-readable part name.
	ColorID       string  `json:"color_id"`       // Catalog color ID.
	AltColorID    string  `json:"alt_color_id"`   // Alternate (LDraw) color ID.
	ColorName     string  `json:"color_name"`     // Catalog color name.
	ColorCategory string  `json:"color_category"` // Color family (Solid, Transparent, ...).
	Quantity      int     `json:"quantity"`
	Weight        float64 `json:"weight"` // Total weight of Quantity parts.
}

// PartFromRow builds a Part from one data row in DefaultHeader order.
// Returns a *RowError (wrapping ErrParse) when the row has the wrong number
// of fields or quantity/weight are not numeric.
func PartFromRow(row []string) (*Part, error) {
	if len(row) != PartFieldCount {
		return nil, &RowError{Msg: "expected " + strconv.Itoa(PartFieldCount) + " fields, got " + strconv.Itoa(len(row))}
	}

	qty, err := strconv.Atoi(strings.TrimSpace(row[8]))
	if err != nil {
		return nil, &RowError{Field: DefaultHeader[8], Value: row[8], Msg: "not an integer"}
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(row[9]), 64)
	if err != nil {
		return nil, &RowError{Field: DefaultHeader[9], Value: row[9], Msg: "not a number"}
	}

	return &Part{
		CatalogNo:     row[0],
		ElementID:     row[1],
		AltID:         row[2],
		Name:          row[3],
		ColorID:       row[4],
		AltColorID:    row[5],
		ColorName:     row[6],
		ColorCategory: row[7],
		Quantity:      qty,
		Weight:        weight,
	}, nil
}

// Key returns the identity of the part within a PartsList. Different
// catalog numbers never merge, even when they look alike.
func (p *Part) Key() string {
	return p.CatalogNo + keySeparator + p.ColorName
}

// Add returns a new Part holding the summed quantity and weight. All other
// fields come from the receiver; callers only add parts sharing a key.
func (p *Part) Add(other *Part) *Part {
	sum := p.Clone()
	sum.Quantity += other.Quantity
	sum.Weight += other.Weight
	return sum
}

// Subtract returns a new Part with other's quantity and weight removed.
// The boolean is false when nothing is left (quantity <= 0); zero and
// negative quantities are never tracked.
func (p *Part) Subtract(other *Part) (*Part, bool) {
	diff := p.Clone()
	diff.Quantity -= other.Quantity
	diff.Weight -= other.Weight
	if diff.Quantity <= 0 {
		return nil, false
	}
	return diff, true
}

// Equal reports whether all ten fields match.
func (p *Part) Equal(other *Part) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// IsColorMatch reports whether the part's color name equals name,
// ignoring case.
func (p *Part) IsColorMatch(name string) bool {
	return strings.EqualFold(p.ColorName, name)
}

// EnableAnyColor rewrites the color fields to the any-color sentinels.
// This changes Key; a PartsList holding the part must re-index it.
func (p *Part) EnableAnyColor() {
	p.ColorID = AnyColorID
	p.AltColorID = AnyAltColorID
	p.ColorName = AnyColorName
}

// IsAnyColor reports whether EnableAnyColor has been applied.
func (p *Part) IsAnyColor() bool {
	return p.ColorName == AnyColorName
}

// Clone returns an independent copy.
func (p *Part) Clone() *Part {
	cp := *p
	return &cp
}

// Row returns the part's fields in DefaultHeader order.
func (p *Part) Row() []string {
	return []string{
		p.CatalogNo,
		p.ElementID,
		p.AltID,
		p.Name,
		p.ColorID,
		p.AltColorID,
		p.ColorName,
		p.ColorCategory,
		strconv.Itoa(p.Quantity),
		strconv.FormatFloat(p.Weight, 'f', -1, 64),
	}
}

// SimpleRow returns catalog number, color name and quantity, the layout
// catalog matching tools expect.
func (p *Part) SimpleRow() []string {
	return []string{p.CatalogNo, p.ColorName, strconv.Itoa(p.Quantity)}
}
