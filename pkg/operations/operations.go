// Package operations implements the quantity-aware algebra over parts lists:
// Difference, Union and Intersection.
//
// None of the operations modify their operands. Results are new lists
// without provenance, except that Union and Intersection return their sole
// operand unchanged when given exactly one.
package operations

import (
	"fmt"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// Difference subtracts b from a key by key. A part in a that b holds fewer
// of survives with the reduced quantity; a part b holds at least as many of
// is dropped. Parts only in b are ignored.
func Difference(a, b *types.PartsList) (*types.PartsList, error) {
	if a == nil {
		return nil, fmt.Errorf("difference: %w: minuend is nil", types.ErrArgument)
	}
	if b == nil {
		return nil, fmt.Errorf("difference: %w: subtrahend is nil", types.ErrArgument)
	}

	result := a.Clone()
	for key, part := range b.Parts {
		have, ok := result.Get(key)
		if !ok {
			continue
		}
		left, ok := have.Subtract(part)
		if !ok {
			result.Delete(key)
			continue
		}
		result.Put(left)
	}
	return result, nil
}

// Union merges all lists into one, summing quantity and weight of parts
// that share a key.
func Union(lists ...*types.PartsList) (*types.PartsList, error) {
	if err := checkOperands("union", lists); err != nil {
		return nil, err
	}
	if len(lists) == 1 {
		return lists[0], nil
	}

	result := types.NewPartsList()
	for _, list := range lists {
		for key, part := range list.Parts {
			if have, ok := result.Get(key); ok {
				result.Put(have.Add(part))
				continue
			}
			result.Put(part.Clone())
		}
	}
	return result, nil
}

// Intersection keeps, for every key of the first list, the part with the
// smallest quantity seen across all lists. Ties keep the earlier part.
//
// Keys of the first list that a later list lacks are kept as they are;
// only shared keys shrink. Keys that appear only in later lists never
// enter the result.
func Intersection(lists ...*types.PartsList) (*types.PartsList, error) {
	if err := checkOperands("intersection", lists); err != nil {
		return nil, err
	}
	if len(lists) == 1 {
		return lists[0], nil
	}

	result := lists[0].Clone()
	for _, list := range lists[1:] {
		for key, part := range list.Parts {
			have, ok := result.Get(key)
			if ok && part.Quantity < have.Quantity {
				result.Put(part.Clone())
			}
		}
	}
	return result, nil
}

func checkOperands(op string, lists []*types.PartsList) error {
	if len(lists) == 0 {
		return fmt.Errorf("%s: %w: no parts lists given", op, types.ErrArgument)
	}
	for i, l := range lists {
		if l == nil {
			return fmt.Errorf("%s: %w: operand %d is nil", op, types.ErrArgument, i)
		}
	}
	return nil
}
