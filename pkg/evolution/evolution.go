// Package evolution models the branching evolution tree of a Pokémon
// lineage and converts it to and from the blob stored in the database.
//
// The tree is recursive: a Step holds the steps that follow it, with no
// limit on depth or branching (Eevee evolves into eight targets).
package evolution

// Pokemon is a reference to a member of a chain. The id is descriptive
// and is not checked against stored Pokémon.
type Pokemon struct {
	ID   int64
	Name string
}

// Condition triggers one evolution step.
type Condition struct {
	// Type is the kind of trigger: "level", "item", "trade", ...
	Type string

	// Value is the trigger argument. It holds whatever JSON value the
	// dataset provides: a json.Number for numbers, string, bool, nil,
	// []any or map[string]any. Decode always gives numbers as
	// json.Number, so a chain built with Go numeric values (Value: 16)
	// encodes the same way but decodes to json.Number("16").
	Value any

	Description string
}

// Step is one evolution from the previous member into Pokemon. A step
// without further evolutions has nil EvolutionsTo after Decode, an empty
// non-nil slice encodes the same as nil.
type Step struct {
	Pokemon      Pokemon
	Condition    Condition
	EvolutionsTo []Step
}

// Chain is the root of an evolution tree.
type Chain struct {
	Pokemon      Pokemon
	EvolutionsTo []Step
}

// Depth returns the number of members on the longest path of the chain.
func (c *Chain) Depth() int {
	if c == nil {
		return 0
	}
	return 1 + stepsDepth(c.EvolutionsTo)
}

// Members returns the names of all chain members in depth-first order.
func (c *Chain) Members() []string {
	if c == nil {
		return nil
	}
	res := []string{c.Pokemon.Name}
	return appendMembers(res, c.EvolutionsTo)
}

func stepsDepth(steps []Step) int {
	var res int
	for i := range steps {
		res = max(res, 1+stepsDepth(steps[i].EvolutionsTo))
	}
	return res
}

func appendMembers(res []string, steps []Step) []string {
	for i := range steps {
		res = append(res, steps[i].Pokemon.Name)
		res = appendMembers(res, steps[i].EvolutionsTo)
	}
	return res
}
