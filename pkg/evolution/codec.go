package evolution

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

type pokemonJSON struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type conditionJSON struct {
	Type        string `json:"type"`
	Value       any    `json:"value"`
	Description string `json:"description"`
}

type stepJSON struct {
	Pokemon      *pokemonJSON   `json:"pokemon"`
	Condition    *conditionJSON `json:"condition"`
	EvolutionsTo []stepJSON     `json:"evolutions_to"`
}

type chainJSON struct {
	Pokemon      *pokemonJSON `json:"pokemon"`
	EvolutionsTo []stepJSON   `json:"evolutions_to"`
}

// Decode parses a serialized chain. Blank input, JSON null and malformed
// trees return nil. Malformed trees are logged as warnings.
func Decode(blob []byte) *Chain {
	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 || bytes.Equal(blob, []byte("null")) {
		return nil
	}

	res, err := Parse(blob)
	if err != nil {
		slog.Warn("Cannot decode evolution chain", "error", err)
		return nil
	}
	return res
}

// Parse is the strict variant of Decode, it returns the reason of a
// failure instead of logging it.
func Parse(blob []byte) (*Chain, error) {
	var raw chainJSON
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("evolution chain: %w", err)
	}

	p, err := pokemonFromJSON(raw.Pokemon)
	if err != nil {
		return nil, fmt.Errorf("evolution chain root: %w", err)
	}
	steps, err := stepsFromJSON(raw.EvolutionsTo, p.Name)
	if err != nil {
		return nil, err
	}
	return &Chain{Pokemon: p, EvolutionsTo: steps}, nil
}

// Encode serializes a chain. Steps without further evolutions are written
// with an empty evolutions_to list.
func Encode(c *Chain) ([]byte, error) {
	if c == nil {
		return nil, errors.New("evolution chain: cannot encode nil chain")
	}
	raw := chainJSON{
		Pokemon:      pokemonToJSON(c.Pokemon),
		EvolutionsTo: stepsToJSON(c.EvolutionsTo),
	}
	res, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("evolution chain %s: %w", c.Pokemon.Name, err)
	}
	return res, nil
}

func pokemonFromJSON(p *pokemonJSON) (Pokemon, error) {
	if p == nil {
		return Pokemon{}, errors.New("missing pokemon")
	}
	if p.ID == nil || p.Name == nil {
		return Pokemon{}, errors.New("pokemon needs id and name")
	}
	return Pokemon{ID: *p.ID, Name: *p.Name}, nil
}

func stepsFromJSON(raw []stepJSON, parent string) ([]Step, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	res := make([]Step, 0, len(raw))
	for i := range raw {
		p, err := pokemonFromJSON(raw[i].Pokemon)
		if err != nil {
			return nil, fmt.Errorf("evolution of %s #%d: %w", parent, i, err)
		}
		if raw[i].Condition == nil {
			return nil, fmt.Errorf("evolution %s -> %s: missing condition",
				parent, p.Name)
		}
		children, err := stepsFromJSON(raw[i].EvolutionsTo, p.Name)
		if err != nil {
			return nil, err
		}
		cond := raw[i].Condition
		res = append(res, Step{
			Pokemon: p,
			Condition: Condition{
				Type:        cond.Type,
				Value:       cond.Value,
				Description: cond.Description,
			},
			EvolutionsTo: children,
		})
	}
	return res, nil
}

func pokemonToJSON(p Pokemon) *pokemonJSON {
	return &pokemonJSON{ID: &p.ID, Name: &p.Name}
}

func stepsToJSON(steps []Step) []stepJSON {
	res := make([]stepJSON, len(steps))
	for i := range steps {
		cond := steps[i].Condition
		res[i] = stepJSON{
			Pokemon: pokemonToJSON(steps[i].Pokemon),
			Condition: &conditionJSON{
				Type:        cond.Type,
				Value:       cond.Value,
				Description: cond.Description,
			},
			EvolutionsTo: stepsToJSON(steps[i].EvolutionsTo),
		}
	}
	return res
}
