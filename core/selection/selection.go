// Package selection tracks the quantities a user has chosen per SKU.
// Quantities are always non-negative integers; zero is equivalent to absent.
package selection

import (
	"encoding/json"
	"strconv"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

// Selection is the per-session quantity state: a sparse map over the ECS
// flavor enumeration plus a fixed record over the service enumeration.
// Selections are never persisted.
type Selection struct {
	flavors  map[types.SKUID]int
	services map[types.SKUID]int
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{
		flavors:  make(map[types.SKUID]int),
		services: make(map[types.SKUID]int),
	}
}

// Set records a quantity for a SKU of either family. Negative quantities
// clamp to 0, and 0 removes the entry. Identifiers outside the SKU
// enumeration are rejected.
func (s *Selection) Set(id types.SKUID, qty int) error {
	if qty < 0 {
		qty = 0
	}
	switch {
	case isFlavor(id):
		store(s.flavors, id, qty)
	case isService(id):
		store(s.services, id, qty)
	default:
		return errors.NotFound("SKU", string(id))
	}
	return nil
}

// Flavor returns the chosen quantity for a flavor SKU, 0 when unselected.
func (s *Selection) Flavor(id types.SKUID) int {
	return s.flavors[id]
}

// Service returns the chosen quantity for a service SKU, 0 when unselected.
func (s *Selection) Service(id types.SKUID) int {
	return s.services[id]
}

// Clear removes every chosen quantity.
func (s *Selection) Clear() {
	s.flavors = make(map[types.SKUID]int)
	s.services = make(map[types.SKUID]int)
}

// Empty reports whether no SKU has a positive quantity.
func (s *Selection) Empty() bool {
	return len(s.flavors) == 0 && len(s.services) == 0
}

func store(m map[types.SKUID]int, id types.SKUID, qty int) {
	if qty == 0 {
		delete(m, id)
		return
	}
	m[id] = qty
}

func isFlavor(id types.SKUID) bool {
	_, ok := types.FlavorByID(id)
	return ok
}

func isService(id types.SKUID) bool {
	_, ok := types.ServiceByID(id)
	return ok
}

// ParseQuantity coerces raw user input to a quantity: non-numeric input and
// negative values both become 0, never an error.
func ParseQuantity(raw string) int {
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}

// selectionDoc is the JSON form accepted by FromJSON.
type selectionDoc struct {
	Flavors  map[types.SKUID]int `json:"flavors"`
	Services map[types.SKUID]int `json:"services"`
}

// FromJSON builds a selection from a JSON document of the form
// {"flavors": {"flavor_1_1": 2}, "services": {"evs": 100}}. Negative
// quantities clamp to 0; unknown SKUs are rejected.
func FromJSON(data []byte) (*Selection, error) {
	var doc selectionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "malformed selection document", err)
	}

	s := New()
	for id, qty := range doc.Flavors {
		if _, ok := types.FlavorByID(id); !ok {
			return nil, errors.NotFound("flavor SKU", string(id))
		}
		if err := s.Set(id, qty); err != nil {
			return nil, err
		}
	}
	for id, qty := range doc.Services {
		if _, ok := types.ServiceByID(id); !ok {
			return nil, errors.NotFound("service SKU", string(id))
		}
		if err := s.Set(id, qty); err != nil {
			return nil, err
		}
	}
	return s, nil
}
