// Package encode turns actions and daily records into stable feature
// vectors for numeric policies. Identifiers are mapped through an explicit
// registry built from the topology, never through a language hash, so the
// same topology always yields the same encoding across runs and processes.
package encode

import (
	"sort"

	"github.com/tmorvan/statesim/internal/market"
	"github.com/tmorvan/statesim/internal/models"
)

// UnknownIndex encodes names the registry has never seen
const UnknownIndex = -1

// ActionVectorSize is the fixed width of an encoded action:
// kind, state index, building index, method index.
const ActionVectorSize = 4

// Registry assigns consecutive small integers to state ids, building names
// and production methods in topology order. Indices are collision-free by
// construction.
type Registry struct {
	stateIndex    map[string]int
	buildingIndex map[string]int
	buildingKinds map[string]*models.BuildingKind
}

func buildingKey(stateID, name string) string {
	return stateID + "/" + name
}

// NewRegistry enumerates the given states in slice order and their
// buildings in insertion order.
func NewRegistry(states []*market.State) *Registry {
	r := &Registry{
		stateIndex:    make(map[string]int),
		buildingIndex: make(map[string]int),
		buildingKinds: make(map[string]*models.BuildingKind),
	}

	for _, s := range states {
		if _, seen := r.stateIndex[s.ID]; !seen {
			r.stateIndex[s.ID] = len(r.stateIndex)
		}
		for _, b := range s.Buildings {
			key := buildingKey(s.ID, b.Name)
			if _, seen := r.buildingIndex[key]; !seen {
				r.buildingIndex[key] = len(r.buildingIndex)
			}
			r.buildingKinds[key] = b.Kind
		}
	}

	return r
}

// StateIndex returns the stable index for a state id
func (r *Registry) StateIndex(id string) int {
	if idx, ok := r.stateIndex[id]; ok {
		return idx
	}
	return UnknownIndex
}

// BuildingIndex returns the stable index for a building within a state
func (r *Registry) BuildingIndex(stateID, name string) int {
	if idx, ok := r.buildingIndex[buildingKey(stateID, name)]; ok {
		return idx
	}
	return UnknownIndex
}

// MethodIndex returns the method's position in its kind's definition order
func (r *Registry) MethodIndex(stateID, buildingName, method string) int {
	kind, ok := r.buildingKinds[buildingKey(stateID, buildingName)]
	if !ok {
		return UnknownIndex
	}
	return kind.MethodIndex(method)
}

// ActionVector encodes an action as a fixed-size numeric vector. The method
// slot is UnknownIndex for every kind except a method swap.
func (r *Registry) ActionVector(a models.Action) []float64 {
	methodIdx := UnknownIndex
	if a.Kind == models.ActionSwapMethod {
		methodIdx = r.MethodIndex(a.StateID, a.BuildingName, a.NewMethod)
	}
	return []float64{
		float64(a.Kind),
		float64(r.StateIndex(a.StateID)),
		float64(r.BuildingIndex(a.StateID, a.BuildingName)),
		float64(methodIdx),
	}
}

// RecordFields returns a record's field names in lexicographic order, the
// canonical layout for record vectors.
func RecordFields(record map[string]float64) []string {
	fields := make([]string, 0, len(record))
	for k := range record {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// RecordVector flattens a daily record into the canonical field order
func RecordVector(record map[string]float64) []float64 {
	fields := RecordFields(record)
	vec := make([]float64, len(fields))
	for i, f := range fields {
		vec[i] = record[f]
	}
	return vec
}
