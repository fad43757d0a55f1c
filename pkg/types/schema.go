package types

// TypeCount pairs a node label or relationship type name with the number of
// instances observed in the store. Lists of TypeCount preserve the order the
// store returned them in (typically descending by count).
type TypeCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// PropertyIndex maps a type name to the distinct property key names observed
// across all instances of that type. Key lists are deduplicated; element
// order carries no meaning.
type PropertyIndex map[string][]string

// Add records property keys for a type name, creating the entry if needed
// and dropping duplicate keys. Adding with no keys still creates the entry,
// so a type with no observed properties maps to an empty list.
func (pi PropertyIndex) Add(name string, keys ...string) {
	existing, ok := pi[name]
	if !ok {
		existing = []string{}
	}
	for _, key := range keys {
		found := false
		for _, have := range existing {
			if have == key {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, key)
		}
	}
	pi[name] = existing
}

// Clone returns a deep copy. A nil index clones to an empty one.
func (pi PropertyIndex) Clone() PropertyIndex {
	out := make(PropertyIndex, len(pi))
	for name, keys := range pi {
		copied := make([]string, len(keys))
		copy(copied, keys)
		out[name] = copied
	}
	return out
}

// Introspection bundles the results of the live schema introspection queries:
// observed node labels and relationship types with counts, and the property
// keys seen for each. It is rebuilt from scratch on every call and must be
// orphan-free in both directions before synthesis (every counted name has a
// property entry and vice versa).
type Introspection struct {
	NodeCounts     []TypeCount
	NodeProperties PropertyIndex
	RelCounts      []TypeCount
	RelProperties  PropertyIndex
}

// SchemaDescriptor is the synthesized schema description returned to callers.
// Domains is present only when the synthesis was scoped to one or more valid
// domains; it echoes the requested identifiers in their original order.
type SchemaDescriptor struct {
	Domains                []string      `json:"domains,omitempty"`
	NodeLabels             []TypeCount   `json:"node_labels"`
	NodeProperties         PropertyIndex `json:"node_properties"`
	RelationshipTypes      []TypeCount   `json:"relationship_types"`
	RelationshipProperties PropertyIndex `json:"relationship_properties"`
}

// Validate checks the descriptor's structural invariants: counts are
// non-negative and the TypeCount lists agree with the PropertyIndex keys in
// both directions (no orphans either way).
func (sd *SchemaDescriptor) Validate() error {
	if err := validateSide(sd.NodeLabels, sd.NodeProperties); err != nil {
		return err
	}
	return validateSide(sd.RelationshipTypes, sd.RelationshipProperties)
}

func validateSide(counts []TypeCount, index PropertyIndex) error {
	seen := make(map[string]bool, len(counts))
	for _, tc := range counts {
		if tc.Count < 0 {
			return ErrNegativeCount
		}
		if seen[tc.Name] {
			return ErrDuplicateTypeName
		}
		seen[tc.Name] = true
		if _, ok := index[tc.Name]; !ok {
			return ErrOrphanedTypeName
		}
	}
	for name := range index {
		if !seen[name] {
			return ErrOrphanedPropertyEntry
		}
	}
	return nil
}
