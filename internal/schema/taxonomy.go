package schema

import "sort"

// Domain identifiers accepted by the describe_schema tool.
const (
	DomainCode    = "code"
	DomainMind    = "mind"
	DomainProject = "project"
	DomainPeople  = "people"
)

// taxonomyEntry declares which node labels and relationship types belong to
// one domain, in presentation order.
type taxonomyEntry struct {
	nodeLabels        []string
	relationshipTypes []string
}

// domainTaxonomy is the hand-maintained source of truth for domain
// membership. It is configuration data: read-only after process start, and
// independent of what currently exists in the store. Scoped schema output
// zero-fills declared names that have no live instances.
//
// Names may belong to more than one domain (for example Note, DEPENDS_ON,
// RELATES_TO); multi-domain requests union them without repetition.
var domainTaxonomy = map[string]taxonomyEntry{
	DomainCode: {
		nodeLabels: []string{
			"Repository", "File", "Module", "Function",
			"Class", "Interface", "Commit", "Dependency",
		},
		relationshipTypes: []string{
			"CONTAINS", "IMPORTS", "CALLS", "DEFINES",
			"IMPLEMENTS", "DEPENDS_ON", "MODIFIED_IN",
		},
	},
	DomainMind: {
		nodeLabels: []string{
			"Thought", "Idea", "Belief", "Memory",
			"Goal", "Question", "Insight", "Note",
		},
		relationshipTypes: []string{
			"RELATES_TO", "INSPIRED_BY", "SUPPORTS",
			"CONTRADICTS", "ANSWERS", "REFINES",
		},
	},
	DomainProject: {
		nodeLabels: []string{
			"Project", "Task", "Milestone", "Decision",
			"Deliverable", "Note",
		},
		relationshipTypes: []string{
			"HAS_TASK", "BLOCKS", "DEPENDS_ON",
			"DECIDED_IN", "TARGETS", "RELATES_TO",
		},
	},
	DomainPeople: {
		nodeLabels: []string{
			"Person", "Organization", "Team", "Role",
		},
		relationshipTypes: []string{
			"KNOWS", "WORKS_AT", "MEMBER_OF",
			"REPORTS_TO", "AUTHORED",
		},
	},
}

// Domains returns the known domain identifiers in sorted order.
func Domains() []string {
	out := make([]string, 0, len(domainTaxonomy))
	for id := range domainTaxonomy {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsKnownDomain reports whether id names a domain in the taxonomy. The check
// is a case-sensitive exact match.
func IsKnownDomain(id string) bool {
	_, ok := domainTaxonomy[id]
	return ok
}

// NodeLabelsFor returns a copy of the node labels declared for the domain,
// or nil for an unknown domain.
func NodeLabelsFor(domain string) []string {
	entry, ok := domainTaxonomy[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.nodeLabels))
	copy(out, entry.nodeLabels)
	return out
}

// RelationshipTypesFor returns a copy of the relationship types declared for
// the domain, or nil for an unknown domain.
func RelationshipTypesFor(domain string) []string {
	entry, ok := domainTaxonomy[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.relationshipTypes))
	copy(out, entry.relationshipTypes)
	return out
}
