package resolve

// successionTable maps an entity name to its known successor names.
// Entries with no successors (complex breakups) still mark the entity
// as part of a succession chain so predecessors can link to it.
var successionTable = map[string][]string{
	"Soviet Union":   {"Russian Empire", "Russian Federation"},
	"East Germany":   {"Nazi Germany", "Germany"},
	"West Germany":   {"Nazi Germany", "Germany"},
	"Germany":        {"East Germany", "West Germany", "Nazi Germany", "Weimar Republic"},
	"Czechoslovakia": {"Czech Republic", "Slovakia"},
	"Yugoslavia":     {}, // complex breakup
	"Ottoman Empire": {}, // multiple successor states
	"Siam":           {"Thailand"},
	"Burma":          {"Myanmar"},
	"Ceylon":         {"Sri Lanka"},
	"Rhodesia":       {"Zimbabwe"},
	"Zaire":          {"Democratic Republic of Congo"},
	"Constantinople": {"Istanbul"},
	"Leningrad":      {"St. Petersburg", "Petrograd"},
	"Bombay":         {"Mumbai"},
	"Peking":         {"Beijing"},
	"Saigon":         {"Ho Chi Minh City"},
}

// Graph is the succession table reified as a directed graph
// (entity -> successors, with the predecessor direction derived).
// Built once at resolver construction and traversed per query.
type Graph struct {
	successors   map[string][]string
	predecessors map[string][]string
}

// NewGraph builds the succession graph from the built-in table.
func NewGraph() *Graph {
	return newGraphFrom(successionTable)
}

func newGraphFrom(table map[string][]string) *Graph {
	g := &Graph{
		successors:   make(map[string][]string, len(table)),
		predecessors: make(map[string][]string),
	}

	for name, succs := range table {
		g.successors[name] = append([]string(nil), succs...)
		for _, s := range succs {
			g.predecessors[s] = append(g.predecessors[s], name)
		}
	}

	return g
}

// Has reports whether the name participates in any succession chain as
// a source node.
func (g *Graph) Has(name string) bool {
	_, ok := g.successors[name]
	return ok
}

// Successors returns the known successor names of an entity.
func (g *Graph) Successors(name string) []string {
	return g.successors[name]
}

// Predecessors returns the entities that name succeeded.
func (g *Graph) Predecessors(name string) []string {
	return g.predecessors[name]
}

// Related returns successors and predecessors of an entity, deduplicated.
func (g *Graph) Related(name string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, n := range g.successors[name] {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range g.predecessors[name] {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	return out
}
