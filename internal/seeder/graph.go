package seeder

import (
	"fmt"

	"github.com/frostbnb/seedctl/internal/schema"
)

// DependencyGraph orders tables so every parent is populated before its
// dependents. The graph is built from the static registry, so a bad
// declaration (cycle, unknown dependency) surfaces at startup instead of
// as a foreign-key failure halfway through a run.
type DependencyGraph struct {
	tables []schema.Table
	byName map[string]schema.Table
}

func NewDependencyGraph(tables []schema.Table) *DependencyGraph {
	byName := make(map[string]schema.Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	return &DependencyGraph{tables: tables, byName: byName}
}

// BuildInsertionOrder returns a topological order over the dependency
// edges. Iteration follows registry declaration order, so the result is
// deterministic across runs.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	inStack := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if inStack[name] {
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		if visited[name] {
			return nil
		}

		table, ok := g.byName[name]
		if !ok {
			return fmt.Errorf("dependency on unregistered table: %s", name)
		}

		inStack[name] = true
		for _, dep := range table.Dependencies {
			if dep == name {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		inStack[name] = false

		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, t := range g.tables {
		if err := visit(t.Name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
