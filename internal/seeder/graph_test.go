package seeder

import (
	"testing"

	"github.com/frostbnb/seedctl/internal/schema"
)

func TestInsertionOrderRespectsDependencies(t *testing.T) {
	order, err := NewDependencyGraph(schema.Tables).BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}
	if len(order) != len(schema.Tables) {
		t.Fatalf("Order has %d tables, want %d", len(order), len(schema.Tables))
	}

	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	for _, table := range schema.Tables {
		for _, dep := range table.Dependencies {
			if position[dep] >= position[table.Name] {
				t.Errorf("Table %s at %d comes before its dependency %s at %d",
					table.Name, position[table.Name], dep, position[dep])
			}
		}
	}
}

func TestInsertionOrderIsDeterministic(t *testing.T) {
	first, err := NewDependencyGraph(schema.Tables).BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}
	second, err := NewDependencyGraph(schema.Tables).BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestCycleDetection(t *testing.T) {
	tables := []schema.Table{
		{Name: "a", Dependencies: []string{"b"}},
		{Name: "b", Dependencies: []string{"c"}},
		{Name: "c", Dependencies: []string{"a"}},
	}

	if _, err := NewDependencyGraph(tables).BuildInsertionOrder(); err == nil {
		t.Error("Expected circular dependency error, got none")
	}
}

func TestUnregisteredDependency(t *testing.T) {
	tables := []schema.Table{
		{Name: "a", Dependencies: []string{"ghost"}},
	}

	if _, err := NewDependencyGraph(tables).BuildInsertionOrder(); err == nil {
		t.Error("Expected unregistered dependency error, got none")
	}
}
