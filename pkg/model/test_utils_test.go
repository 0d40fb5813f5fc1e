package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRandom replays fixed draws so a simulation can be steered step by step
type scriptedRandom struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (random *scriptedRandom) IntN(n int) int {
	require.NotEmpty(random.t, random.ints, "ran out of scripted integers")
	value := random.ints[0]
	random.ints = random.ints[1:]
	require.Less(random.t, value, n, "scripted integer out of range")
	return value
}

func (random *scriptedRandom) Float64() float64 {
	require.NotEmpty(random.t, random.floats, "ran out of scripted floats")
	value := random.floats[0]
	random.floats = random.floats[1:]
	return value
}

func (random *scriptedRandom) exhausted() bool {
	return len(random.ints) == 0 && len(random.floats) == 0
}

// A->B, A->C, B->D
func diamondGraph(t *testing.T) PrerequisiteGraph {
	graph, err := BuildGraph(Catalog{
		{Course: "A"},
		{Course: "B", Prerequisites: []string{"A"}},
		{Course: "C", Prerequisites: []string{"A"}},
		{Course: "D", Prerequisites: []string{"B"}},
	})
	require.NoError(t, err)
	return graph
}

func defaultGraph(t *testing.T) PrerequisiteGraph {
	graph, err := BuildGraph(DefaultCatalog())
	require.NoError(t, err)
	return graph
}
