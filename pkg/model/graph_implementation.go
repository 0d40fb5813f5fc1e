package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type adjacencyGraph struct {
	courses      []string
	index        map[string]int
	predecessors map[string][]string
	successors   map[string][]string
	edges        []Edge
}

func (graph *adjacencyGraph) AddCourse(course string) {
	if _, ok := graph.index[course]; ok {
		return
	}
	graph.index[course] = len(graph.courses)
	graph.courses = append(graph.courses, course)
}

func (graph *adjacencyGraph) AddPrerequisite(prerequisite, course string) error {
	if !graph.Contains(course) {
		return &ConfigurationError{Course: course, Reason: "course does not exist"}
	} else if !graph.Contains(prerequisite) {
		return &ConfigurationError{Course: course, Reason: fmt.Sprintf("prerequisite \"%v\" does not exist", prerequisite)}
	}

	// Ignore duplicate edges
	if slices.Contains(graph.predecessors[course], prerequisite) {
		return nil
	}

	graph.predecessors[course] = append(graph.predecessors[course], prerequisite)
	graph.successors[prerequisite] = append(graph.successors[prerequisite], course)
	graph.edges = append(graph.edges, Edge{Prerequisite: prerequisite, Course: course})
	return nil
}

func (graph *adjacencyGraph) Predecessors(course string) []string {
	return slices.Clone(graph.predecessors[course])
}

func (graph *adjacencyGraph) Successors(course string) []string {
	return slices.Clone(graph.successors[course])
}

func (graph *adjacencyGraph) Roots() []string {
	return lo.Filter(graph.courses, func(course string, _ int) bool {
		return len(graph.predecessors[course]) == 0
	})
}

func (graph *adjacencyGraph) Courses() []string {
	return slices.Clone(graph.courses)
}

func (graph *adjacencyGraph) Edges() []Edge {
	return slices.Clone(graph.edges)
}

func (graph *adjacencyGraph) Contains(course string) bool {
	_, ok := graph.index[course]
	return ok
}

func (graph *adjacencyGraph) TopologicalOrder() ([]string, error) {
	//** Kahn's algorithm
	inDegree := make(map[string]int, len(graph.courses))
	for _, course := range graph.courses {
		inDegree[course] = len(graph.predecessors[course])
	}

	queue := graph.Roots()
	order := make([]string, 0, len(graph.courses))
	for len(queue) > 0 {
		course := queue[0]
		queue = queue[1:]
		order = append(order, course)

		for _, successor := range graph.successors[course] {
			inDegree[successor]--
			if inDegree[successor] == 0 {
				queue = append(queue, successor)
			}
		}
	}

	if len(order) != len(graph.courses) {
		// Every course left with a positive in-degree lies on (or behind) a cycle
		blocked, _ := lo.Find(graph.courses, func(course string) bool {
			return inDegree[course] > 0
		})
		return nil, &ConfigurationError{Course: blocked, Reason: "prerequisite cycle detected"}
	}
	return order, nil
}
