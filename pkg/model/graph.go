package model

// Edge is a directed prerequisite relation: Prerequisite must be completed before Course
type Edge struct {
	Prerequisite string
	Course       string
}

// PrerequisiteGraph is a directed graph of courses where an edge prereq->course means that course requires prereq.
// The graph is expected to be acyclic and must not be mutated once it is shared (e.g. between simulation workers)
type PrerequisiteGraph interface {
	// Adds a course to the graph. Adding an existing course is a no-op
	AddCourse(course string)

	// Adds the edge prereq->course. Both courses must have been added before, otherwise a *ConfigurationError is returned
	AddPrerequisite(prerequisite, course string) error

	// Returns the direct prerequisites of course (not the transitive closure)
	Predecessors(course string) []string

	// Returns the courses that directly require course
	Successors(course string) []string

	// Returns all courses with no prerequisites in course-iteration order
	Roots() []string

	// Returns all courses in course-iteration order (i.e. insertion order)
	Courses() []string

	// Returns all edges in insertion order
	Edges() []Edge

	Contains(course string) bool

	// Returns the courses sorted so that every prerequisite precedes its dependants. A *ConfigurationError is returned if the graph has a cycle
	TopologicalOrder() ([]string, error)
}

func NewPrerequisiteGraph() PrerequisiteGraph {
	return &adjacencyGraph{
		index:        make(map[string]int),
		predecessors: make(map[string][]string),
		successors:   make(map[string][]string),
	}
}

// BuildGraph builds the prerequisite graph of catalog. Every course is added before any edge so prerequisites may be
// listed in any order; a reference to a course outside the catalog or a cycle fails with a *ConfigurationError
func BuildGraph(catalog Catalog) (PrerequisiteGraph, error) {
	graph := NewPrerequisiteGraph()

	for _, entry := range catalog {
		graph.AddCourse(entry.Course)
	}

	for _, entry := range catalog {
		for _, prerequisite := range entry.Prerequisites {
			if !graph.Contains(prerequisite) {
				return nil, &ConfigurationError{
					Course: entry.Course,
					Reason: "missing prerequisite \"" + prerequisite + "\"",
				}
			}
			if err := graph.AddPrerequisite(prerequisite, entry.Course); err != nil {
				return nil, err
			}
		}
	}

	if _, err := graph.TopologicalOrder(); err != nil {
		return nil, err
	}
	return graph, nil
}
