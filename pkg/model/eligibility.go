package model

import "github.com/samber/lo"

// EligibleCourses returns, in course-iteration order, every course the student has not completed whose direct
// prerequisites are all completed. Courses on a prerequisite cycle are never eligible
func EligibleCourses(student Student, graph PrerequisiteGraph) []string {
	return lo.Filter(graph.Courses(), func(course string, _ int) bool {
		if student.Completed(course) {
			return false
		}
		return lo.EveryBy(graph.Predecessors(course), student.Completed)
	})
}
