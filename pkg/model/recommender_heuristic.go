package model

import "github.com/samber/lo"

type heuristicRecommender struct {
	interests InterestTable
}

func (recommender *heuristicRecommender) Recommend(student Student, graph PrerequisiteGraph) []string {
	eligible := EligibleCourses(student, graph)

	matches := func(course string, _ int) bool {
		interest, ok := recommender.interests.Of(course)
		return ok && interest == student.Interest
	}

	// Ties inside each partition keep course-iteration order; it is not a ranking
	prioritized := lo.Filter(eligible, matches)
	others := lo.Reject(eligible, matches)

	recommended := append(prioritized, others...)
	return recommended[:min(len(recommended), max(student.MaxCoursesPerTerm, 0))]
}
