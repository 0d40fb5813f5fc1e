package model

type Recommender interface {
	// Returns at most student.MaxCoursesPerTerm eligible courses for the student's next term. Never fails; the
	// result is empty when nothing is eligible
	Recommend(student Student, graph PrerequisiteGraph) []string
}

func NewHeuristicRecommender(interests InterestTable) Recommender {
	return &heuristicRecommender{
		interests: interests,
	}
}
