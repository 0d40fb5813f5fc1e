package model

import (
	"github.com/samber/lo"
)

type randomSimulator struct {
	graph      PrerequisiteGraph
	parameters SimulationParameters
}

func (simulator *randomSimulator) Simulate(studentId string, random RandomSource) SimulationResult {
	parameters := simulator.parameters

	//** Draw per-student limits
	target := uniformInt(random, parameters.MinTargetCourses, parameters.MaxTargetCourses)
	termCap := uniformInt(random, parameters.MinTermCap, parameters.MaxTermCap)

	//** Enrollment loop
	completed := make([]string, 0, target)
	failed := make([]string, 0)
	completedSet := make(map[string]bool)
	failedSet := make(map[string]bool)
	available := simulator.graph.Roots()
	attempts := 0

	outcome := Enrolling
	for outcome == Enrolling {
		switch {
		case len(completed) >= target:
			outcome = TargetReached
		case len(available) == 0:
			outcome = Exhausted
		case attempts >= termCap:
			outcome = TermLimitReached
		default:
			course := available[random.IntN(len(available))]
			grade := uniformGrade(random, parameters.MinAttemptGrade, parameters.MaxGrade)

			// A failed course is never retried and keeps blocking its dependants
			if grade >= parameters.PassThreshold {
				completed = append(completed, course)
				completedSet[course] = true
			} else {
				failed = append(failed, course)
				failedSet[course] = true
			}
			attempts++

			available = simulator.available(completedSet, failedSet)
		}
	}

	//** Transcript: completed courses are re-graded independently of the attempt grade
	grades := make(map[string]float64, len(completed))
	for _, course := range completed {
		grades[course] = uniformGrade(random, parameters.PassThreshold, parameters.MaxGrade)
	}

	student := Student{
		Id:                studentId,
		CompletedCourses:  completed,
		Grades:            grades,
		GPA:               computeGPA(completed, grades),
		Interest:          Interests[random.IntN(len(Interests))],
		FailedCourses:     failed,
		MaxCoursesPerTerm: termCap,
	}

	return SimulationResult{
		Student:           student,
		TargetCourseCount: target,
		TermCap:           termCap,
		Outcome:           outcome,
	}
}

// Recomputes the available set from scratch since a single completion can unlock several courses at once
func (simulator *randomSimulator) available(completed, failed map[string]bool) []string {
	return lo.Filter(simulator.graph.Courses(), func(course string, _ int) bool {
		if completed[course] || failed[course] {
			return false
		}
		return lo.EveryBy(simulator.graph.Predecessors(course), func(prerequisite string) bool {
			return completed[prerequisite]
		})
	})
}

func uniformInt(random RandomSource, lower, upper int) int {
	return lower + random.IntN(upper-lower+1)
}

func uniformGrade(random RandomSource, lower, upper float64) float64 {
	return round2(lower + (upper-lower)*random.Float64())
}
