package model

import (
	"math"

	"github.com/samber/lo"
)

// Student is the frozen record produced by a simulation run
type Student struct {
	Id                string             `json:"id"`
	CompletedCourses  []string           `json:"completed_courses"` // In completion order
	Grades            map[string]float64 `json:"grades"`            // Only completed courses are graded
	GPA               float64            `json:"gpa"`
	Interest          Interest           `json:"interest"`
	FailedCourses     []string           `json:"failed_courses"`
	MaxCoursesPerTerm int                `json:"max_courses_per_term"`
}

func (student Student) Completed(course string) bool {
	return lo.Contains(student.CompletedCourses, course)
}

func (student Student) Failed(course string) bool {
	return lo.Contains(student.FailedCourses, course)
}

func computeGPA(completed []string, grades map[string]float64) float64 {
	if len(completed) == 0 {
		return 0.0
	}
	total := lo.SumBy(completed, func(course string) float64 { return grades[course] })
	return round2(total / float64(len(completed)))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
