package model

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type PopulationOptions struct {
	Size    int
	Seed    uint64
	Workers int
}

// StudentId returns the identifier of the i-th (1-based) simulated student
func StudentId(i int) string {
	return fmt.Sprintf("S%03d", i)
}

// SimulatePopulation simulates options.Size students using up to options.Workers goroutines. Results are ordered by
// student id and do not depend on the number of workers
func SimulatePopulation(ctx context.Context, simulator Simulator, options PopulationOptions) ([]SimulationResult, error) {
	if options.Size < 0 {
		return nil, fmt.Errorf("population size must be non-negative: %v", options.Size)
	}

	results := make([]SimulationResult, options.Size)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(options.Workers, 1))
	for i := range options.Size {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			studentId := StudentId(i + 1)
			results[i] = simulator.Simulate(studentId, NewStudentRandom(options.Seed, studentId))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("population simulation interrupted: %w", err)
	}
	return results, nil
}

func Students(results []SimulationResult) []Student {
	students := make([]Student, 0, len(results))
	for _, result := range results {
		students = append(students, result.Student)
	}
	return students
}

// RecommendSample recommends courses for the first sampleSize students, keyed by student id
func RecommendSample(recommender Recommender, graph PrerequisiteGraph, students []Student, sampleSize int) map[string][]string {
	recommendations := make(map[string][]string)
	for _, student := range students[:min(len(students), max(sampleSize, 0))] {
		recommendations[student.Id] = recommender.Recommend(student, graph)
	}
	return recommendations
}
