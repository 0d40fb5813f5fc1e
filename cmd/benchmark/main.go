package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/curriculum/pkg/model"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 1
	repetitions = 3
)

var (
	populationSizes = []int{100, 1_000, 10_000, 100_000}
	workerCounts    = []int{1, 2, 4, 8}
	outcomes        = []model.Outcome{model.TargetReached, model.TermLimitReached, model.Exhausted}
)

type PopulationSummary struct {
	Students      int
	MeanGPA       float64
	MeanCompleted float64
	MeanFailed    float64
	Outcomes      map[model.Outcome]int
}

type BenchmarkResult struct {
	Size     int
	Workers  int
	Duration int64 // Best of the repetitions, in microseconds
	Summary  PopulationSummary
}

func main() {
	graph, err := model.BuildGraph(model.DefaultCatalog())
	if err != nil {
		log.Fatalf("cannot build curriculum graph: %v", err)
	}
	simulator := model.NewRandomSimulator(graph, model.DefaultSimulationParameters())

	results := make([]BenchmarkResult, 0, len(populationSizes)*len(workerCounts))
	for _, size := range populationSizes {
		for _, workers := range workerCounts {
			fmt.Printf("Benchmarking population of %v students with %v workers\n", size, workers)

			duration, population := measure(simulator, size, workers)
			results = append(results, BenchmarkResult{
				Size:     size,
				Workers:  workers,
				Duration: duration.Microseconds(),
				Summary:  summarize(population),
			})
		}
	}

	toCsv(results)
}

func measure(simulator model.Simulator, size, workers int) (time.Duration, []model.SimulationResult) {
	var best time.Duration
	var population []model.SimulationResult
	for i := range repetitions {
		start := time.Now()
		results, err := model.SimulatePopulation(context.Background(), simulator, model.PopulationOptions{
			Size:    size,
			Seed:    seed,
			Workers: workers,
		})
		elapsed := time.Since(start)
		if err != nil {
			log.Fatalf("an error occurred while simulating %v students with %v workers: %v", size, workers, err)
		}

		if i == 0 || elapsed < best {
			best = elapsed
		}
		population = results
	}
	return best, population
}

func summarize(population []model.SimulationResult) PopulationSummary {
	summary := PopulationSummary{
		Students: len(population),
		Outcomes: lo.CountValuesBy(population, func(result model.SimulationResult) model.Outcome { return result.Outcome }),
	}
	if len(population) == 0 {
		return summary
	}

	total := float64(len(population))
	summary.MeanGPA = lo.SumBy(population, func(result model.SimulationResult) float64 { return result.Student.GPA }) / total
	summary.MeanCompleted = float64(lo.SumBy(population, func(result model.SimulationResult) int { return len(result.Student.CompletedCourses) })) / total
	summary.MeanFailed = float64(lo.SumBy(population, func(result model.SimulationResult) int { return len(result.Student.FailedCourses) })) / total
	return summary
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header()); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}
	for _, result := range results {
		if err := writer.Write(record(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func header() []string {
	header := []string{"Students", "Workers", "Duration(us)", "Mean GPA", "Mean Completed", "Mean Failed"}
	for _, outcome := range outcomes {
		header = append(header, outcome.String())
	}
	return header
}

func record(result BenchmarkResult) []string {
	record := []string{
		fmt.Sprintf("%d", result.Size),
		fmt.Sprintf("%d", result.Workers),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.3f", result.Summary.MeanGPA),
		fmt.Sprintf("%.3f", result.Summary.MeanCompleted),
		fmt.Sprintf("%.3f", result.Summary.MeanFailed),
	}
	for _, outcome := range outcomes {
		record = append(record, fmt.Sprintf("%d", result.Summary.Outcomes[outcome]))
	}
	return record
}
