package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/limaJavier/curriculum/internal/config"
	"github.com/limaJavier/curriculum/internal/logging"
	"github.com/limaJavier/curriculum/pkg/model"
	"github.com/limaJavier/curriculum/pkg/storage"
)

const (
	graphFile           = "curriculum_graph.msgpack"
	renderFile          = "curriculum_graph.dot"
	imageFile           = "curriculum_graph.png"
	studentsFile        = "students.json"
	recommendationsFile = "heuristic_recommendations.json"
	completionMessage   = "Curriculum, student simulation, and heuristic-based recommendations complete."
)

func main() {
	if err := run(".", os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes the whole pipeline with dir as working directory: configuration is looked up there and relative
// paths in it are resolved against it
func run(dir string, out io.Writer) error {
	ctx := context.Background()

	cfg, configFile, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr).With("run_id", uuid.NewString())
	if configFile != "" {
		logger.Debug("configuration loaded", "file", configFile)
	}

	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(dir, path)
	}
	outputDir := resolve(cfg.OutputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	output := func(name string) string { return filepath.Join(outputDir, name) }

	//** Build and persist curriculum
	catalog, interests := model.DefaultCatalog(), model.DefaultInterestTable()
	if cfg.Catalog != "" {
		catalog, interests, err = model.CatalogFromJson(resolve(cfg.Catalog))
		if err != nil {
			return fmt.Errorf("cannot load course catalog: %w", err)
		}
	}

	graph, err := model.BuildGraph(catalog)
	if err != nil {
		return fmt.Errorf("cannot build curriculum graph: %w", err)
	}
	logger.Info("curriculum graph built", "courses", len(graph.Courses()), "prerequisites", len(graph.Edges()))

	if err := storage.SaveGraph(output(graphFile), graph); err != nil {
		return err
	}

	//** Render curriculum
	if err := storage.RenderGraph(output(renderFile), graph); err != nil {
		return err
	}
	if err := storage.RenderImage(ctx, output(imageFile), graph); err != nil {
		return err
	}
	logger.Info("curriculum graph written", "blob", output(graphFile), "image", output(imageFile))

	//** Simulate students
	simulator := model.NewRandomSimulator(graph, cfg.Simulation)
	results, err := model.SimulatePopulation(ctx, simulator, model.PopulationOptions{
		Size:    cfg.Students,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}
	logger.Info("population simulated",
		"students", len(results),
		"outcomes", lo.CountValuesBy(results, func(result model.SimulationResult) string { return result.Outcome.String() }),
	)

	students := model.Students(results)
	if err := storage.ExportStudents(output(studentsFile), students); err != nil {
		return err
	}

	//** Recommend courses for a sample
	recommender := model.NewHeuristicRecommender(interests)
	recommendations := model.RecommendSample(recommender, graph, students, cfg.SampleSize)
	if err := storage.ExportRecommendations(output(recommendationsFile), recommendations); err != nil {
		return err
	}
	logger.Info("recommendations written", "students", len(recommendations), "file", output(recommendationsFile))

	_, err = fmt.Fprintln(out, completionMessage)
	return err
}
