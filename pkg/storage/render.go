package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/awalterschulze/gographviz"
	"github.com/goccy/go-graphviz"
	"github.com/samber/lo"

	"github.com/limaJavier/curriculum/pkg/model"
)

const graphName = "curriculum"

var (
	graphAttributes = map[string]string{
		"label":   `"University Curriculum Graph"`,
		"rankdir": "LR",
	}
	nodeAttributes = map[string]string{
		"shape":     "ellipse",
		"style":     "filled",
		"fillcolor": "lightblue",
	}
	edgeAttributes = map[string]string{
		"color": "gray",
	}
)

// BuildDot renders graph as a directed Graphviz document
func BuildDot(graph model.PrerequisiteGraph) (string, error) {
	dot := gographviz.NewGraph()
	if err := dot.SetName(graphName); err != nil {
		return "", err
	}
	if err := dot.SetDir(true); err != nil {
		return "", err
	}
	for field, value := range graphAttributes {
		if err := dot.AddAttr(graphName, field, value); err != nil {
			return "", fmt.Errorf("cannot set graph attribute \"%v\": %w", field, err)
		}
	}

	for _, course := range graph.Courses() {
		if err := dot.AddNode(graphName, quote(course), lo.Assign(nodeAttributes)); err != nil {
			return "", fmt.Errorf("cannot add course \"%v\": %w", course, err)
		}
	}
	for _, edge := range graph.Edges() {
		if err := dot.AddEdge(quote(edge.Prerequisite), quote(edge.Course), true, lo.Assign(edgeAttributes)); err != nil {
			return "", fmt.Errorf("cannot add prerequisite %v->%v: %w", edge.Prerequisite, edge.Course, err)
		}
	}

	return dot.String(), nil
}

// RenderGraph writes the Graphviz document of graph to file
func RenderGraph(file string, graph model.PrerequisiteGraph) error {
	dot, err := BuildDot(graph)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(dot), 0666); err != nil {
		return fmt.Errorf("cannot write curriculum rendering: %w", err)
	}
	return nil
}

func quote(id string) string {
	return fmt.Sprintf("%q", id)
}

// RenderImage lays out graph and writes it to file as a PNG image
func RenderImage(ctx context.Context, file string, graph model.PrerequisiteGraph) error {
	dot, err := BuildDot(graph)
	if err != nil {
		return err
	}

	renderer, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("cannot initialize graphviz: %w", err)
	}
	defer renderer.Close()

	layout, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("cannot parse curriculum rendering: %w", err)
	}
	defer layout.Close()

	if err := renderer.RenderFilename(ctx, layout, graphviz.PNG, file); err != nil {
		return fmt.Errorf("cannot write curriculum image: %w", err)
	}
	return nil
}
