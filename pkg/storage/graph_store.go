package storage

import (
	"fmt"
	"os"

	"github.com/limaJavier/curriculum/pkg/model"
	"github.com/vmihailenco/msgpack/v5"
)

type graphBlob struct {
	Courses []string    `msgpack:"courses"`
	Edges   [][2]string `msgpack:"edges"`
}

// EncodeGraph serializes the nodes and edges of graph (in iteration order) as a msgpack blob
func EncodeGraph(graph model.PrerequisiteGraph) ([]byte, error) {
	blob := graphBlob{
		Courses: graph.Courses(),
		Edges:   make([][2]string, 0, len(graph.Edges())),
	}
	for _, edge := range graph.Edges() {
		blob.Edges = append(blob.Edges, [2]string{edge.Prerequisite, edge.Course})
	}

	bytes, err := msgpack.Marshal(&blob)
	if err != nil {
		return nil, fmt.Errorf("cannot encode curriculum graph: %w", err)
	}
	return bytes, nil
}

func DecodeGraph(bytes []byte) (model.PrerequisiteGraph, error) {
	var blob graphBlob
	if err := msgpack.Unmarshal(bytes, &blob); err != nil {
		return nil, fmt.Errorf("cannot decode curriculum graph: %w", err)
	}

	graph := model.NewPrerequisiteGraph()
	for _, course := range blob.Courses {
		graph.AddCourse(course)
	}
	for _, edge := range blob.Edges {
		if err := graph.AddPrerequisite(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("corrupted curriculum graph: %w", err)
		}
	}
	return graph, nil
}

func SaveGraph(file string, graph model.PrerequisiteGraph) error {
	bytes, err := EncodeGraph(graph)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, bytes, 0666); err != nil {
		return fmt.Errorf("cannot write curriculum graph: %w", err)
	}
	return nil
}

func LoadGraph(file string) (model.PrerequisiteGraph, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read curriculum graph: %w", err)
	}
	return DecodeGraph(bytes)
}
