package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/limaJavier/curriculum/pkg/model"
)

// ExportStudents writes students as a JSON array of records
func ExportStudents(file string, students []model.Student) error {
	return writeJson(file, students)
}

// ExportRecommendations writes a JSON object mapping student ids to their ordered recommendations
func ExportRecommendations(file string, recommendations map[string][]string) error {
	return writeJson(file, recommendations)
}

// ImportStudents reloads a file written by ExportStudents
func ImportStudents(file string) ([]model.Student, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read students: %w", err)
	}
	var students []model.Student
	if err := json.Unmarshal(bytes, &students); err != nil {
		return nil, fmt.Errorf("cannot parse students: %w", err)
	}
	return students, nil
}

func writeJson(file string, value any) error {
	bytes, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	if err := os.WriteFile(file, bytes, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}
