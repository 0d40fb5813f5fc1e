package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawCourse struct {
	Course        string   `mapstructure:"course"`
	Prerequisites []string `mapstructure:"prerequisites"`
	Interest      string   `mapstructure:"interest"`
}

type RawCatalog struct {
	Courses []RawCourse `mapstructure:"courses"`
}

// CatalogFromJson reads a course table such as
//
//	{"courses": [{"course": "CS101"}, {"course": "AI101", "prerequisites": ["CS101"], "interest": "AI"}]}
//
// and returns the catalog together with the interest tags it declares
func CatalogFromJson(file string) (Catalog, InterestTable, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, InterestTable{}, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var catalogJson map[string]any
	if err := json.Unmarshal(bytes, &catalogJson); err != nil {
		return nil, InterestTable{}, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	var rawCatalog RawCatalog
	if err := mapstructure.Decode(catalogJson, &rawCatalog); err != nil {
		return nil, InterestTable{}, fmt.Errorf("cannot decode catalog file: %w", err)
	}
	return ProcessRawCatalog(rawCatalog)
}

func ProcessRawCatalog(rawCatalog RawCatalog) (Catalog, InterestTable, error) {
	catalog := make(Catalog, 0, len(rawCatalog.Courses))
	tags := make(map[string]Interest)
	seen := make(map[string]bool)

	for _, rawCourse := range rawCatalog.Courses {
		if rawCourse.Course == "" {
			return nil, InterestTable{}, &ConfigurationError{Reason: "course identifier cannot be empty"}
		} else if seen[rawCourse.Course] {
			return nil, InterestTable{}, &ConfigurationError{Course: rawCourse.Course, Reason: "duplicate course"}
		}
		seen[rawCourse.Course] = true

		if rawCourse.Interest != "" {
			interest := Interest(rawCourse.Interest)
			if !slices.Contains(Interests, interest) {
				return nil, InterestTable{}, &ConfigurationError{
					Course: rawCourse.Course,
					Reason: fmt.Sprintf("unknown interest \"%v\"", rawCourse.Interest),
				}
			}
			tags[rawCourse.Course] = interest
		}

		catalog = append(catalog, CatalogEntry{
			Course:        rawCourse.Course,
			Prerequisites: lo.Uniq(rawCourse.Prerequisites),
		})
	}

	return catalog, NewInterestTable(tags), nil
}
