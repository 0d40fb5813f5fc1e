package model

import "github.com/samber/lo"

type CatalogEntry struct {
	Course        string
	Prerequisites []string
}

// Catalog is an ordered course table. Its order is the graph's course-iteration order
type Catalog []CatalogEntry

type Interest string

const (
	InterestAI          Interest = "AI"
	InterestSecurity    Interest = "Security"
	InterestDataScience Interest = "Data Science"
)

// Interests is the fixed set a student's interest is drawn from
var Interests = []Interest{InterestAI, InterestSecurity, InterestDataScience}

// InterestTable maps a course to its interest tag. Courses missing from the table have no tag
type InterestTable struct {
	tags map[string]Interest
}

func NewInterestTable(tags map[string]Interest) InterestTable {
	return InterestTable{tags: lo.Assign(tags)}
}

// Of returns the interest tag of course and whether it has one
func (table InterestTable) Of(course string) (Interest, bool) {
	interest, ok := table.tags[course]
	return interest, ok
}

func DefaultCatalog() Catalog {
	return Catalog{
		{Course: "CS101"},
		{Course: "CS102", Prerequisites: []string{"CS101"}},
		{Course: "CS201", Prerequisites: []string{"CS102"}},
		{Course: "CS202", Prerequisites: []string{"CS102"}},
		{Course: "CS301", Prerequisites: []string{"CS201"}},
		{Course: "AI101", Prerequisites: []string{"CS201"}},
		{Course: "DS101", Prerequisites: []string{"CS102"}},
		{Course: "SEC101", Prerequisites: []string{"CS201"}},
		{Course: "MATH101"},
		{Course: "MATH201", Prerequisites: []string{"MATH101"}},
	}
}

func DefaultInterestTable() InterestTable {
	return NewInterestTable(map[string]Interest{
		"AI101":  InterestAI,
		"SEC101": InterestSecurity,
		"DS101":  InterestDataScience,
	})
}
