package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// RandomSource is the generator a simulation draws from. *rand.Rand satisfies it
type RandomSource interface {
	// Returns a uniform integer in [0, n)
	IntN(n int) int
	// Returns a uniform float in [0.0, 1.0)
	Float64() float64
}

// Outcome is the state a simulation run stops in. When several stop conditions hold at once, TargetReached takes
// precedence over Exhausted, which takes precedence over TermLimitReached
type Outcome int

const (
	Enrolling Outcome = iota
	TermLimitReached
	TargetReached
	Exhausted
)

var outcomeNames = map[Outcome]string{
	Enrolling:        "enrolling",
	TermLimitReached: "term-limit-reached",
	TargetReached:    "target-reached",
	Exhausted:        "exhausted",
}

func (outcome Outcome) String() string {
	return outcomeNames[outcome]
}

// SimulationParameters bounds every random draw of a simulation run. Integer ranges are inclusive
type SimulationParameters struct {
	MinTargetCourses int     `mapstructure:"minTargetCourses"`
	MaxTargetCourses int     `mapstructure:"maxTargetCourses"`
	MinTermCap       int     `mapstructure:"minTermCap"`
	MaxTermCap       int     `mapstructure:"maxTermCap"`
	MinAttemptGrade  float64 `mapstructure:"minAttemptGrade"`
	PassThreshold    float64 `mapstructure:"passThreshold"`
	MaxGrade         float64 `mapstructure:"maxGrade"`
}

func DefaultSimulationParameters() SimulationParameters {
	return SimulationParameters{
		MinTargetCourses: 2,
		MaxTargetCourses: 6,
		MinTermCap:       3,
		MaxTermCap:       5,
		MinAttemptGrade:  1.0,
		PassThreshold:    2.0,
		MaxGrade:         4.0,
	}
}

func (parameters SimulationParameters) Validate() error {
	if parameters.MinTargetCourses < 0 || parameters.MinTargetCourses > parameters.MaxTargetCourses {
		return fmt.Errorf("invalid target course range [%v, %v]", parameters.MinTargetCourses, parameters.MaxTargetCourses)
	} else if parameters.MinTermCap < 1 || parameters.MinTermCap > parameters.MaxTermCap {
		return fmt.Errorf("invalid term cap range [%v, %v]", parameters.MinTermCap, parameters.MaxTermCap)
	} else if parameters.MinAttemptGrade > parameters.PassThreshold || parameters.PassThreshold > parameters.MaxGrade {
		return fmt.Errorf("grades must satisfy %v <= %v <= %v", parameters.MinAttemptGrade, parameters.PassThreshold, parameters.MaxGrade)
	}
	return nil
}

// SimulationResult is a simulated student together with the limits drawn for its run and the reason the run stopped
type SimulationResult struct {
	Student           Student
	TargetCourseCount int
	TermCap           int
	Outcome           Outcome
}

type Simulator interface {
	// Simulates the progression of a single student drawing every random value from random.
	// Two calls with equally seeded sources and the same studentId return identical results
	Simulate(studentId string, random RandomSource) SimulationResult
}

func NewRandomSimulator(graph PrerequisiteGraph, parameters SimulationParameters) Simulator {
	return &randomSimulator{
		graph:      graph,
		parameters: parameters,
	}
}

// NewStudentRandom returns the generator used for studentId under seed. Each student gets its own stream so a
// population can be simulated in any order (or in parallel) with the same results
func NewStudentRandom(seed uint64, studentId string) *rand.Rand {
	return rand.New(rand.NewPCG(seed, xxhash.Sum64String(studentId)))
}
