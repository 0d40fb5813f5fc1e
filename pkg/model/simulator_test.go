package model

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateScripted(t *testing.T) {
	parameters := DefaultSimulationParameters()

	t.Run("Target reached", func(t *testing.T) {
		//**Arrange
		simulator := NewRandomSimulator(diamondGraph(t), parameters)
		random := &scriptedRandom{
			t: t,
			// target=2, cap=5, pick A, pick B out of [B C], interest AI
			ints: []int{0, 2, 0, 0, 0},
			// both attempts pass (3.7), transcript grades 3.0 and 3.5
			floats: []float64{0.9, 0.9, 0.5, 0.75},
		}

		//**Act
		result := simulator.Simulate("S001", random)

		//**Assert
		assert.True(t, random.exhausted())
		assert.Equal(t, TargetReached, result.Outcome)
		assert.Equal(t, 2, result.TargetCourseCount)
		assert.Equal(t, 5, result.TermCap)
		assert.Equal(t, Student{
			Id:                "S001",
			CompletedCourses:  []string{"A", "B"},
			Grades:            map[string]float64{"A": 3.0, "B": 3.5},
			GPA:               3.25,
			Interest:          InterestAI,
			FailedCourses:     []string{},
			MaxCoursesPerTerm: 5,
		}, result.Student)
	})

	t.Run("Exhausted after failing the only root", func(t *testing.T) {
		//**Arrange
		simulator := NewRandomSimulator(diamondGraph(t), parameters)
		random := &scriptedRandom{
			t: t,
			// target=6, cap=3, pick A, interest Security
			ints:   []int{4, 0, 0, 1},
			floats: []float64{0.1}, // 1.3 fails
		}

		//**Act
		result := simulator.Simulate("S002", random)

		//**Assert
		assert.True(t, random.exhausted())
		assert.Equal(t, Exhausted, result.Outcome)
		assert.Empty(t, result.Student.CompletedCourses)
		assert.Equal(t, []string{"A"}, result.Student.FailedCourses)
		assert.Empty(t, result.Student.Grades)
		assert.Equal(t, 0.0, result.Student.GPA)
		assert.Equal(t, InterestSecurity, result.Student.Interest)
	})

	t.Run("Term limit reached", func(t *testing.T) {
		//**Arrange
		graph, err := BuildGraph(Catalog{{Course: "W"}, {Course: "X"}, {Course: "Y"}, {Course: "Z"}})
		require.NoError(t, err)
		simulator := NewRandomSimulator(graph, parameters)
		random := &scriptedRandom{
			t: t,
			// target=6, cap=3, always pick the first available course, interest Data Science
			ints:   []int{4, 0, 0, 0, 0, 2},
			floats: []float64{0.9, 0.0, 0.9, 0.0, 0.0},
		}

		//**Act
		result := simulator.Simulate("S003", random)

		//**Assert
		assert.True(t, random.exhausted())
		assert.Equal(t, TermLimitReached, result.Outcome)
		assert.Equal(t, []string{"W", "Y"}, result.Student.CompletedCourses)
		assert.Equal(t, []string{"X"}, result.Student.FailedCourses)
		assert.Equal(t, map[string]float64{"W": 2.0, "Y": 2.0}, result.Student.Grades)
		assert.Equal(t, 3, result.Student.MaxCoursesPerTerm)
		assert.Equal(t, InterestDataScience, result.Student.Interest)
	})

	t.Run("Exhausted takes precedence over term limit", func(t *testing.T) {
		//**Arrange
		graph, err := BuildGraph(Catalog{{Course: "X"}, {Course: "Y"}, {Course: "Z"}})
		require.NoError(t, err)
		simulator := NewRandomSimulator(graph, parameters)
		random := &scriptedRandom{
			t: t,
			// target=6, cap=3, the third attempt takes the last course, interest AI
			ints:   []int{4, 0, 0, 0, 0, 0},
			floats: []float64{0.9, 0.9, 0.9, 0.0, 0.0, 0.0},
		}

		//**Act
		result := simulator.Simulate("S005", random)

		//**Assert
		assert.True(t, random.exhausted())
		assert.Equal(t, Exhausted, result.Outcome)
		assert.Equal(t, 3, result.TermCap)
		assert.Equal(t, []string{"X", "Y", "Z"}, result.Student.CompletedCourses)
	})

	t.Run("A failed prerequisite blocks its dependants", func(t *testing.T) {
		//**Arrange
		simulator := NewRandomSimulator(diamondGraph(t), parameters)
		random := &scriptedRandom{
			t: t,
			// target=6, cap=5, pick A, pick B out of [B C], pick C, interest AI
			ints:   []int{4, 2, 0, 0, 0, 0},
			floats: []float64{0.9, 0.2, 0.9, 1.0 - 1e-9, 0.25},
		}

		//**Act
		result := simulator.Simulate("S004", random)

		//**Assert
		assert.True(t, random.exhausted())
		assert.Equal(t, Exhausted, result.Outcome)
		assert.Equal(t, []string{"A", "C"}, result.Student.CompletedCourses)
		assert.Equal(t, []string{"B"}, result.Student.FailedCourses)
		assert.Equal(t, map[string]float64{"A": 4.0, "C": 2.5}, result.Student.Grades)
		assert.Equal(t, 3.25, result.Student.GPA)
	})
}

func TestSimulateInvariants(t *testing.T) {
	graph := defaultGraph(t)
	parameters := DefaultSimulationParameters()
	simulator := NewRandomSimulator(graph, parameters)

	for i := range 500 {
		//**Arrange
		studentId := StudentId(i + 1)

		//**Act
		result := simulator.Simulate(studentId, NewStudentRandom(42, studentId))
		student := result.Student

		//**Assert
		assert.Equal(t, studentId, student.Id)
		assert.Empty(t, lo.Intersect(student.CompletedCourses, student.FailedCourses), "completed and failed must be disjoint")
		assert.Len(t, lo.Uniq(student.CompletedCourses), len(student.CompletedCourses))
		assert.LessOrEqual(t, len(student.CompletedCourses), result.TargetCourseCount)
		assert.LessOrEqual(t, len(student.CompletedCourses)+len(student.FailedCourses), result.TermCap)
		assert.Equal(t, result.TermCap, student.MaxCoursesPerTerm)
		assert.GreaterOrEqual(t, result.TargetCourseCount, parameters.MinTargetCourses)
		assert.LessOrEqual(t, result.TargetCourseCount, parameters.MaxTargetCourses)
		assert.GreaterOrEqual(t, result.TermCap, parameters.MinTermCap)
		assert.LessOrEqual(t, result.TermCap, parameters.MaxTermCap)
		assert.Contains(t, Interests, student.Interest)
		assert.NotEqual(t, Enrolling, result.Outcome)

		for _, course := range student.CompletedCourses {
			assert.False(t, student.Failed(course), "%v both completed and failed %v", studentId, course)
			for _, prerequisite := range graph.Predecessors(course) {
				assert.True(t, student.Completed(prerequisite), "%v completed %v without %v", studentId, course, prerequisite)
			}
		}

		assert.ElementsMatch(t, student.CompletedCourses, lo.Keys(student.Grades))
		for _, grade := range student.Grades {
			assert.GreaterOrEqual(t, grade, parameters.PassThreshold)
			assert.LessOrEqual(t, grade, parameters.MaxGrade)
		}

		if len(student.CompletedCourses) == 0 {
			assert.Equal(t, 0.0, student.GPA)
		} else {
			mean := lo.Sum(lo.Values(student.Grades)) / float64(len(student.Grades))
			assert.InDelta(t, mean, student.GPA, 0.005+1e-9)
			assert.Equal(t, round2(student.GPA), student.GPA)
		}

		switch result.Outcome {
		case TargetReached:
			assert.Len(t, student.CompletedCourses, result.TargetCourseCount)
		case TermLimitReached:
			assert.Equal(t, result.TermCap, len(student.CompletedCourses)+len(student.FailedCourses))
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	simulator := NewRandomSimulator(defaultGraph(t), DefaultSimulationParameters())

	for i := range 50 {
		studentId := StudentId(i + 1)

		first, err := json.Marshal(simulator.Simulate(studentId, NewStudentRandom(7, studentId)).Student)
		require.NoError(t, err)
		second, err := json.Marshal(simulator.Simulate(studentId, NewStudentRandom(7, studentId)).Student)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestSimulationParametersValidate(t *testing.T) {
	assert.NoError(t, DefaultSimulationParameters().Validate())

	invalid := []func(parameters *SimulationParameters){
		func(parameters *SimulationParameters) { parameters.MinTargetCourses = 7 },
		func(parameters *SimulationParameters) { parameters.MinTermCap = 0 },
		func(parameters *SimulationParameters) { parameters.MaxTermCap = 2 },
		func(parameters *SimulationParameters) { parameters.PassThreshold = 4.5 },
		func(parameters *SimulationParameters) { parameters.MinAttemptGrade = 2.5 },
	}
	for i, mutate := range invalid {
		parameters := DefaultSimulationParameters()
		mutate(&parameters)
		assert.Error(t, parameters.Validate(), "scenario %v", i)
	}
}
