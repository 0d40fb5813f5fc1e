package model

import "fmt"

// ConfigurationError reports a malformed course catalog: an unknown course, a missing prerequisite
// reference or a prerequisite cycle
type ConfigurationError struct {
	Course string
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid curriculum at course \"%v\": %v", err.Course, err.Reason)
}
