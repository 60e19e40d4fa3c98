package domain

// TestCase is one extracted record from a test-case table. Immutable after
// construction; slices of TestCase keep source order.
type TestCase struct {
	Name     string `json:"name"`
	CQL      string `json:"cql"`
	Expected Value  `json:"expected"`
}

// FunctionCases pairs a test function name with its cases in source order.
type FunctionCases struct {
	Function string
	Cases    []TestCase
}
