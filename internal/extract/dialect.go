package extract

// Dialect is the surface grammar the extractor recognizes: field labels,
// naming conventions and wrapper identifiers of the test-table convention.
// Keeping these in one table lets sibling dialects swap labels without
// touching the scanning logic.
type Dialect struct {
	// FuncPrefix is the identifier prefix of test functions ("Test").
	FuncPrefix string
	// TableVar is the local variable holding the case table ("tests").
	TableVar string

	// Field labels inside a case block.
	NameField     string
	ExprField     string
	ExpectedField string
	// NextFields are the labels (with trailing colon) that may follow the
	// expected value; a top-level comma before one of them ends the value.
	NextFields []string

	// WrapperName and WrapperHandle describe the fatal-on-error constructor
	// newOrFatal(t, inner): the wrapper is discarded, inner is classified.
	WrapperName   string
	WrapperHandle string

	// Constructor namespaces of the expected-value expressions.
	ResultPkg string // result.Quantity, result.List, ...
	ModelPkg  string // model.Centimeter, model.DAY, ...
	DateCtor  string // time.Date

	// NullTokens classify as Null.
	NullTokens []string

	// Named numeric-limit constants mapped to concrete values.
	MaxIntConst string
	MinIntConst string
}

// DefaultDialect is the google/cql test-table convention.
func DefaultDialect() Dialect {
	return Dialect{
		FuncPrefix:    "Test",
		TableVar:      "tests",
		NameField:     "name",
		ExprField:     "cql",
		ExpectedField: "wantResult",
		NextFields:    []string{"name:", "cql:", "wantModel:", "wantResult:"},
		WrapperName:   "newOrFatal",
		WrapperHandle: "t",
		ResultPkg:     "result",
		ModelPkg:      "model",
		DateCtor:      "time.Date",
		NullTokens:    []string{"nil"},
		MaxIntConst:   "math.MaxInt32",
		MinIntConst:   "math.MinInt32",
	}
}
