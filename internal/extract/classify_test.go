package extract

import (
	"testing"

	"cqlex/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultDialect())

	tests := []struct {
		name string
		expr string
		want domain.Value
	}{
		{
			name: "bare integer",
			expr: "42",
			want: domain.IntegerValue(42),
		},
		{
			name: "negative integer",
			expr: "-13",
			want: domain.IntegerValue(-13),
		},
		{
			name: "long constructor",
			expr: "int64(-7)",
			want: domain.LongValue(-7),
		},
		{
			name: "nil token",
			expr: "nil",
			want: domain.NullValue(),
		},
		{
			name: "float literal",
			expr: "2.5",
			want: domain.FloatValue(2.5),
		},
		{
			name: "float constructor with literal",
			expr: "float64(2.5)",
			want: domain.FloatValue(2.5),
		},
		{
			name: "float constructor with symbolic inner",
			expr: "float64(x)",
			want: domain.DecimalValue("x"),
		},
		{
			name: "boolean true",
			expr: "true",
			want: domain.BooleanValue(true),
		},
		{
			name: "boolean false",
			expr: "false",
			want: domain.BooleanValue(false),
		},
		{
			name: "quoted string",
			expr: `"positive"`,
			want: domain.StringValue("positive"),
		},
		{
			name: "quoted string keeps escapes verbatim",
			expr: `"a\nb"`,
			want: domain.StringValue(`a\nb`),
		},
		{
			name: "quantity",
			expr: "result.Quantity{Value: 5, Unit: model.Centimeter}",
			want: domain.QuantityValue(5, "Centimeter"),
		},
		{
			name: "datetime",
			expr: "result.DateTime{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Precision: model.DAY}",
			want: domain.TemporalValue(domain.KindDateTime, "2024, 3, 31, 0, 0, 0, 0, time.UTC", "DAY"),
		},
		{
			name: "date",
			expr: "result.Date{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Precision: model.MONTH}",
			want: domain.TemporalValue(domain.KindDate, "2024, 3, 31, 0, 0, 0, 0, time.UTC", "MONTH"),
		},
		{
			name: "time",
			expr: "result.Time{Date: time.Date(0, time.January, 1, 10, 30, 0, 0, time.UTC), Precision: model.MINUTE}",
			want: domain.TemporalValue(domain.KindTime, "0, time.January, 1, 10, 30, 0, 0, time.UTC", "MINUTE"),
		},
		{
			name: "interval raw",
			expr: "result.Interval{Low: newOrFatal(t, 1), High: newOrFatal(t, 2)}",
			want: domain.RawValue(domain.KindInterval, "Low: newOrFatal(t, 1), High: newOrFatal(t, 2)"),
		},
		{
			name: "list raw spanning lines",
			expr: "result.List{Value: []result.Value{\n\tone,\n\ttwo,\n}}",
			want: domain.RawValue(domain.KindList, "Value: []result.Value{\n\tone,\n\ttwo,\n}"),
		},
		{
			name: "tuple raw",
			expr: "result.Tuple{Value: map[string]result.Value{}}",
			want: domain.RawValue(domain.KindTuple, "Value: map[string]result.Value{}"),
		},
		{
			name: "max int constant",
			expr: "math.MaxInt32",
			want: domain.IntegerValue(2147483647),
		},
		{
			name: "min int constant",
			expr: "math.MinInt32",
			want: domain.IntegerValue(-2147483648),
		},
		{
			name: "wrapper unwraps",
			expr: "newOrFatal(t, 3)",
			want: domain.IntegerValue(3),
		},
		{
			name: "wrapper with nested parens",
			expr: "newOrFatal(t, float64(sum(1, 2)))",
			want: domain.DecimalValue("sum(1, 2)"),
		},
		{
			name: "wrapper spanning lines",
			expr: "newOrFatal(t, result.List{\n\tValue: vals,\n})",
			want: domain.RawValue(domain.KindList, "Value: vals,"),
		},
		{
			name: "nested wrapper",
			expr: "newOrFatal(t, newOrFatal(t, true))",
			want: domain.BooleanValue(true),
		},
		{
			name: "unknown expression falls back to opaque",
			expr: "someHelper(1, 2)",
			want: domain.OpaqueValue("someHelper(1, 2)"),
		},
		{
			name: "surrounding whitespace trimmed",
			expr: "  42  ",
			want: domain.IntegerValue(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.expr)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

// Patterns overlap; the fixed order decides. A decimal-point literal must
// classify as Float before the float64 constructor is even considered, and
// a Quantity must not fall into the opaque bucket.
func TestClassifier_PriorityOrder(t *testing.T) {
	c := NewClassifier(DefaultDialect())

	t.Run("integer wins over long pattern input", func(t *testing.T) {
		if got := c.Classify("7"); got.Kind != domain.KindInteger {
			t.Errorf("expected Integer, got %v", got.Kind)
		}
	})

	t.Run("float literal wins over float constructor", func(t *testing.T) {
		if got := c.Classify("1.5"); got.Kind != domain.KindFloat {
			t.Errorf("expected Float, got %v", got.Kind)
		}
	})

	t.Run("quoted number stays a string", func(t *testing.T) {
		got := c.Classify(`"42"`)
		if got != domain.StringValue("42") {
			t.Errorf("expected String(42), got %+v", got)
		}
	})

	t.Run("quantity beats raw fallback", func(t *testing.T) {
		got := c.Classify("result.Quantity{Value: 4.5, Unit: model.Year}")
		if got != domain.QuantityValue(4.5, "Year") {
			t.Errorf("expected Quantity, got %+v", got)
		}
	})

	t.Run("non-numeric quantity value falls through to opaque", func(t *testing.T) {
		expr := "result.Quantity{Value: someVar, Unit: model.Year}"
		got := c.Classify(expr)
		if got != domain.OpaqueValue(expr) {
			t.Errorf("expected Opaque, got %+v", got)
		}
	})
}

// Classify is total: every input yields exactly one populated variant.
func TestClassifier_Totality(t *testing.T) {
	c := NewClassifier(DefaultDialect())

	inputs := []string{
		"",
		`"`,
		"{{{",
		"}",
		"((((",
		"newOrFatal(t,",
		"int64(notanumber)",
		"9999999999999999999999999999",
		"result.Quantity{",
		"\x00\xff",
		"nil nil",
	}

	for _, input := range inputs {
		got := c.Classify(input)
		if got.Kind < domain.KindNull || got.Kind > domain.KindOpaque {
			t.Errorf("Classify(%q) returned invalid kind %v", input, got.Kind)
		}
	}
}

func TestClassifier_CustomDialect(t *testing.T) {
	d := DefaultDialect()
	d.WrapperName = "mustValue"
	d.ResultPkg = "res"
	c := NewClassifier(d)

	if got := c.Classify("mustValue(t, 9)"); got != domain.IntegerValue(9) {
		t.Errorf("expected custom wrapper to unwrap, got %+v", got)
	}
	if got := c.Classify("res.List{x}"); got != domain.RawValue(domain.KindList, "x") {
		t.Errorf("expected custom result package to match, got %+v", got)
	}
	// The default wrapper is no longer recognized.
	if got := c.Classify("newOrFatal(t, 9)"); got.Kind != domain.KindOpaque {
		t.Errorf("expected Opaque for unrecognized wrapper, got %v", got.Kind)
	}
}
