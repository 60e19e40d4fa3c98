package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"cqlex/internal/domain"
)

// Classifier turns an expected-value expression into a typed domain.Value.
// Classification is an ordered sequence of pattern attempts; the first match
// wins and the order matters because patterns overlap (a bare float literal
// must win over the float64 constructor, a Quantity over the raw fallback).
// The final catch-all makes Classify total: every input yields some Value.
type Classifier struct {
	dialect Dialect

	wrapper   *regexp.Regexp
	integer   *regexp.Regexp
	long      *regexp.Regexp
	float     *regexp.Regexp
	floatCtor *regexp.Regexp
	quantity  *regexp.Regexp
	dateTime  *regexp.Regexp
	date      *regexp.Regexp
	timeOfDay *regexp.Regexp
	interval  *regexp.Regexp
	list      *regexp.Regexp
	tuple     *regexp.Regexp
}

// NewClassifier compiles the dialect's patterns once.
func NewClassifier(d Dialect) *Classifier {
	wrapper := regexp.QuoteMeta(d.WrapperName)
	handle := regexp.QuoteMeta(d.WrapperHandle)
	res := regexp.QuoteMeta(d.ResultPkg)
	model := regexp.QuoteMeta(d.ModelPkg)
	dateCtor := regexp.QuoteMeta(d.DateCtor)

	temporal := func(ctor string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(
			`^%s\.%s\{Date:\s*%s\((.+)\),\s*Precision:\s*%s\.(\w+)\}`,
			res, ctor, dateCtor, model))
	}
	composite := func(ctor string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(`(?s)^%s\.%s\{(.+)\}`, res, ctor))
	}

	return &Classifier{
		dialect:   d,
		wrapper:   regexp.MustCompile(fmt.Sprintf(`(?s)^%s\(%s,\s*(.+)\)`, wrapper, handle)),
		integer:   regexp.MustCompile(`^-?\d+$`),
		long:      regexp.MustCompile(`^int64\((-?\d+)\)$`),
		float:     regexp.MustCompile(`^-?\d+\.\d+$`),
		floatCtor: regexp.MustCompile(`^float64\((.+)\)$`),
		quantity: regexp.MustCompile(fmt.Sprintf(
			`^%s\.Quantity\{Value:\s*(.+),\s*Unit:\s*%s\.(\w+)\}`, res, model)),
		dateTime:  temporal("DateTime"),
		date:      temporal("Date"),
		timeOfDay: temporal("Time"),
		interval:  composite("Interval"),
		list:      composite("List"),
		tuple:     composite("Tuple"),
	}
}

// Classify maps an expression to a Value. Total: unrecognized expressions
// come back as Opaque with the trimmed text preserved verbatim.
func (c *Classifier) Classify(expr string) domain.Value {
	s := strings.TrimSpace(expr)

	// Discard the fatal-on-error wrapper and classify the inner expression.
	if m := c.wrapper.FindStringSubmatch(s); m != nil {
		return c.Classify(m[1])
	}

	for _, tok := range c.dialect.NullTokens {
		if s == tok {
			return domain.NullValue()
		}
	}

	if c.integer.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return domain.IntegerValue(n)
		}
	}

	if m := c.long.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return domain.LongValue(n)
		}
	}

	if c.float.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return domain.FloatValue(f)
		}
	}

	// float64(lit) is a Float; float64(expr) with a symbolic inner keeps the
	// inner text as a Decimal, since it cannot be evaluated here.
	if m := c.floatCtor.FindStringSubmatch(s); m != nil {
		inner := strings.TrimSpace(m[1])
		if f, err := strconv.ParseFloat(inner, 64); err == nil {
			return domain.FloatValue(f)
		}
		return domain.DecimalValue(inner)
	}

	switch s {
	case "true":
		return domain.BooleanValue(true)
	case "false":
		return domain.BooleanValue(false)
	}

	// Quotes stripped, interior escapes left as written.
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return domain.StringValue(s[1 : len(s)-1])
	}

	if m := c.quantity.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64); err == nil {
			return domain.QuantityValue(f, m[2])
		}
		// Non-numeric quantity value: fall through to the raw fallback.
	}

	if m := c.dateTime.FindStringSubmatch(s); m != nil {
		return domain.TemporalValue(domain.KindDateTime, m[1], m[2])
	}
	if m := c.date.FindStringSubmatch(s); m != nil {
		return domain.TemporalValue(domain.KindDate, m[1], m[2])
	}
	if m := c.timeOfDay.FindStringSubmatch(s); m != nil {
		return domain.TemporalValue(domain.KindTime, m[1], m[2])
	}

	if m := c.interval.FindStringSubmatch(s); m != nil {
		return domain.RawValue(domain.KindInterval, strings.TrimSpace(m[1]))
	}
	if m := c.list.FindStringSubmatch(s); m != nil {
		return domain.RawValue(domain.KindList, strings.TrimSpace(m[1]))
	}
	if m := c.tuple.FindStringSubmatch(s); m != nil {
		return domain.RawValue(domain.KindTuple, strings.TrimSpace(m[1]))
	}

	switch s {
	case c.dialect.MaxIntConst:
		return domain.IntegerValue(math.MaxInt32)
	case c.dialect.MinIntConst:
		return domain.IntegerValue(math.MinInt32)
	}

	return domain.OpaqueValue(s)
}
