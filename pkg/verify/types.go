package verify

import (
	"reflect"

	"digital.vasic.verify/pkg/predicates"
)

// Type asserts that the value's dynamic type matches the
// comparable, which may be a reflect.Type or a sample value of
// the wanted type:
//
//	verify.Type("")                     // any string
//	verify.Type(reflect.TypeOf(int(0))) // any int
func Type(comparable any, opts ...Option) *Check {
	return newComparator(
		"Type",
		"{value} is not an instance of {comparable}",
		comparable,
		opType,
		opts,
	)
}

// NotType asserts that the value's dynamic type does not match
// the comparable.
func NotType(comparable any, opts ...Option) *Check {
	return negated(
		"NotType",
		"{value} is an instance of {comparable}",
		Type(comparable),
		opts,
	)
}

// Boolean asserts that the value is a bool.
func Boolean(opts ...Option) *Check {
	return newCheck(
		"Boolean", "{value} is not a boolean", opBoolean, opts,
	)
}

// NotBoolean asserts that the value is not a bool.
func NotBoolean(opts ...Option) *Check {
	return negated(
		"NotBoolean", "{value} is a boolean", Boolean(), opts,
	)
}

// String asserts that the value is a string.
func String(opts ...Option) *Check {
	return newCheck(
		"String", "{value} is not a string", opString, opts,
	)
}

// NotString asserts that the value is not a string.
func NotString(opts ...Option) *Check {
	return negated(
		"NotString", "{value} is a string", String(), opts,
	)
}

// Map asserts that the value is a map.
func Map(opts ...Option) *Check {
	return newCheck("Map", "{value} is not a map", opMap, opts)
}

// NotMap asserts that the value is not a map.
func NotMap(opts ...Option) *Check {
	return negated("NotMap", "{value} is a map", Map(), opts)
}

// Slice asserts that the value is a slice or array.
func Slice(opts ...Option) *Check {
	return newCheck(
		"Slice", "{value} is not a slice", opSlice, opts,
	)
}

// NotSlice asserts that the value is neither a slice nor an
// array.
func NotSlice(opts ...Option) *Check {
	return negated(
		"NotSlice", "{value} is a slice", Slice(), opts,
	)
}

// Date asserts that the value is a time.Time or *time.Time.
func Date(opts ...Option) *Check {
	return newCheck(
		"Date", "{value} is not a date", opDate, opts,
	)
}

// NotDate asserts that the value is not a time value.
func NotDate(opts ...Option) *Check {
	return negated("NotDate", "{value} is a date", Date(), opts)
}

// DateString asserts that the value is a string that parses with
// the given time layout (e.g. "2006-01-02").
func DateString(comparable any, opts ...Option) *Check {
	return newComparator(
		"DateString",
		"{value} does not match the datetime format "+
			"{comparable}",
		comparable,
		opDateString,
		opts,
	)
}

// NotDateString asserts that the value does not parse with the
// given time layout.
func NotDateString(comparable any, opts ...Option) *Check {
	return negated(
		"NotDateString",
		"{value} matches the datetime format {comparable}",
		DateString(comparable),
		opts,
	)
}

// Int asserts that the value has an integer kind.
func Int(opts ...Option) *Check {
	return newCheck(
		"Int", "{value} is not an integer", opInt, opts,
	)
}

// NotInt asserts that the value does not have an integer kind.
func NotInt(opts ...Option) *Check {
	return negated(
		"NotInt", "{value} is an integer", Int(), opts,
	)
}

// Float asserts that the value has a float kind.
func Float(opts ...Option) *Check {
	return newCheck(
		"Float", "{value} is not a float", opFloat, opts,
	)
}

// NotFloat asserts that the value does not have a float kind.
func NotFloat(opts ...Option) *Check {
	return negated(
		"NotFloat", "{value} is a float", Float(), opts,
	)
}

// Number asserts that the value is an integer or a float.
func Number(opts ...Option) *Check {
	return newCheck(
		"Number", "{value} is not a number", opNumber, opts,
	)
}

// NotNumber asserts that the value is not a number.
func NotNumber(opts ...Option) *Check {
	return negated(
		"NotNumber", "{value} is a number", Number(), opts,
	)
}

func opType(value any, chk *Check) bool {
	want, ok := chk.comparable.(reflect.Type)
	if !ok {
		want = reflect.TypeOf(chk.comparable)
	}

	return want != nil && reflect.TypeOf(value) == want
}

func opBoolean(value any, _ *Check) bool {
	return predicates.IsBool(value)
}

func opString(value any, _ *Check) bool {
	return predicates.IsString(value)
}

func opMap(value any, _ *Check) bool {
	return predicates.IsMap(value)
}

func opSlice(value any, _ *Check) bool {
	return predicates.IsSlice(value)
}

func opDate(value any, _ *Check) bool {
	return predicates.IsDate(value)
}

func opDateString(value any, chk *Check) bool {
	layout, ok := chk.comparable.(string)
	return ok && predicates.IsDateString(value, layout)
}

func opInt(value any, _ *Check) bool {
	return predicates.IsInt(value)
}

func opFloat(value any, _ *Check) bool {
	return predicates.IsFloat(value)
}

func opNumber(value any, _ *Check) bool {
	return predicates.IsNumber(value)
}

func init() {
	mustRegister("Type", unary("Type", Type), "InstanceOf")
	mustRegister(
		"NotType", unary("NotType", NotType),
		"NotInstanceOf",
	)
	mustRegister("Boolean", nullary("Boolean", Boolean))
	mustRegister(
		"NotBoolean", nullary("NotBoolean", NotBoolean),
	)
	mustRegister("String", nullary("String", String))
	mustRegister("NotString", nullary("NotString", NotString))
	mustRegister("Map", nullary("Map", Map))
	mustRegister("NotMap", nullary("NotMap", NotMap))
	mustRegister("Slice", nullary("Slice", Slice))
	mustRegister("NotSlice", nullary("NotSlice", NotSlice))
	mustRegister("Date", nullary("Date", Date))
	mustRegister("NotDate", nullary("NotDate", NotDate))
	mustRegister(
		"DateString", unary("DateString", DateString),
	)
	mustRegister(
		"NotDateString",
		unary("NotDateString", NotDateString),
	)
	mustRegister("Int", nullary("Int", Int))
	mustRegister("NotInt", nullary("NotInt", NotInt))
	mustRegister("Float", nullary("Float", Float))
	mustRegister("NotFloat", nullary("NotFloat", NotFloat))
	mustRegister("Number", nullary("Number", Number))
	mustRegister("NotNumber", nullary("NotNumber", NotNumber))
}
