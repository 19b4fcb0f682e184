package ddb

import (
	"encoding/base64"
	"strconv"

	"github.com/momentohq/functions/errors"
)

// AttributeValue is one value in DynamoDB's JSON wire shape. Exactly one
// field is set, e.g.
//
//	{"name": {"S": "arthur"}, "age": {"N": "23"}}
//
// Build values with the constructors; read them with the As accessors.
type AttributeValue struct {
	S    *string                   `json:"S,omitempty"`
	N    *string                   `json:"N,omitempty"`
	B    *string                   `json:"B,omitempty"`
	BOOL *bool                     `json:"BOOL,omitempty"`
	NULL *bool                     `json:"NULL,omitempty"`
	L    []AttributeValue          `json:"L,omitempty"`
	M    map[string]AttributeValue `json:"M,omitempty"`
	SS   []string                  `json:"SS,omitempty"`
	NS   []string                  `json:"NS,omitempty"`
	BS   []string                  `json:"BS,omitempty"`
}

// Item is one table row: attribute name to value.
type Item map[string]AttributeValue

var binaryEncoding = base64.RawStdEncoding

// String builds an S value.
func String(s string) AttributeValue {
	return AttributeValue{S: &s}
}

// Number builds an N value. DynamoDB numbers travel as strings.
func Number(n int64) AttributeValue {
	s := strconv.FormatInt(n, 10)
	return AttributeValue{N: &s}
}

// NumberString builds an N value from a preformatted decimal, for numbers
// that do not fit an int64.
func NumberString(n string) AttributeValue {
	return AttributeValue{N: &n}
}

// Binary builds a B value. Bytes are base64-encoded on the wire.
func Binary(b []byte) AttributeValue {
	s := binaryEncoding.EncodeToString(b)
	return AttributeValue{B: &s}
}

// Bool builds a BOOL value.
func Bool(b bool) AttributeValue {
	return AttributeValue{BOOL: &b}
}

// Null builds a NULL value.
func Null() AttributeValue {
	t := true
	return AttributeValue{NULL: &t}
}

// List builds an L value.
func List(values ...AttributeValue) AttributeValue {
	return AttributeValue{L: values}
}

// Map builds an M value.
func Map(m map[string]AttributeValue) AttributeValue {
	return AttributeValue{M: m}
}

// StringSet builds an SS value.
func StringSet(values ...string) AttributeValue {
	return AttributeValue{SS: values}
}

// NumberSet builds an NS value.
func NumberSet(values ...int64) AttributeValue {
	set := make([]string, len(values))
	for i, n := range values {
		set[i] = strconv.FormatInt(n, 10)
	}
	return AttributeValue{NS: set}
}

// BinarySet builds a BS value.
func BinarySet(values ...[]byte) AttributeValue {
	set := make([]string, len(values))
	for i, b := range values {
		set[i] = binaryEncoding.EncodeToString(b)
	}
	return AttributeValue{BS: set}
}

// AsString reads an S value.
func (v AttributeValue) AsString() (string, error) {
	if v.S == nil {
		return "", errors.Message("attribute is not a string")
	}
	return *v.S, nil
}

// AsNumber reads an N value as an int64.
func (v AttributeValue) AsNumber() (int64, error) {
	if v.N == nil {
		return 0, errors.Message("attribute is not a number")
	}
	n, err := strconv.ParseInt(*v.N, 10, 64)
	if err != nil {
		return 0, errors.Message("invalid number: %v", err)
	}
	return n, nil
}

// AsBinary reads a B value, decoding the base64.
func (v AttributeValue) AsBinary() ([]byte, error) {
	if v.B == nil {
		return nil, errors.Message("attribute is not a binary")
	}
	b, err := binaryEncoding.DecodeString(*v.B)
	if err != nil {
		return nil, errors.Message("invalid base64: %v", err)
	}
	return b, nil
}

// AsBool reads a BOOL value.
func (v AttributeValue) AsBool() (bool, error) {
	if v.BOOL == nil {
		return false, errors.Message("attribute is not a bool")
	}
	return *v.BOOL, nil
}

// IsNull reports whether the value is an explicit NULL.
func (v AttributeValue) IsNull() bool {
	return v.NULL != nil && *v.NULL
}

// HashKey builds the key of a table with a hash key only.
func HashKey(name string, value AttributeValue) Item {
	return Item{name: value}
}

// HashRangeKey builds the key of a table with a hash and a range key.
func HashRangeKey(hashName string, hashValue AttributeValue, rangeName string, rangeValue AttributeValue) Item {
	return Item{hashName: hashValue, rangeName: rangeValue}
}
