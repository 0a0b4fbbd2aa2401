package models

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// OptionalInt is a tri-state JSON field: absent (Set false), explicit null
// (Set true, Valid false) or a value (Set and Valid true).
type OptionalInt struct {
	Set   bool
	Valid bool
	Value int
}

// IntValue returns an OptionalInt holding v.
func IntValue(v int) OptionalInt {
	return OptionalInt{Set: true, Valid: true, Value: v}
}

// IntNull returns an explicit null OptionalInt.
func IntNull() OptionalInt {
	return OptionalInt{Set: true}
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Valid, o.Value = false, 0
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Merge resolves the field against its current value.
func (o OptionalInt) Merge(current *int) *int {
	if !o.Set {
		return current
	}
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// OptionalString is the string counterpart of OptionalInt.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// StringValue returns an OptionalString holding v.
func StringValue(v string) OptionalString {
	return OptionalString{Set: true, Valid: true, Value: v}
}

// StringNull returns an explicit null OptionalString.
func StringNull() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Valid, o.Value = false, ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Merge resolves the field against its current value.
func (o OptionalString) Merge(current *string) *string {
	if !o.Set {
		return current
	}
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
