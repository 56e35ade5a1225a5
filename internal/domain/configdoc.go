package domain

import "time"

// FieldType is the declared type of a config schema field
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
)

// ElementSchema describes the element type of an array field.
// Exactly one of Primitive or Fields is set: a primitive-typed array
// ("array of text") passes stored values through unchanged, a struct-typed
// array carries its own field set used to backfill element keys.
type ElementSchema struct {
	Primitive FieldType
	Fields    []FieldDescription
}

// IsStruct reports whether array elements are structs
func (e *ElementSchema) IsStruct() bool {
	return e != nil && len(e.Fields) > 0
}

// FieldDescription declares a single config field: its type and default.
// Array-typed fields additionally carry an element schema.
type FieldDescription struct {
	Name    string
	Type    FieldType
	Default interface{}
	Element *ElementSchema
}

// ConfigDescription is the bundled, versioned schema of one config category
type ConfigDescription struct {
	Slug   string
	Fields []FieldDescription
}

// ConfigDocument is a persisted (possibly partial) config category value.
// Every key in Value must resolve against a ConfigDescription field;
// stored keys without a schema analog are not rendered.
type ConfigDocument struct {
	Slug      string
	Value     map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}
