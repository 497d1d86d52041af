package messaging

// BoolFieldDescriptor describes a boolean field.
type BoolFieldDescriptor struct {
	name string
}

// NewBoolFieldDescriptor creates a boolean field descriptor.
func NewBoolFieldDescriptor(name string) *BoolFieldDescriptor {
	return &BoolFieldDescriptor{name: name}
}

// Name returns the field name.
func (d *BoolFieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitBool.
func (d *BoolFieldDescriptor) Accept(v FieldVisitor) { v.VisitBool(d) }

// UInt8FieldDescriptor describes an unsigned 8-bit integer field.
type UInt8FieldDescriptor struct {
	name string
}

// NewUInt8FieldDescriptor creates a uint8 field descriptor.
func NewUInt8FieldDescriptor(name string) *UInt8FieldDescriptor {
	return &UInt8FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *UInt8FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitUInt8.
func (d *UInt8FieldDescriptor) Accept(v FieldVisitor) { v.VisitUInt8(d) }

// UInt16FieldDescriptor describes an unsigned 16-bit integer field.
type UInt16FieldDescriptor struct {
	name string
}

// NewUInt16FieldDescriptor creates a uint16 field descriptor.
func NewUInt16FieldDescriptor(name string) *UInt16FieldDescriptor {
	return &UInt16FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *UInt16FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitUInt16.
func (d *UInt16FieldDescriptor) Accept(v FieldVisitor) { v.VisitUInt16(d) }

// UInt32FieldDescriptor describes an unsigned 32-bit integer field.
type UInt32FieldDescriptor struct {
	name string
}

// NewUInt32FieldDescriptor creates a uint32 field descriptor.
func NewUInt32FieldDescriptor(name string) *UInt32FieldDescriptor {
	return &UInt32FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *UInt32FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitUInt32.
func (d *UInt32FieldDescriptor) Accept(v FieldVisitor) { v.VisitUInt32(d) }

// Int8FieldDescriptor describes a signed 8-bit integer field.
type Int8FieldDescriptor struct {
	name string
}

// NewInt8FieldDescriptor creates an int8 field descriptor.
func NewInt8FieldDescriptor(name string) *Int8FieldDescriptor {
	return &Int8FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *Int8FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitInt8.
func (d *Int8FieldDescriptor) Accept(v FieldVisitor) { v.VisitInt8(d) }

// Int16FieldDescriptor describes a signed 16-bit integer field.
type Int16FieldDescriptor struct {
	name string
}

// NewInt16FieldDescriptor creates an int16 field descriptor.
func NewInt16FieldDescriptor(name string) *Int16FieldDescriptor {
	return &Int16FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *Int16FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitInt16.
func (d *Int16FieldDescriptor) Accept(v FieldVisitor) { v.VisitInt16(d) }

// Int32FieldDescriptor describes a signed 32-bit integer field.
type Int32FieldDescriptor struct {
	name string
}

// NewInt32FieldDescriptor creates an int32 field descriptor.
func NewInt32FieldDescriptor(name string) *Int32FieldDescriptor {
	return &Int32FieldDescriptor{name: name}
}

// Name returns the field name.
func (d *Int32FieldDescriptor) Name() string { return d.name }

// Accept dispatches to VisitInt32.
func (d *Int32FieldDescriptor) Accept(v FieldVisitor) { v.VisitInt32(d) }

// StringFieldDescriptor describes a variable-length string field.
// A value is valid when its length in bytes is within [min, max].
type StringFieldDescriptor struct {
	name      string
	minLength int
	maxLength int
}

// NewStringFieldDescriptor creates a string field descriptor.
// The caller must ensure minLength <= maxLength.
func NewStringFieldDescriptor(name string, minLength, maxLength int) *StringFieldDescriptor {
	return &StringFieldDescriptor{
		name:      name,
		minLength: minLength,
		maxLength: maxLength,
	}
}

// Name returns the field name.
func (d *StringFieldDescriptor) Name() string { return d.name }

// MinLength returns the minimum valid value length.
func (d *StringFieldDescriptor) MinLength() int { return d.minLength }

// MaxLength returns the maximum valid value length.
func (d *StringFieldDescriptor) MaxLength() int { return d.maxLength }

// Accept dispatches to VisitString.
func (d *StringFieldDescriptor) Accept(v FieldVisitor) { v.VisitString(d) }

// GroupFieldDescriptor describes a repeatable nested group of fields.
// The group's children repeat as a unit; the number of repetitions in
// a value is bounded by [minRepeats, maxRepeats].
type GroupFieldDescriptor struct {
	name       string
	fields     []FieldDescriptor
	minRepeats int
	maxRepeats int
}

// NewGroupFieldDescriptor creates a group field descriptor. The child
// list is copied and must be non-empty; the caller must ensure
// minRepeats <= maxRepeats.
func NewGroupFieldDescriptor(name string, fields []FieldDescriptor, minRepeats, maxRepeats int) *GroupFieldDescriptor {
	d := &GroupFieldDescriptor{
		name:       name,
		fields:     make([]FieldDescriptor, len(fields)),
		minRepeats: minRepeats,
		maxRepeats: maxRepeats,
	}
	copy(d.fields, fields)
	return d
}

// Name returns the field name.
func (d *GroupFieldDescriptor) Name() string { return d.name }

// Fields returns the ordered child field descriptors. The returned
// slice must not be modified.
func (d *GroupFieldDescriptor) Fields() []FieldDescriptor { return d.fields }

// MinRepeats returns the minimum number of group instances.
func (d *GroupFieldDescriptor) MinRepeats() int { return d.minRepeats }

// MaxRepeats returns the maximum number of group instances.
func (d *GroupFieldDescriptor) MaxRepeats() int { return d.maxRepeats }

// Accept dispatches to VisitGroup. The visitor decides how many
// passes over the children to make.
func (d *GroupFieldDescriptor) Accept(v FieldVisitor) { v.VisitGroup(d) }

// Compile-time kind set checks.
var (
	_ FieldDescriptor = (*BoolFieldDescriptor)(nil)
	_ FieldDescriptor = (*UInt8FieldDescriptor)(nil)
	_ FieldDescriptor = (*UInt16FieldDescriptor)(nil)
	_ FieldDescriptor = (*UInt32FieldDescriptor)(nil)
	_ FieldDescriptor = (*Int8FieldDescriptor)(nil)
	_ FieldDescriptor = (*Int16FieldDescriptor)(nil)
	_ FieldDescriptor = (*Int32FieldDescriptor)(nil)
	_ FieldDescriptor = (*StringFieldDescriptor)(nil)
	_ FieldDescriptor = (*GroupFieldDescriptor)(nil)
)
