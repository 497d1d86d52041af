package messaging

// MessageField is one typed value node in a message value tree. Every
// node references the field descriptor it was built from, so value
// traversals have access to names and bounds without a parallel walk
// of the schema.
type MessageField interface {
	// Accept invokes the visitor method matching this node's kind.
	Accept(v MessageVisitor)
}

// MessageVisitor is a value-tree traversal, one method per node kind.
type MessageVisitor interface {
	VisitBoolValue(*BoolMessageField)
	VisitUInt8Value(*UInt8MessageField)
	VisitUInt16Value(*UInt16MessageField)
	VisitUInt32Value(*UInt32MessageField)
	VisitInt8Value(*Int8MessageField)
	VisitInt16Value(*Int16MessageField)
	VisitInt32Value(*Int32MessageField)
	VisitStringValue(*StringMessageField)
	VisitGroupValue(*GroupMessageField)
}

// Message is the typed result of applying a schema to input data: an
// ordered list of top-level value nodes mirroring the schema's shape.
// A completed Message is immutable and safe for concurrent readers.
type Message struct {
	fields []MessageField
}

// NewMessage creates a message from the given top-level value nodes.
// The message takes ownership of the slice.
func NewMessage(fields []MessageField) *Message {
	return &Message{fields: fields}
}

// FieldCount returns the number of top-level value nodes. A repeated
// group is one field regardless of how many instances it holds.
func (m *Message) FieldCount() int {
	return len(m.fields)
}

// Fields returns the ordered top-level value nodes. The returned
// slice must not be modified.
func (m *Message) Fields() []MessageField {
	return m.fields
}

// Accept visits each top-level value node in order.
func (m *Message) Accept(v MessageVisitor) {
	for _, f := range m.fields {
		f.Accept(v)
	}
}

// BoolMessageField is a boolean value node.
type BoolMessageField struct {
	descriptor *BoolFieldDescriptor
	value      bool
}

// NewBoolMessageField creates a boolean value node.
func NewBoolMessageField(d *BoolFieldDescriptor, value bool) *BoolMessageField {
	return &BoolMessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *BoolMessageField) Descriptor() *BoolFieldDescriptor { return f.descriptor }

// Value returns the boolean value.
func (f *BoolMessageField) Value() bool { return f.value }

// Accept dispatches to VisitBoolValue.
func (f *BoolMessageField) Accept(v MessageVisitor) { v.VisitBoolValue(f) }

// UInt8MessageField is an unsigned 8-bit value node.
type UInt8MessageField struct {
	descriptor *UInt8FieldDescriptor
	value      uint8
}

// NewUInt8MessageField creates a uint8 value node.
func NewUInt8MessageField(d *UInt8FieldDescriptor, value uint8) *UInt8MessageField {
	return &UInt8MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *UInt8MessageField) Descriptor() *UInt8FieldDescriptor { return f.descriptor }

// Value returns the uint8 value.
func (f *UInt8MessageField) Value() uint8 { return f.value }

// Accept dispatches to VisitUInt8Value.
func (f *UInt8MessageField) Accept(v MessageVisitor) { v.VisitUInt8Value(f) }

// UInt16MessageField is an unsigned 16-bit value node.
type UInt16MessageField struct {
	descriptor *UInt16FieldDescriptor
	value      uint16
}

// NewUInt16MessageField creates a uint16 value node.
func NewUInt16MessageField(d *UInt16FieldDescriptor, value uint16) *UInt16MessageField {
	return &UInt16MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *UInt16MessageField) Descriptor() *UInt16FieldDescriptor { return f.descriptor }

// Value returns the uint16 value.
func (f *UInt16MessageField) Value() uint16 { return f.value }

// Accept dispatches to VisitUInt16Value.
func (f *UInt16MessageField) Accept(v MessageVisitor) { v.VisitUInt16Value(f) }

// UInt32MessageField is an unsigned 32-bit value node.
type UInt32MessageField struct {
	descriptor *UInt32FieldDescriptor
	value      uint32
}

// NewUInt32MessageField creates a uint32 value node.
func NewUInt32MessageField(d *UInt32FieldDescriptor, value uint32) *UInt32MessageField {
	return &UInt32MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *UInt32MessageField) Descriptor() *UInt32FieldDescriptor { return f.descriptor }

// Value returns the uint32 value.
func (f *UInt32MessageField) Value() uint32 { return f.value }

// Accept dispatches to VisitUInt32Value.
func (f *UInt32MessageField) Accept(v MessageVisitor) { v.VisitUInt32Value(f) }

// Int8MessageField is a signed 8-bit value node.
type Int8MessageField struct {
	descriptor *Int8FieldDescriptor
	value      int8
}

// NewInt8MessageField creates an int8 value node.
func NewInt8MessageField(d *Int8FieldDescriptor, value int8) *Int8MessageField {
	return &Int8MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *Int8MessageField) Descriptor() *Int8FieldDescriptor { return f.descriptor }

// Value returns the int8 value.
func (f *Int8MessageField) Value() int8 { return f.value }

// Accept dispatches to VisitInt8Value.
func (f *Int8MessageField) Accept(v MessageVisitor) { v.VisitInt8Value(f) }

// Int16MessageField is a signed 16-bit value node.
type Int16MessageField struct {
	descriptor *Int16FieldDescriptor
	value      int16
}

// NewInt16MessageField creates an int16 value node.
func NewInt16MessageField(d *Int16FieldDescriptor, value int16) *Int16MessageField {
	return &Int16MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *Int16MessageField) Descriptor() *Int16FieldDescriptor { return f.descriptor }

// Value returns the int16 value.
func (f *Int16MessageField) Value() int16 { return f.value }

// Accept dispatches to VisitInt16Value.
func (f *Int16MessageField) Accept(v MessageVisitor) { v.VisitInt16Value(f) }

// Int32MessageField is a signed 32-bit value node.
type Int32MessageField struct {
	descriptor *Int32FieldDescriptor
	value      int32
}

// NewInt32MessageField creates an int32 value node.
func NewInt32MessageField(d *Int32FieldDescriptor, value int32) *Int32MessageField {
	return &Int32MessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *Int32MessageField) Descriptor() *Int32FieldDescriptor { return f.descriptor }

// Value returns the int32 value.
func (f *Int32MessageField) Value() int32 { return f.value }

// Accept dispatches to VisitInt32Value.
func (f *Int32MessageField) Accept(v MessageVisitor) { v.VisitInt32Value(f) }

// StringMessageField is a string value node.
type StringMessageField struct {
	descriptor *StringFieldDescriptor
	value      string
}

// NewStringMessageField creates a string value node.
func NewStringMessageField(d *StringFieldDescriptor, value string) *StringMessageField {
	return &StringMessageField{descriptor: d, value: value}
}

// Descriptor returns the schema node this value was built from.
func (f *StringMessageField) Descriptor() *StringFieldDescriptor { return f.descriptor }

// Value returns the string value.
func (f *StringMessageField) Value() string { return f.value }

// Accept dispatches to VisitStringValue.
func (f *StringMessageField) Accept(v MessageVisitor) { v.VisitStringValue(f) }

// GroupInstance is one concrete repetition of a group's children: an
// ordered list of child value nodes, one per child descriptor.
type GroupInstance struct {
	fields []MessageField
}

// NewGroupInstance creates a group instance owning the given child
// value nodes.
func NewGroupInstance(fields []MessageField) *GroupInstance {
	return &GroupInstance{fields: fields}
}

// Fields returns the ordered child value nodes. The returned slice
// must not be modified.
func (g *GroupInstance) Fields() []MessageField {
	return g.fields
}

// GroupMessageField is a group value node: the ordered instances
// parsed for one group field. A repeated group is a single field in
// its parent regardless of instance count.
type GroupMessageField struct {
	descriptor *GroupFieldDescriptor
	instances  []*GroupInstance
}

// NewGroupMessageField creates a group value node owning the given
// instances.
func NewGroupMessageField(d *GroupFieldDescriptor, instances []*GroupInstance) *GroupMessageField {
	return &GroupMessageField{descriptor: d, instances: instances}
}

// Descriptor returns the schema node this value was built from.
func (f *GroupMessageField) Descriptor() *GroupFieldDescriptor { return f.descriptor }

// InstanceCount returns the number of parsed repetitions.
func (f *GroupMessageField) InstanceCount() int { return len(f.instances) }

// Instances returns the ordered repetitions. The returned slice must
// not be modified.
func (f *GroupMessageField) Instances() []*GroupInstance { return f.instances }

// Accept dispatches to VisitGroupValue.
func (f *GroupMessageField) Accept(v MessageVisitor) { v.VisitGroupValue(f) }

// Compile-time kind set checks.
var (
	_ MessageField = (*BoolMessageField)(nil)
	_ MessageField = (*UInt8MessageField)(nil)
	_ MessageField = (*UInt16MessageField)(nil)
	_ MessageField = (*UInt32MessageField)(nil)
	_ MessageField = (*Int8MessageField)(nil)
	_ MessageField = (*Int16MessageField)(nil)
	_ MessageField = (*Int32MessageField)(nil)
	_ MessageField = (*StringMessageField)(nil)
	_ MessageField = (*GroupMessageField)(nil)
)
