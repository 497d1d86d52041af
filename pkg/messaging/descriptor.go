package messaging

// FieldDescriptor is one node in a message schema: a scalar field or a
// repeatable nested group. Descriptors are immutable after construction.
type FieldDescriptor interface {
	// Name returns the field's identifying name. Never empty.
	Name() string

	// Accept invokes the visitor method matching this field's kind.
	Accept(v FieldVisitor)
}

// FieldVisitor is a schema traversal. Each field descriptor kind
// dispatches to exactly one method, so an implementation handles the
// complete closed set of kinds.
//
// Group repetition is the visitor's concern: VisitGroup receives the
// group descriptor and decides how many passes over the group's
// children to make (by calling Accept on each child per pass).
type FieldVisitor interface {
	VisitBool(*BoolFieldDescriptor)
	VisitUInt8(*UInt8FieldDescriptor)
	VisitUInt16(*UInt16FieldDescriptor)
	VisitUInt32(*UInt32FieldDescriptor)
	VisitInt8(*Int8FieldDescriptor)
	VisitInt16(*Int16FieldDescriptor)
	VisitInt32(*Int32FieldDescriptor)
	VisitString(*StringFieldDescriptor)
	VisitGroup(*GroupFieldDescriptor)
}

// Descriptor is the schema for one message type: a name and an
// ordered, immutable list of top-level field descriptors.
type Descriptor struct {
	name   string
	fields []FieldDescriptor
}

// NewDescriptor creates a descriptor. The field list is copied; the
// caller must not retain ownership expectations over individual field
// descriptors after handing them to a Descriptor.
func NewDescriptor(name string, fields []FieldDescriptor) *Descriptor {
	d := &Descriptor{
		name:   name,
		fields: make([]FieldDescriptor, len(fields)),
	}
	copy(d.fields, fields)
	return d
}

// Name returns the descriptor name.
func (d *Descriptor) Name() string {
	return d.name
}

// FieldCount returns the number of top-level fields.
func (d *Descriptor) FieldCount() int {
	return len(d.fields)
}

// Fields returns the ordered top-level field descriptors. The returned
// slice must not be modified.
func (d *Descriptor) Fields() []FieldDescriptor {
	return d.fields
}

// Accept visits each top-level field in schema order. Traversal
// failures are the visitor's concern; Accept itself cannot fail.
func (d *Descriptor) Accept(v FieldVisitor) {
	for _, f := range d.fields {
		f.Accept(v)
	}
}
