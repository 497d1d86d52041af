package messaging

import (
	"strconv"
	"strings"
)

// MessagePrinter renders a message value tree as canonical
// human-readable text:
//
//	<name>: <value>\n            for scalar fields
//	<name> {\n ... }\n           for each group instance
//
// Lines inside a group block are indented by two additional spaces
// per nesting level. Booleans render as true/false, integers in
// base 10, strings verbatim.
//
// A printer accumulates output across Accept calls; use AsString to
// retrieve the report. Printing never fails: a completed Message only
// contains values that already satisfied their field's domain.
type MessagePrinter struct {
	buf    strings.Builder
	indent int
}

// NewMessagePrinter creates an empty printer.
func NewMessagePrinter() *MessagePrinter {
	return &MessagePrinter{}
}

// AsString returns the text accumulated so far.
func (p *MessagePrinter) AsString() string {
	return p.buf.String()
}

// VisitBoolValue renders a boolean field line.
func (p *MessagePrinter) VisitBoolValue(f *BoolMessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatBool(f.Value()))
}

// VisitUInt8Value renders a uint8 field line.
func (p *MessagePrinter) VisitUInt8Value(f *UInt8MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatUint(uint64(f.Value()), 10))
}

// VisitUInt16Value renders a uint16 field line.
func (p *MessagePrinter) VisitUInt16Value(f *UInt16MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatUint(uint64(f.Value()), 10))
}

// VisitUInt32Value renders a uint32 field line.
func (p *MessagePrinter) VisitUInt32Value(f *UInt32MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatUint(uint64(f.Value()), 10))
}

// VisitInt8Value renders an int8 field line.
func (p *MessagePrinter) VisitInt8Value(f *Int8MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatInt(int64(f.Value()), 10))
}

// VisitInt16Value renders an int16 field line.
func (p *MessagePrinter) VisitInt16Value(f *Int16MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatInt(int64(f.Value()), 10))
}

// VisitInt32Value renders an int32 field line.
func (p *MessagePrinter) VisitInt32Value(f *Int32MessageField) {
	p.scalarLine(f.Descriptor().Name(), strconv.FormatInt(int64(f.Value()), 10))
}

// VisitStringValue renders a string field line.
func (p *MessagePrinter) VisitStringValue(f *StringMessageField) {
	p.scalarLine(f.Descriptor().Name(), f.Value())
}

// VisitGroupValue renders one block per group instance, children
// indented one level deeper.
func (p *MessagePrinter) VisitGroupValue(f *GroupMessageField) {
	name := f.Descriptor().Name()
	for _, instance := range f.Instances() {
		p.writeIndent()
		p.buf.WriteString(name)
		p.buf.WriteString(" {\n")
		p.indent++
		for _, child := range instance.Fields() {
			child.Accept(p)
		}
		p.indent--
		p.writeIndent()
		p.buf.WriteString("}\n")
	}
}

func (p *MessagePrinter) scalarLine(name, value string) {
	p.writeIndent()
	p.buf.WriteString(name)
	p.buf.WriteString(": ")
	p.buf.WriteString(value)
	p.buf.WriteByte('\n')
}

func (p *MessagePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

// Compile-time interface satisfaction check.
var _ MessageVisitor = (*MessagePrinter)(nil)
