package messaging

import (
	"strconv"
	"strings"
)

// SchemaPrinter renders a schema as indented text, one line per field:
//
//	<name>: <kind>
//	<name>: string [min, max]
//	<name>: group [min, max] { ... }
//
// It is a FieldVisitor, so it doubles as a smoke test of the dispatch
// contract: every descriptor kind must render.
type SchemaPrinter struct {
	buf    strings.Builder
	indent int
}

// NewSchemaPrinter creates an empty schema printer.
func NewSchemaPrinter() *SchemaPrinter {
	return &SchemaPrinter{}
}

// AsString returns the text accumulated so far.
func (p *SchemaPrinter) AsString() string {
	return p.buf.String()
}

// VisitBool renders a bool field line.
func (p *SchemaPrinter) VisitBool(d *BoolFieldDescriptor) { p.kindLine(d.Name(), "bool") }

// VisitUInt8 renders a uint8 field line.
func (p *SchemaPrinter) VisitUInt8(d *UInt8FieldDescriptor) { p.kindLine(d.Name(), "uint8") }

// VisitUInt16 renders a uint16 field line.
func (p *SchemaPrinter) VisitUInt16(d *UInt16FieldDescriptor) { p.kindLine(d.Name(), "uint16") }

// VisitUInt32 renders a uint32 field line.
func (p *SchemaPrinter) VisitUInt32(d *UInt32FieldDescriptor) { p.kindLine(d.Name(), "uint32") }

// VisitInt8 renders an int8 field line.
func (p *SchemaPrinter) VisitInt8(d *Int8FieldDescriptor) { p.kindLine(d.Name(), "int8") }

// VisitInt16 renders an int16 field line.
func (p *SchemaPrinter) VisitInt16(d *Int16FieldDescriptor) { p.kindLine(d.Name(), "int16") }

// VisitInt32 renders an int32 field line.
func (p *SchemaPrinter) VisitInt32(d *Int32FieldDescriptor) { p.kindLine(d.Name(), "int32") }

// VisitString renders a string field line with its length bounds.
func (p *SchemaPrinter) VisitString(d *StringFieldDescriptor) {
	p.kindLine(d.Name(), "string "+bounds(d.MinLength(), d.MaxLength()))
}

// VisitGroup renders the group header, its children one level deeper,
// and the closing brace.
func (p *SchemaPrinter) VisitGroup(d *GroupFieldDescriptor) {
	p.writeIndent()
	p.buf.WriteString(d.Name())
	p.buf.WriteString(": group ")
	p.buf.WriteString(bounds(d.MinRepeats(), d.MaxRepeats()))
	p.buf.WriteString(" {\n")
	p.indent++
	for _, child := range d.Fields() {
		child.Accept(p)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}\n")
}

func (p *SchemaPrinter) kindLine(name, kind string) {
	p.writeIndent()
	p.buf.WriteString(name)
	p.buf.WriteString(": ")
	p.buf.WriteString(kind)
	p.buf.WriteByte('\n')
}

func (p *SchemaPrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

func bounds(min, max int) string {
	return "[" + strconv.Itoa(min) + ", " + strconv.Itoa(max) + "]"
}

// Compile-time interface satisfaction check.
var _ FieldVisitor = (*SchemaPrinter)(nil)
