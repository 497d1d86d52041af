package rdm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// StringMessageBuilder converts an ordered list of text tokens into a
// typed message by traversing a schema. Tokens are consumed strictly
// left to right, one per scalar field occurrence; a group consumes one
// full pass of its children per instance.
//
// A builder is single-use and not safe for concurrent use: one
// instance performs exactly one traversal over exactly one descriptor.
// The first conversion failure is recorded and sticky; traversal does
// not abort, but GetMessage never returns a message once any field
// has failed.
type StringMessageBuilder struct {
	inputs []string
	pos    int

	// groups[0] collects top-level fields; a new level is pushed for
	// each group pass in progress.
	groups [][]messaging.MessageField

	err      *FieldError
	ran      bool
	consumed bool
}

// NewStringMessageBuilder creates a builder over the given tokens.
// The token slice is not copied; the caller must not mutate it during
// the build.
func NewStringMessageBuilder(inputs []string) *StringMessageBuilder {
	return &StringMessageBuilder{
		inputs: inputs,
		groups: make([][]messaging.MessageField, 1),
	}
}

// BuildMessage runs a fresh builder over the descriptor and returns
// the typed message, or the field error that broke the build.
func BuildMessage(descriptor *messaging.Descriptor, inputs []string) (*messaging.Message, error) {
	builder := NewStringMessageBuilder(inputs)
	descriptor.Accept(builder)
	if message := builder.GetMessage(); message != nil {
		return message, nil
	}
	if err := builder.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("no fields were built")
}

// GetMessage returns the built message with ownership transferred to
// the caller, or nil if any field failed, the traversal never ran, or
// the message was already retrieved.
func (b *StringMessageBuilder) GetMessage() *messaging.Message {
	if b.err != nil || !b.ran || b.consumed {
		return nil
	}
	b.consumed = true
	fields := b.groups[0]
	b.groups = nil
	return messaging.NewMessage(fields)
}

// GetError returns a description of the first field that failed, or
// the empty string if no field has failed.
func (b *StringMessageBuilder) GetError() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Err returns the first field failure as an error, or nil.
func (b *StringMessageBuilder) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

// VisitBool converts one token to a boolean value. Accepted tokens
// are "true"/"false" in any case, and exactly "1"/"0".
func (b *StringMessageBuilder) VisitBool(d *messaging.BoolFieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	token, ok := b.nextToken(d.Name())
	if !ok {
		return
	}

	var value bool
	switch token {
	case "1":
		value = true
	case "0":
		value = false
	default:
		switch strings.ToLower(token) {
		case "true":
			value = true
		case "false":
			value = false
		default:
			b.recordError(d.Name(), ParseError, fmt.Sprintf("%q is not a bool", token))
			return
		}
	}
	b.appendField(messaging.NewBoolMessageField(d, value))
}

// VisitUInt8 converts one token to a uint8 value.
func (b *StringMessageBuilder) VisitUInt8(d *messaging.UInt8FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseUint(d.Name(), 8); ok {
		b.appendField(messaging.NewUInt8MessageField(d, uint8(value)))
	}
}

// VisitUInt16 converts one token to a uint16 value.
func (b *StringMessageBuilder) VisitUInt16(d *messaging.UInt16FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseUint(d.Name(), 16); ok {
		b.appendField(messaging.NewUInt16MessageField(d, uint16(value)))
	}
}

// VisitUInt32 converts one token to a uint32 value.
func (b *StringMessageBuilder) VisitUInt32(d *messaging.UInt32FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseUint(d.Name(), 32); ok {
		b.appendField(messaging.NewUInt32MessageField(d, uint32(value)))
	}
}

// VisitInt8 converts one token to an int8 value.
func (b *StringMessageBuilder) VisitInt8(d *messaging.Int8FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseInt(d.Name(), 8); ok {
		b.appendField(messaging.NewInt8MessageField(d, int8(value)))
	}
}

// VisitInt16 converts one token to an int16 value.
func (b *StringMessageBuilder) VisitInt16(d *messaging.Int16FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseInt(d.Name(), 16); ok {
		b.appendField(messaging.NewInt16MessageField(d, int16(value)))
	}
}

// VisitInt32 converts one token to an int32 value.
func (b *StringMessageBuilder) VisitInt32(d *messaging.Int32FieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	if value, ok := b.parseInt(d.Name(), 32); ok {
		b.appendField(messaging.NewInt32MessageField(d, int32(value)))
	}
}

// VisitString accepts one token verbatim if its length is within the
// field's bounds.
func (b *StringMessageBuilder) VisitString(d *messaging.StringFieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}
	token, ok := b.nextToken(d.Name())
	if !ok {
		return
	}

	if len(token) < d.MinLength() || len(token) > d.MaxLength() {
		b.recordError(d.Name(), LengthError,
			fmt.Sprintf("length %d is outside [%d, %d]", len(token), d.MinLength(), d.MaxLength()))
		return
	}
	b.appendField(messaging.NewStringMessageField(d, token))
}

// VisitGroup parses group instances by repeated full passes over the
// children. The repeat count is not known in advance: passes continue
// until the maximum is reached or the remaining tokens cannot cover
// the cheapest possible pass.
func (b *StringMessageBuilder) VisitGroup(d *messaging.GroupFieldDescriptor) {
	b.ran = true
	if b.err != nil {
		return
	}

	passNeed := minTokensForPass(d.Fields())
	var instances []*messaging.GroupInstance
	for len(instances) < d.MaxRepeats() && b.remaining() >= passNeed {
		start := b.pos
		b.pushGroup()
		for _, child := range d.Fields() {
			child.Accept(b)
		}
		fields := b.popGroup()
		if b.err != nil {
			return
		}
		instances = append(instances, messaging.NewGroupInstance(fields))
		if b.pos == start {
			// A pass that consumed nothing cannot make progress.
			break
		}
	}

	if len(instances) < d.MinRepeats() {
		b.recordError(d.Name(), InputExhausted,
			fmt.Sprintf("built %d instances, need at least %d (%d tokens left, %d per instance)",
				len(instances), d.MinRepeats(), b.remaining(), passNeed))
		return
	}
	b.appendField(messaging.NewGroupMessageField(d, instances))
}

// nextToken consumes the next input token, recording InputExhausted
// against the field when none remain.
func (b *StringMessageBuilder) nextToken(field string) (string, bool) {
	if b.pos >= len(b.inputs) {
		b.recordError(field, InputExhausted, "no tokens left")
		return "", false
	}
	token := b.inputs[b.pos]
	b.pos++
	return token, true
}

func (b *StringMessageBuilder) remaining() int {
	return len(b.inputs) - b.pos
}

func (b *StringMessageBuilder) parseUint(field string, bits int) (uint64, bool) {
	token, ok := b.nextToken(field)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseUint(token, 10, bits)
	if err == nil {
		return value, true
	}
	if errors.Is(err, strconv.ErrRange) {
		b.recordError(field, RangeError, fmt.Sprintf("%s does not fit in %d unsigned bits", token, bits))
		return 0, false
	}
	// A well-formed negative number is a domain failure for an
	// unsigned field, not a syntax failure.
	if strings.HasPrefix(token, "-") {
		if _, signedErr := strconv.ParseInt(token, 10, 64); signedErr == nil {
			b.recordError(field, RangeError, fmt.Sprintf("%s is negative, field is unsigned", token))
			return 0, false
		}
	}
	b.recordError(field, ParseError, fmt.Sprintf("%q is not an unsigned integer", token))
	return 0, false
}

func (b *StringMessageBuilder) parseInt(field string, bits int) (int64, bool) {
	token, ok := b.nextToken(field)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(token, 10, bits)
	if err == nil {
		return value, true
	}
	if errors.Is(err, strconv.ErrRange) {
		b.recordError(field, RangeError, fmt.Sprintf("%s does not fit in %d signed bits", token, bits))
		return 0, false
	}
	b.recordError(field, ParseError, fmt.Sprintf("%q is not an integer", token))
	return 0, false
}

// recordError keeps the first failure; later failures are dropped.
func (b *StringMessageBuilder) recordError(field string, kind ErrorKind, detail string) {
	if b.err != nil {
		return
	}
	b.err = &FieldError{Field: field, Kind: kind, Detail: detail}
}

func (b *StringMessageBuilder) appendField(f messaging.MessageField) {
	top := len(b.groups) - 1
	b.groups[top] = append(b.groups[top], f)
}

func (b *StringMessageBuilder) pushGroup() {
	b.groups = append(b.groups, nil)
}

func (b *StringMessageBuilder) popGroup() []messaging.MessageField {
	top := len(b.groups) - 1
	fields := b.groups[top]
	b.groups = b.groups[:top]
	return fields
}

// minTokensForPass returns the fewest tokens one pass over the fields
// can consume: one per scalar, and the minimum repeat count times the
// child minimum for a nested group.
func minTokensForPass(fields []messaging.FieldDescriptor) int {
	counter := &tokenCounter{}
	for _, f := range fields {
		f.Accept(counter)
	}
	return counter.count
}

// tokenCounter is a schema traversal that sums the minimum token
// consumption of the fields it visits.
type tokenCounter struct {
	count int
}

func (c *tokenCounter) VisitBool(*messaging.BoolFieldDescriptor)     { c.count++ }
func (c *tokenCounter) VisitUInt8(*messaging.UInt8FieldDescriptor)   { c.count++ }
func (c *tokenCounter) VisitUInt16(*messaging.UInt16FieldDescriptor) { c.count++ }
func (c *tokenCounter) VisitUInt32(*messaging.UInt32FieldDescriptor) { c.count++ }
func (c *tokenCounter) VisitInt8(*messaging.Int8FieldDescriptor)     { c.count++ }
func (c *tokenCounter) VisitInt16(*messaging.Int16FieldDescriptor)   { c.count++ }
func (c *tokenCounter) VisitInt32(*messaging.Int32FieldDescriptor)   { c.count++ }
func (c *tokenCounter) VisitString(*messaging.StringFieldDescriptor) { c.count++ }

func (c *tokenCounter) VisitGroup(d *messaging.GroupFieldDescriptor) {
	c.count += d.MinRepeats() * minTokensForPass(d.Fields())
}

// Compile-time interface satisfaction checks.
var (
	_ messaging.FieldVisitor = (*StringMessageBuilder)(nil)
	_ messaging.FieldVisitor = (*tokenCounter)(nil)
)
