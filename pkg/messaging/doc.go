// Package messaging implements the RDM message description model.
//
// # Schema Model
//
// A message type is described by a Descriptor: a named, ordered list
// of field descriptors. The field descriptor kinds form a closed set:
//
//	Bool
//	UInt8, UInt16, UInt32
//	Int8, Int16, Int32
//	String (bounded length)
//	Group  (nested fields, bounded repeat count)
//
// Groups nest arbitrarily, so a schema is a tree. A Descriptor is
// immutable once constructed and may be shared read-only across
// concurrent message builds.
//
// # Value Model
//
// Applying a schema to input data yields a Message: a tree of typed
// value nodes with the same shape as the schema. Each scalar node
// carries the converted value of its kind; a group node carries an
// ordered list of instances, one per repetition that was parsed.
//
// # Traversal
//
// Both trees are traversed by double dispatch. Schema traversals
// implement FieldVisitor and are driven by Descriptor.Accept; value
// traversals implement MessageVisitor and are driven by
// Message.Accept. Each node kind invokes exactly one visitor method,
// so a traversal is an exhaustive set of per-kind operations rather
// than a type switch scattered through the algorithm.
//
// MessagePrinter is the canonical value traversal: it renders a
// Message as indented human-readable text, two spaces per group
// nesting level.
package messaging
