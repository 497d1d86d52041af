// Package rdm implements RDM-side consumers of the messaging model.
//
// The central type is StringMessageBuilder: a schema traversal that
// converts an ordered list of operator-supplied text tokens into a
// typed messaging.Message, validating every token against its field's
// domain (integer width and signedness, string length bounds, group
// repeat bounds) before the message exists at all.
//
// A builder is single-use: create one per build attempt, run the
// descriptor's Accept over it, then call GetMessage exactly once.
// The first conversion failure is sticky; later fields may still be
// visited but the build can never succeed afterward, and GetMessage
// returns nil.
package rdm
