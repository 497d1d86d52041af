// Package pidstore holds the built-in catalog of RDM parameter
// descriptions.
//
// Each Parameter pairs an E1.20 parameter ID (PID) with the
// messaging.Descriptor for its operator-settable request fields. The
// catalog is constructed in code at startup, is immutable afterward,
// and may be shared read-only by any number of concurrent builds.
//
// The set here covers the common E1.20 parameters an operator sets or
// inspects from a console; vendors extend a Store with Add before
// first use.
package pidstore
