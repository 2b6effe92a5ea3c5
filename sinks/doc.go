// Package sinks implements the thin I/O adapters named in the core's
// external interfaces: order-parameter rows, VTF trajectory frames, the
// three umbrella-sampling matrix files, the JSON parameter dump, and the
// bias restart reader. None of these carry algorithmic weight; they are
// plain data-to-text/JSON writers over the types in core.
package sinks
