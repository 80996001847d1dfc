// ABOUTME: Package documentation for the validator package
// ABOUTME: Summarizes the option checks used by the framework bootstrap layer

// Package validator checks and normalizes framework bootstrap options.
//
// It covers four concerns:
//   - Directory checks: DirExists and the ParentDir, ApplicationDir and
//     PluginDir option validators
//   - Plugin settings discovery: FindPluginSettings lists a settings root and
//     one level of namespace directories beneath it
//   - Logger shape: InspectLogger verifies the four logging methods
//   - Scalar defaults: BoolDefaultTrue and NumberOrDefault
//
// Validators never define their own error kinds. Callers pass an ErrorFunc
// that turns a message into whatever error type the host uses.
package validator
