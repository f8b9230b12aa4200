// Package executor owns provider client lifecycle and runs one prompt
// end-to-end: resolve the model, call the owning provider, write the
// response text to a file. One request, one write, no retries.
package executor
