// Package memory holds process-local adapters: an object store and text
// cache used for ephemeral runs, and a config store used in tests.
package memory
