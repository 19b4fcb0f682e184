// Package hosttest provides an in-memory implementation of every host
// capability for use in tests. State lives in exported fields so tests can
// seed inputs and assert on recorded calls; counters expose how often the
// guest touched the host, which is how laziness properties are verified.
package hosttest
