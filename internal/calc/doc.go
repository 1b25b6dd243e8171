// Package calc holds the widgets' typed forms, validators and pure
// calculators. Nothing here performs I/O; randomness is drawn from an
// injected Rand so generators can be tested with a fixed sequence.
package calc
