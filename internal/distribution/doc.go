// Package distribution is the catalog of sampling rules a scenario variable
// can be bound to.
//
// Every distribution is a concrete struct implementing the sealed
// Distribution interface, so the set of kinds is closed at compile time and
// Sample switches over it exhaustively. Parameters are checked when a
// distribution is decoded from a scenario (see Decode); Sample repeats the
// check so that a value built by hand can never produce garbage silently.
//
// Sampling has no hidden state. The only randomness comes from the
// rand.Source passed in, and each call advances that source and nothing else.
package distribution
