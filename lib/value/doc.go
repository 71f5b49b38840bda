// Package value models RESP3 protocol values as an immutable recursive
// tagged union and provides the three derived operations the surrounding
// codec and containers are built on.
//
// The package focuses on:
//   - A closed variant type with one kind per RESP3 wire prefix
//   - Exact on-wire byte counts (EncodedLength) for buffer pre-sizing
//   - Deep structural equality (Equal) with no cross-kind coercion
//   - A structural hash (Hash) consistent with Equal, so values - including
//     nested composites - can key hash tables
//
// Key Components:
//
//   - Value: the tagged union. Constructed through one factory per kind
//     (BlobString, SimpleString, SimpleError, Number, Null, Boolean,
//     BlobError, VerbatimString, Array, Set, MapValue); the kind determines
//     which accessor is valid.
//
//   - Error, Verbatim: the two auxiliary structured payloads, carried by the
//     error kinds and the verbatim-string kind respectively.
//
//   - Map: the mutable container backing the map kind, keyed by structural
//     hash and equality so arbitrarily nested values can serve as keys.
//
//   - mix/finalize: the one-at-a-time hash primitive underneath Hash. Not
//     cryptographically secure; never use it against adversarial input.
//
// Semantics worth knowing:
//
//   - Byte payloads are borrowed views. A value built over an external
//     buffer must not outlive that buffer; no operation copies payloads.
//   - Set values are backed by an ordered sequence, so Set equality and
//     hashing are order-sensitive, unlike conventional set semantics. This
//     is deliberate; a canonicalizing comparison belongs to a higher layer.
//   - Numbers are signed; encoded lengths account for the sign byte.
//
// Thread Safety:
//
//	EncodedLength, Equal and Hash are pure and safe for concurrent use on
//	immutable values. The Map container is single-writer; see its docs.
package value
