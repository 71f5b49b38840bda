// Package wire implements the RESP3 byte codec for the value model.
//
// The package focuses on:
//   - Encoding values into their exact wire form with a single up-front
//     allocation, sized by value.EncodedLength
//   - Incremental, zero-copy decoding of byte slices back into values
//   - Failing fast on the RESP3 kinds the model does not represent
//
// Key Components:
//
//   - Marshal / Append: serialization. Marshal allocates exactly the number
//     of bytes the value's encoded length reports; Append extends a caller
//     buffer, for encoding many values into one allocation.
//
//   - Decoder / Unmarshal: parsing. A Decoder consumes one complete value
//     per Decode call and reports the remaining byte count, so callers can
//     walk a stream of values over a single buffer.
//
//   - ErrUnsupportedType: returned (wrapped) for the documented RESP3 kinds
//     outside the modeled set - floats ',', big numbers '(', attributes '|'
//     and push frames '>'.
//
// Ownership:
//
//	Decoded byte payloads are views into the input slice, never copies.
//	Values produced by a Decoder must not outlive the buffer they were
//	parsed from; callers that need longer-lived values must copy the
//	buffer, not the values.
//
// Thread Safety:
//
//	Marshal and Append are pure. A Decoder carries a read position and is
//	not safe for concurrent use; use one Decoder per goroutine.
package wire
