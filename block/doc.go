// Package block holds the fixed base65536 block table and its reverse index.
//
// A block is a contiguous run of 256 assigned Unicode code points. The table
// associates each possible second byte of a pair with one block; the first
// byte of the pair selects the code point inside the block:
//
//	codePoint = Start(b1) + b0
//
// A 257th block, PaddingStart, carries a single trailing byte when the input
// has odd length:
//
//	codePoint = PaddingStart + b0
//
// Every block start is a multiple of Width, so the low eight bits of a code
// point are always the first byte and the remaining bits identify the block.
//
// # Thread Safety
//
// The table is immutable. The reverse index is built once on first use and is
// read-only afterwards, so all functions in this package are safe for
// concurrent use.
package block
