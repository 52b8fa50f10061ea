// Package conv provides checked conversions between Go integer types.
//
// numlit resolves the native width to a fixed 64 bits, while Go's int and
// uint follow the platform. These helpers bridge the two without silently
// truncating on 32-bit targets, and narrow slice indices to the uint32
// domain of roaring bitmaps.
package conv
