// Package literal holds the lexical rules for integer literals:
// radix prefix detection, the digit alphabet, and underscore placement.
//
// Everything here operates on raw bytes and never allocates. The numlit
// package layers range checking and error reporting on top.
package literal
