// Package files is the file/archive walker boundary: it discovers candidate
// input files and streams their tabular contents to the caller.
//
// A CSV source yields one table; a ZIP source yields one table per contained
// .csv member. ZIP members are extracted to scratch files in the OS temp
// directory and removed after the member has been visited, whether or not
// the visit succeeded.
//
// The walker knows nothing about column semantics. It hands each table to a
// caller-supplied visit function as a header slice plus a stream of
// header-keyed rows; all interpretation happens upstream.
package files
