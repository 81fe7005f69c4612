// Package io reads diagram sources and writes rendered text.
//
// # Reading
//
// [ImportSource] reads a file, or standard input when the path is "-" or
// empty. [ReadSource] does the same for any reader. Both return a
// [Source] with the text normalized for the parsers:
//
//   - a leading UTF-8 byte order mark is removed
//   - CRLF and lone CR line endings become LF
//
// Line numbers reported by the parsers therefore match what an editor
// shows for the original file.
//
// # Writing
//
// [WriteLines] writes rendered rows separated by newlines with a final
// newline. [ExportLines] does the same into a file, creating or truncating
// it.
//
// # Errors
//
// Every failure is an *errors.Error with code IO_ERROR wrapping the
// underlying cause, so callers can tell I/O problems from parse errors with
// errors.Is.
package io
