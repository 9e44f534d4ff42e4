// Package asar reads and writes Electron asar archives.
//
// An archive is a pickled size field, a pickled JSON header describing the
// directory tree, and the concatenated contents of every file in header
// order:
//
//	| uint32 4 | uint32 header pickle size | uint32 payload | int32 json len | json | pad | data... |
//
// File entries carry their byte offset (as a decimal string) relative to the
// end of the header, their size, and a SHA256 integrity record.
package asar
