// Package section defines the fixed header of a serialized feature column.
//
// A column blob is laid out as:
//
//	+--------+----------------------------------------------+
//	| 0-1    | options: magic (bits 4-15), endianness bit 1 |
//	| 2      | feature values type                          |
//	| 3      | payload compression type                     |
//	| 4-7    | feature id                                   |
//	| 8-11   | value count                                  |
//	| 12     | bits per key (compressed columns)            |
//	| 13-15  | reserved                                     |
//	| 16-23  | xxHash64 of the uncompressed payload         |
//	| 24-27  | uncompressed payload size                    |
//	| 28-31  | stored payload size                          |
//	+--------+----------------------------------------------+
//	| 32-    | payload                                      |
//	+--------+----------------------------------------------+
//
// The options field is always little-endian; the endianness bit selects the
// byte order of the remaining header fields and of the payload.
package section
