// Package abixml reads an ABI description encoded as XML into the
// in-memory declaration graph defined by the ir package: a single
// translation unit rooted at abi-instr, or a corpus of translation
// units rooted at abi-corpus (optionally delivered as a ZIP archive of
// per-translation-unit abi-instr documents).
//
// Every entry point has two forms: "fill" mutates a caller-supplied
// *ir.TranslationUnit or *ir.Corpus and reports success as a bool;
// "read" constructs and returns an owned value, or nil on failure. Both
// forms exist for every input shape: file path, in-memory buffer, or
// io.Reader for a translation unit; file path, io.Reader, or ZIP archive
// for a corpus (the archive forms report a translation-unit count
// instead of a bool or error).
package abixml
