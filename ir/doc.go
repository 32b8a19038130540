// Package ir is the in-memory representation of a C/C++ ABI: translation
// units, their declarations (namespaces, variables, functions, classes,
// templates), and the types those declarations refer to.
//
// Every exported type in this package is built by a reader elsewhere in
// this module (the root abixml package); ir itself has no parsing logic
// and no dependency on XML or any other wire format.
package ir
