// Package formats provides parsers for the mesh file formats the viewer reads.
//
// Parsers produce plain data with no GPU state; building render-ready vertex
// buffers from them is left to the engine packages.
package formats
