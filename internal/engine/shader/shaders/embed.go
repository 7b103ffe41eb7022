// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader transforms positions and passes normal and texcoord on
// to the fragment stage.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader does textured Phong shading with one point light.
//
//go:embed basic.frag
var BasicFragmentShader string
