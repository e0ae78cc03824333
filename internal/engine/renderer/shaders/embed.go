// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
// Compiled with CLIP_PLANE defined it discards fragments behind uClipPlane.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for water rendering.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for water rendering.
//
//go:embed water.frag
var WaterFragmentShader string

// SkyVertexShader is the vertex shader for the full-screen sky gradient.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the sky gradient.
//
//go:embed sky.frag
var SkyFragmentShader string
