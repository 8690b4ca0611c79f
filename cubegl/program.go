package cubegl

// Program is a vertex/fragment shader pair. The sources are opaque
// assets carried through the draw-call contract unchanged; the
// software backend implements the same fixed pipeline they describe,
// and a GPU backend would compile them as-is.
type Program struct {
	Vertex   string
	Fragment string
}

// CubeProgram returns the shader pair used for every cube draw call.
func CubeProgram() Program {
	return Program{Vertex: cubeVertexSource, Fragment: cubeFragmentSource}
}

const cubeVertexSource = `
attribute vec3 position;
uniform mat4 transform;
uniform mat4 perspective;
uniform mat4 camera;
uniform float color;
varying vec3 vcolor;

vec3 hsv2rgb(vec3 c) {
    vec4 K = vec4(1.0, 2.0 / 3.0, 1.0 / 3.0, 3.0);
    vec3 p = abs(fract(c.xxx + K.xyz) * 6.0 - K.www);
    return c.z * mix(K.xxx, clamp(p - K.xxx, 0.0, 1.0), c.y);
}

void main() {
    gl_Position = perspective * camera * transform * vec4(position, 1.0);
    vcolor = hsv2rgb(vec3(color, 1.0, position.y + 0.5));
}
`

const cubeFragmentSource = `
precision mediump float;
uniform float shade;
varying vec3 vcolor;

void main() {
    gl_FragColor = shade * vec4(vcolor, 1.0);
}
`
