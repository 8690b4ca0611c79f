package cubegl

// Uniforms is the per-draw-call constant bundle matching the declared
// shader inputs: transform/perspective/camera/color for the vertex
// stage, shade for the fragment stage.
type Uniforms struct {
	Transform   Mat4
	Camera      Mat4
	Perspective Mat4
	Shade       float32
	Color       float32
}

// DrawCall bundles everything needed to render one object. Draw calls
// are built fresh every frame and discarded after submission.
type DrawCall struct {
	Mesh *Mesh
	Prog Program
	U    Uniforms
}
