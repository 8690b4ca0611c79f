// Package scene turns (cube count, elapsed time) into the draw-call
// list for one frame. All of it is pure: identical inputs yield
// identical output, so a frame can be rebuilt at will.
package scene

import (
	"math"

	"cubebench/cubegl"
)

// Shade is the constant fragment-stage darkening factor.
const Shade = 0.8

// HueStep spaces cube hues along the color wheel; values past 1.0
// wrap in the shader's fract.
const HueStep = 0.01213

var (
	cubeMesh = cubegl.UnitCube()
	cubeProg = cubegl.CubeProgram()
)

// Build produces one draw call per cube index 1..cubes inclusive.
// The mesh, shader pair, camera and projection are shared across the
// frame; transform and color vary per cube.
func Build(cubes int, t float64) []cubegl.DrawCall {
	cam := camera(t)
	proj := projection()

	calls := make([]cubegl.DrawCall, 0, cubes)
	for i := 1; i <= cubes; i++ {
		calls = append(calls, cubegl.DrawCall{
			Mesh: cubeMesh,
			Prog: cubeProg,
			U: cubegl.Uniforms{
				Transform:   objectTransform(t, i),
				Camera:      cam,
				Perspective: proj,
				Shade:       Shade,
				Color:       float32(hue(i)),
			},
		})
	}
	return calls
}

// rotation spins cube i about Y then X; the phase offsets keep the
// cubes out of lockstep.
func rotation(t float64, i int) cubegl.Mat4 {
	ry := cubegl.Mat4RotateY(float32(1.5*t + 0.1*float64(i)))
	rx := cubegl.Mat4RotateX(float32(t + 0.3*float64(i)))
	return cubegl.Mat4Mul(rx, ry)
}

// orbitRadius pulses the ring radius around 4 over time.
func orbitRadius(t float64, i int) float64 {
	return 4 + 0.5*math.Sin(5*t+0.02*float64(i)*5)
}

// translation places cube i on a circle in the XY plane.
func translation(t float64, i int) cubegl.Vec3 {
	r := orbitRadius(t, i)
	a := 0.02 * float64(i)
	return cubegl.V3(float32(r*math.Cos(a)), float32(r*math.Sin(a)), 0)
}

// objectTransform is translate-after-rotate: T * R.
func objectTransform(t float64, i int) cubegl.Mat4 {
	return cubegl.Mat4Mul(cubegl.Mat4Translate(translation(t, i)), rotation(t, i))
}

func projection() cubegl.Mat4 {
	return cubegl.Mat4Perspective(float32(math.Pi/4), 1, 0.01, 100)
}

// cameraEye orbits the viewer on a radius-20 circle in the XZ plane,
// one revolution per 2*pi time units.
func cameraEye(t float64) cubegl.Vec3 {
	return cubegl.V3(float32(20*math.Sin(t)), 0, float32(20*math.Cos(t)))
}

func camera(t float64) cubegl.Mat4 {
	return cubegl.Mat4LookAt(cameraEye(t), cubegl.V3(0, 0, 0), cubegl.V3(0, 1, 0))
}

func hue(i int) float64 {
	return float64(i) * HueStep
}
