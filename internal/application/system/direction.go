package system

import "github.com/younwookim/stride/internal/domain/vecmath"

// ProjectDirection turns camera-relative movement axes into a horizontal world direction.
//
// forward and right are flattened onto the XZ plane and renormalized. A camera
// looking straight up or down flattens to zero; the previous basis vector is
// kept in that case and returned so the caller can carry it to the next frame.
// dir is a unit vector, or zero when there is no input.
func ProjectDirection(forward, right vecmath.Vec3, move vecmath.Vec2, prevForward, prevRight vecmath.Vec3) (dir, basisForward, basisRight vecmath.Vec3) {
	basisForward = forward.Horizontal().Normalize()
	if basisForward.IsZero() {
		basisForward = prevForward
	}
	basisRight = right.Horizontal().Normalize()
	if basisRight.IsZero() {
		basisRight = prevRight
	}

	dir = basisForward.Scale(move.Y).Add(basisRight.Scale(move.X)).Normalize()
	return dir, basisForward, basisRight
}
