package parameter

// Perspective projection
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 75.0

	CameraNear = 0.1
	CameraFar  = 1000.0

	// CellAspect is terminal cell width divided by height
	// Used to keep spheres round on a 1:2 cell grid
	CellAspect = 0.5
)

// Camera orbit
// Position is (RadiusX·cos(a), Height, RadiusZ·sin(a)), always looking at the origin
const (
	CameraRadiusX = 30.0
	CameraRadiusZ = 80.0
	CameraHeight  = 30.0

	// CameraAngleStep is added to the camera angle once per frame
	CameraAngleStep = 0.001
)

// Initial camera position before the first frame
var CameraStart = [3]float64{30, 30, 80}
