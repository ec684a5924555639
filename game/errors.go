package game

const (
	ErrorNilRegistry       = "locomotion core requires an obstacle registry"
	ErrorNoFloorBands      = "obstacle registry has no floor bands"
	ErrorInvalidMoveSpeed  = "move speed must be positive, got %v"
	ErrorBandNotContiguous = "floor band %d starts at %v, expected %v"
	ErrorBandBadHeight     = "floor band %d has non-positive height %v"
	ErrorUnknownAction     = "unknown input action %q"
	ErrorUnknownResponse   = "unknown collision response %q"
	ErrorDuplicateObstacle = "obstacle %q is already registered"
)
