package core

import "fmt"

// Error codes reported by board construction, placement and validation.
const (
	CodeEmptyGrid       = "EMPTY_GRID"
	CodeRaggedGrid      = "RAGGED_GRID"
	CodeInvalidSymbol   = "INVALID_SYMBOL"
	CodePlacementShort  = "PLACEMENT_SHORT"
	CodeNoLasers        = "NO_LASERS"
	CodeNoTargets       = "NO_TARGETS"
	CodeNoBlocks        = "NO_BLOCKS"
	CodeTooManyBlocks   = "TOO_MANY_BLOCKS"
	CodeLaserOutOfGrid  = "LASER_OUT_OF_GRID"
	CodeTargetOutOfGrid = "TARGET_OUT_OF_GRID"
	CodeBadDirection    = "BAD_DIRECTION"
)

// ValidationError contains details about an invalid puzzle, grid or placement.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
