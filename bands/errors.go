package bands

import "errors"

var (
	errUnknownEffort   = errors.New("bands: unknown vocal effort")
	errUnknownMaterial = errors.New("bands: unknown test material")
	errMaterialRange   = errors.New("bands: test material number must be between 1 and 8")
	errWeightsLength   = errors.New("bands: importance weights must have 18 values")
)
