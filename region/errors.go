package region

import "errors"

// ErrUnknownLabel indicates a label that does not occur in the Labeling.
var ErrUnknownLabel = errors.New("region: unknown label")
