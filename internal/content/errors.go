package content

import "errors"

// ErrInvalidCatalog is returned when a loaded catalog fails validation
var ErrInvalidCatalog = errors.New("invalid content catalog")
