package catalog

import "errors"

var ErrInvalidWindow = errors.New("endTime must be after startTime")
