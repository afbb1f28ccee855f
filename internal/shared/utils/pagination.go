package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

// Window holds an offset/limit pair.
type Window struct {
	Offset int
	Limit  int
}

// NormalizeWindow validates and normalizes offset/limit.
// A negative offset is rejected. Limit defaults to DefaultLimit when less
// than 1, and is capped at MaxLimit.
func NormalizeWindow(offset, limit int) (Window, error) {
	if offset < 0 {
		return Window{}, errors.NewValidationError(constants.ErrMsgValidationFailed, "offset must be greater than or equal to 0")
	}

	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return Window{Offset: offset, Limit: limit}, nil
}

// ParseWindow reads the offset and limit query parameters. Absent values
// fall back to 0 and DefaultLimit; non-numeric values are validation errors.
// Range checks are left to NormalizeWindow.
func ParseWindow(c *gin.Context) (offset, limit int, err error) {
	if offset, err = queryInt(c, "offset", 0); err != nil {
		return 0, 0, err
	}
	if limit, err = queryInt(c, "limit", constants.DefaultLimit); err != nil {
		return 0, 0, err
	}
	return offset, limit, nil
}

func queryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.NewValidationError(constants.ErrMsgValidationFailed, key+" must be an integer")
	}
	return n, nil
}
