package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contextIDKey = "id"

var errIDNotFoundInCtx = errors.New("id not found in echo.Context")

// idParamMiddleware parses the ":id" path param of detail endpoints.
// Ids are SERIAL columns: anything outside 1..2^31-1 is rejected before reaching storage.
func idParamMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := strconv.ParseInt(ctx.Param("id"), 10, 32)
			if err != nil || id < 1 {
				return errInvalidID
			}
			ctx.Set(contextIDKey, int(id))
			return next(ctx)
		}
	}
}

func getContextID(ctx echo.Context) (int, error) {
	if id, ok := ctx.Get(contextIDKey).(int); ok {
		return id, nil
	}
	return 0, errors.Wrap(errIDNotFoundInCtx, "retrieving id from context")
}

// checkIDMatch rejects update payloads whose id differs from the one in the path.
func checkIDMatch(ctx echo.Context, bodyID int) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if id != bodyID {
		return errIDMismatch
	}
	return nil
}

func setLocation(ctx echo.Context, resource string, id int) {
	ctx.Response().Header().Set(echo.HeaderLocation, "/api/"+resource+"/"+strconv.Itoa(id))
}
