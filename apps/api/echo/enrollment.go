package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core/enrollment"
)

type enrollmentApi struct {
	svc      *enrollment.Service
	validate *validator.Validate
}

func registerEnrollmentAPI(g *echo.Group, svc *enrollment.Service, validate *validator.Validate) {
	api := enrollmentApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/enrollments")
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id", idParamMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *enrollmentApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	enrollments, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	return ctx.JSON(http.StatusOK, enrollment.ToDTOs(enrollments))
}

func (api *enrollmentApi) retrieve(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	enrl, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting enrollment by ID")
	}
	return ctx.JSON(http.StatusOK, enrollment.ToDTO(enrl))
}

func (api *enrollmentApi) create(ctx echo.Context) error {
	var data enrollment.NewEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	enrl, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating enrollment")
	}

	setLocation(ctx, "enrollments", enrl.ID)
	return ctx.JSON(http.StatusCreated, enrollment.ToDTO(enrl))
}

func (api *enrollmentApi) update(ctx echo.Context) error {
	var data enrollment.UpdateEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if err := checkIDMatch(ctx, data.ID); err != nil {
		return err
	}

	if err := api.svc.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating enrollment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *enrollmentApi) destroy(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting enrollment")
	}
	return ctx.NoContent(http.StatusNoContent)
}
