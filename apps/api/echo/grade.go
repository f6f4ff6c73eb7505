package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core/grade"
)

type gradeApi struct {
	svc      *grade.Service
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, svc *grade.Service, validate *validator.Validate) {
	api := gradeApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/grades")
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id", idParamMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *gradeApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	grades, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, grade.ToDTOs(grades))
}

func (api *gradeApi) retrieve(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	grd, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting grade by ID")
	}
	return ctx.JSON(http.StatusOK, grade.ToDTO(grd))
}

func (api *gradeApi) create(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grd, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}

	setLocation(ctx, "grades", grd.ID)
	return ctx.JSON(http.StatusCreated, grade.ToDTO(grd))
}

func (api *gradeApi) update(ctx echo.Context) error {
	var data grade.UpdateGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if err := checkIDMatch(ctx, data.ID); err != nil {
		return err
	}

	if err := api.svc.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradeApi) destroy(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}
