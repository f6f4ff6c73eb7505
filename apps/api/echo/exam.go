package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core/exam"
)

type examApi struct {
	svc      *exam.Service
	validate *validator.Validate
}

func registerExamAPI(g *echo.Group, svc *exam.Service, validate *validator.Validate) {
	api := examApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/exams")
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id", idParamMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *examApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	exams, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	return ctx.JSON(http.StatusOK, exam.ToDTOs(exams))
}

func (api *examApi) retrieve(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	exm, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting exam by ID")
	}
	return ctx.JSON(http.StatusOK, exam.ToDTO(exm))
}

func (api *examApi) create(ctx echo.Context) error {
	var data exam.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExam")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	exm, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating exam")
	}

	setLocation(ctx, "exams", exm.ID)
	return ctx.JSON(http.StatusCreated, exam.ToDTO(exm))
}

func (api *examApi) update(ctx echo.Context) error {
	var data exam.UpdateExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExam")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if err := checkIDMatch(ctx, data.ID); err != nil {
		return err
	}

	if err := api.svc.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating exam")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *examApi) destroy(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting exam")
	}
	return ctx.NoContent(http.StatusNoContent)
}
