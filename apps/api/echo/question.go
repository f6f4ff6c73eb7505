package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core/question"
)

type questionApi struct {
	svc      *question.Service
	validate *validator.Validate
}

func registerQuestionAPI(g *echo.Group, svc *question.Service, validate *validator.Validate) {
	api := questionApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/questions")
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id", idParamMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *questionApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	questions, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying questions")
	}
	return ctx.JSON(http.StatusOK, question.ToDTOs(questions))
}

func (api *questionApi) retrieve(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	qstn, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting question by ID")
	}
	return ctx.JSON(http.StatusOK, question.ToDTO(qstn))
}

func (api *questionApi) create(ctx echo.Context) error {
	var data question.NewQuestion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuestion")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	qstn, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating question")
	}

	setLocation(ctx, "questions", qstn.ID)
	return ctx.JSON(http.StatusCreated, question.ToDTO(qstn))
}

func (api *questionApi) update(ctx echo.Context) error {
	var data question.UpdateQuestion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuestion")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if err := checkIDMatch(ctx, data.ID); err != nil {
		return err
	}

	if err := api.svc.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating question")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *questionApi) destroy(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting question")
	}
	return ctx.NoContent(http.StatusNoContent)
}
