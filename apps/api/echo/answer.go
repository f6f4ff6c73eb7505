package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core/answer"
)

type answerApi struct {
	svc      *answer.Service
	validate *validator.Validate
}

func registerAnswerAPI(g *echo.Group, svc *answer.Service, validate *validator.Validate) {
	api := answerApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/answers")
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id", idParamMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *answerApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	answers, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying answers")
	}
	return ctx.JSON(http.StatusOK, answer.ToDTOs(answers))
}

func (api *answerApi) retrieve(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	ans, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting answer by ID")
	}
	return ctx.JSON(http.StatusOK, answer.ToDTO(ans))
}

func (api *answerApi) create(ctx echo.Context) error {
	var data answer.NewAnswer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnswer")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ans, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating answer")
	}

	setLocation(ctx, "answers", ans.ID)
	return ctx.JSON(http.StatusCreated, answer.ToDTO(ans))
}

func (api *answerApi) update(ctx echo.Context) error {
	var data answer.UpdateAnswer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAnswer")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if err := checkIDMatch(ctx, data.ID); err != nil {
		return err
	}

	if err := api.svc.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating answer")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *answerApi) destroy(ctx echo.Context) error {
	id, err := getContextID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting answer")
	}
	return ctx.NoContent(http.StatusNoContent)
}
