package controller

import (
	"errors"
	"strconv"
	"time"

	"focuscam-be/internal/dto"
	"focuscam-be/internal/pkg/serverutils"
	"focuscam-be/internal/service"
	"focuscam-be/pkg/table"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	AddSamples(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("/start", c.Start)
	h.Get(":id", c.Show)
	h.Post(":id/end", c.End)
	h.Post(":id/samples", c.AddSamples)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// parseListOptions maps table query params onto one request's view
// state. Unknown or malformed filter values are rejected rather than
// silently ignored, so the client can surface the mistake.
func parseListOptions(ctx *fiber.Ctx) (service.ListOptions, error) {
	opts := service.ListOptions{
		Page:     ctx.QueryInt("page", 0),
		PageSize: ctx.QueryInt("pageSize", 0),
	}

	if raw := ctx.Query("duration"); raw != "" {
		expr, ok := table.ParseDurationExpr(raw)
		if !ok {
			return opts, errors.New("invalid duration filter value")
		}
		op := table.NumberOperator(ctx.Query("durationOp", string(table.OpIs)))
		opts.Predicates = append(opts.Predicates, table.NumberPredicate{
			Column: table.ColumnDuration,
			Op:     op,
			Value:  expr.Seconds,
		})
	}

	if raw := ctx.Query("score"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, errors.New("invalid score filter value")
		}
		op := table.NumberOperator(ctx.Query("scoreOp", string(table.OpIs)))
		opts.Predicates = append(opts.Predicates, table.NumberPredicate{
			Column: table.ColumnFocusScore,
			Op:     op,
			Value:  score,
		})
	}

	if raw := ctx.Query("date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return opts, errors.New("invalid date filter value, want YYYY-MM-DD")
		}
		op := table.DateOperator(ctx.Query("dateOp", string(table.DateIs)))
		opts.Predicates = append(opts.Predicates, table.DatePredicate{
			Op:    op,
			Value: day,
		})
	}

	if sort := ctx.Query("sort"); sort != "" {
		switch table.Column(sort) {
		case table.ColumnStartTime, table.ColumnDuration, table.ColumnFocusScore:
			opts.SortColumn = table.Column(sort)
			opts.HasSort = true
			opts.SortDesc = ctx.Query("order", "desc") != "asc"
		default:
			return opts, errors.New("invalid sort column")
		}
	}

	return opts, nil
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	opts, err := parseListOptions(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.sessionService.ListSessions(ctx.Context(), userId, opts)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	res, err := c.sessionService.GetSession(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.StartSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *sessionController) End(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	var req dto.EndSessionRequest
	if err := ctx.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.EndSession(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success end session", res))
}

func (c *sessionController) AddSamples(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	var req dto.AddSamplesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	count, err := c.sessionService.AddSamples(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add samples", fiber.Map{"accepted": count}))
}
