package controller

import (
	"focuscam-be/internal/pkg/serverutils"
	"focuscam-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
}

type dashboardController struct {
	sessionService service.ISessionService
}

func NewDashboardController(sessionService service.ISessionService) IDashboardController {
	return &dashboardController{
		sessionService: sessionService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/home", c.Home)
}

func (c *dashboardController) Home(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.sessionService.GetTodayProgress(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get today progress", res))
}
