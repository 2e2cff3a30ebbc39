// Package webapi exposes the transaction dashboard over HTTP. It is a
// disposable presentation skin: all behavior lives in the service layer and
// below.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	transactionsvc "github.com/kouame/payboard/pkg/service/transaction"
	"github.com/kouame/payboard/webapi/common"
	transactionapi "github.com/kouame/payboard/webapi/transaction"
)

// NewApp builds the Fiber application with middleware and all routes.
func NewApp(txSvc *transactionsvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "payboard",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})

	transactionapi.Routes(app, txSvc)

	return app
}
