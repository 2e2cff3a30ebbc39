// Package transaction exposes the transaction use cases as HTTP routes.
package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kouame/payboard/pkg/mapper"
	svc "github.com/kouame/payboard/pkg/service/transaction"
	"github.com/kouame/payboard/webapi/common"
)

// Routes registers the transaction routes:
//   - GET  /transactions             : filtered, sorted, paginated listing.
//   - GET  /transactions/export      : CSV download of the filtered set.
//   - GET  /transactions/:id         : single transaction with history.
//   - POST /transactions/:id/retry   : re-submit a failed transaction.
//   - POST /transactions/:id/cancel  : abort a pending transaction.
func Routes(app *fiber.App, txSvc *svc.Service) {
	app.Get("/transactions", List(txSvc))
	app.Get("/transactions/export", Export(txSvc))
	app.Get("/transactions/:id", Detail(txSvc))
	app.Post("/transactions/:id/retry", Retry(txSvc))
	app.Post("/transactions/:id/cancel", Cancel(txSvc))
}

// List returns the handler for the filtered transaction listing.
func List(txSvc *svc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ListRequest](c)
		if input == nil {
			return err
		}

		filters, err := input.Filters()
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid filters", err.Error())
		}

		result, err := txSvc.GetTransactions(c.Context(), filters, input.Pagination(), input.Sort())
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to list transactions", err)
		}

		data := make([]any, 0, len(result.Data))
		for _, tx := range result.Data {
			data = append(data, mapper.ToDTO(tx))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", ListResponse{
			Data:       data,
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		})
	}
}

// Detail returns the handler for a single transaction lookup.
func Detail(txSvc *svc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := txSvc.GetTransactionDetail(c.Context(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to get transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction retrieved", mapper.ToDTO(tx))
	}
}

// Retry returns the handler re-submitting a failed transaction.
func Retry(txSvc *svc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := txSvc.Retry(c.Context(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to retry transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction retried", mapper.ToDTO(tx))
	}
}

// Cancel returns the handler aborting a pending transaction.
func Cancel(txSvc *svc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := txSvc.Cancel(c.Context(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to cancel transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction cancelled", mapper.ToDTO(tx))
	}
}

// Export returns the handler streaming the filtered set as a CSV download.
func Export(txSvc *svc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ListRequest](c)
		if input == nil {
			return err
		}
		filters, err := input.Filters()
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid filters", err.Error())
		}

		doc, err := txSvc.Export(c.Context(), filters)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to export transactions", err)
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
		return c.Send(doc)
	}
}
