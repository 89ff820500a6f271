package handlers

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles the owner's accounts page routes.
type AccountHandler struct {
	Accounts *services.AccountService
}

// GetOverview handles GET /propertyowner-accounts
// @Summary Accounts overview
// @Description Get the stats cards and the three ledgers, with the payment ledger filtered by search
// @Tags Accounts
// @Produce json
// @Param q query string false "Search query over tenant and unit"
// @Success 200 {object} services.AccountOverview
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-accounts [get]
func (h *AccountHandler) GetOverview(c *fiber.Ctx) error {
	view, err := h.Accounts.Overview(c.Query("q"))
	if err != nil {
		return fail(c, err, "getAccountsOverview")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// RecordPayment handles POST /propertyowner-accounts/payments
// @Summary Record a rent payment
// @Description Add a paid rent payment to the accounts ledger
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body forms.PaymentInput true "Payment form"
// @Success 201 {object} models.AccountPayment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-accounts/payments [post]
func (h *AccountHandler) RecordPayment(c *fiber.Ctx) error {
	var in forms.PaymentInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	p, err := h.Accounts.RecordPayment(in)
	if err != nil {
		return fail(c, err, "recordPayment")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// RecordTransfer handles POST /propertyowner-accounts/transfers
// @Summary Record a maintenance transfer
// @Description Add a pending transfer to a maintenance provider
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body forms.TransferInput true "Transfer form"
// @Success 201 {object} models.MaintenanceTransfer
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-accounts/transfers [post]
func (h *AccountHandler) RecordTransfer(c *fiber.Ctx) error {
	var in forms.TransferInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	t, err := h.Accounts.RecordTransfer(in)
	if err != nil {
		return fail(c, err, "recordTransfer")
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// RecordReceipt handles POST /propertyowner-accounts/receipts
// @Summary Record a maintenance receipt
// @Description Add a received maintenance payment to the ledger
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body forms.ReceiptInput true "Receipt form"
// @Success 201 {object} models.MaintenanceReceipt
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-accounts/receipts [post]
func (h *AccountHandler) RecordReceipt(c *fiber.Ctx) error {
	var in forms.ReceiptInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	r, err := h.Accounts.RecordReceipt(in)
	if err != nil {
		return fail(c, err, "recordReceipt")
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// Export handles GET /propertyowner-accounts/export
// @Summary Download the account report
// @Description Download the current account snapshot as a JSON attachment
// @Tags Accounts
// @Produce json
// @Success 200 {object} services.AccountReport
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-accounts/export [get]
func (h *AccountHandler) Export(c *fiber.Ctx) error {
	report, err := h.Accounts.Export()
	if err != nil {
		return fail(c, err, "exportAccounts")
	}
	return utils.DownloadJSONResponse(c, report, services.ReportFilename)
}
