package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/tienda/internal/dto"
)

func (h *Handler) listCustomers(c *fiber.Ctx) error {
	result, err := h.customers.ListCustomers()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) getCustomer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	customer, err := h.customers.GetCustomer(id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(customer)
}

func (h *Handler) createCustomer(c *fiber.Ctx) error {
	var in dto.Customer
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.customers.CreateCustomer(in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCustomer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	var in dto.Customer
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.customers.UpdateCustomer(id, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCustomer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	deleted, err := h.customers.DeleteCustomer(id)
	return h.respondDeleted(c, deleted, err)
}
