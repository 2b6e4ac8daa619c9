package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/tienda/internal/dto"
)

func (h *Handler) listOrders(c *fiber.Ctx) error {
	result, err := h.orders.ListOrders()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	order, err := h.orders.GetOrder(id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(order)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	var draft dto.OrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.orders.CreateOrder(draft)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var draft dto.OrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.orders.UpdateOrder(id, draft)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	deleted, err := h.orders.DeleteOrder(id)
	return h.respondDeleted(c, deleted, err)
}
