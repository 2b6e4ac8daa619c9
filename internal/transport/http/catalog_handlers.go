package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/tienda/internal/dto"
)

func (h *Handler) listCategories(c *fiber.Ctx) error {
	result, err := h.catalog.ListCategories()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	category, err := h.catalog.GetCategory(id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(category)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	var in dto.Category
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.catalog.CreateCategory(in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var in dto.Category
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.catalog.UpdateCategory(id, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	deleted, err := h.catalog.DeleteCategory(id)
	return h.respondDeleted(c, deleted, err)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	result, err := h.catalog.ListProducts()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	product, err := h.catalog.GetProduct(id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	var in dto.Product
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.catalog.CreateProduct(in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	var in dto.Product
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.catalog.UpdateProduct(id, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	deleted, err := h.catalog.DeleteProduct(id)
	return h.respondDeleted(c, deleted, err)
}
