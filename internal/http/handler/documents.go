package handler

import (
	"github.com/gofiber/fiber/v2"

	"studentdocs/internal/identity"
	"studentdocs/internal/model"
	"studentdocs/internal/service"
)

// resolvePrincipal re-resolves the caller's identity from the Authorization
// header. There is no session and no cached principal between requests.
func resolvePrincipal(c *fiber.Ctx, resolver identity.Resolver) (*model.Principal, error) {
	return resolver.Resolve(c.UserContext(), bearerCredential(c))
}

// UploadStudentDocument handles multipart uploads (field name: file) for a
// student, with an optional description form value.
func UploadStudentDocument(resolver identity.Resolver, lc service.Lifecycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolvePrincipal(c, resolver)
		if err != nil {
			return mapError(c, err)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := lc.Upload(c.UserContext(), principal, f, service.UploadInput{
			StudentID:   c.Params("id"),
			FileName:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Description: c.FormValue("description"),
		})
		if err != nil {
			return mapError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListStudentDocuments returns a student's document metadata, newest first.
func ListStudentDocuments(resolver identity.Resolver, lc service.Lifecycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolvePrincipal(c, resolver)
		if err != nil {
			return mapError(c, err)
		}

		items, err := lc.ListByStudent(c.UserContext(), principal, c.Params("id"))
		if err != nil {
			return mapError(c, err)
		}
		return c.JSON(items)
	}
}

// DeleteDocument runs the delete sequence for one document.
func DeleteDocument(resolver identity.Resolver, lc service.Lifecycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolvePrincipal(c, resolver)
		if err != nil {
			return mapError(c, err)
		}

		if err := lc.Delete(c.UserContext(), principal, c.Params("id")); err != nil {
			return mapError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type updateDescriptionRequest struct {
	Description string `json:"description"`
}

// UpdateDocumentDescription changes a document's description.
func UpdateDocumentDescription(resolver identity.Resolver, lc service.Lifecycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolvePrincipal(c, resolver)
		if err != nil {
			return mapError(c, err)
		}

		var req updateDescriptionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		doc, err := lc.UpdateDescription(c.UserContext(), principal, c.Params("id"), req.Description)
		if err != nil {
			return mapError(c, err)
		}
		return c.JSON(doc)
	}
}
