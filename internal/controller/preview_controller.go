package controller

import (
	"fmt"
	"time"

	"genui-be/internal/apperror"
	"genui-be/internal/entity"
	"genui-be/internal/pkg/serverutils"
	"genui-be/internal/service"
	"genui-be/pkg/genui/preview"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPreviewController interface {
	RegisterRoutes(r fiber.Router)
	Preview(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type previewController struct {
	sessionService service.ISessionService
}

func NewPreviewController(sessionService service.ISessionService) IPreviewController {
	return &previewController{sessionService: sessionService}
}

func (c *previewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/genui/v1/session")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":id/preview", c.Preview)
	h.Get(":id/export", c.Export)
}

func (c *previewController) loadArtifact(ctx *fiber.Ctx) (*entity.Artifact, *time.Time, error) {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return nil, nil, apperror.Validation("invalid session id")
	}

	session, err := c.sessionService.Show(ctx.Context(), userId, id)
	if err != nil {
		return nil, nil, err
	}

	artifact := &entity.Artifact{
		Jsx: session.Artifact.Jsx,
		Css: session.Artifact.Css,
	}
	return artifact, session.UpdatedAt, nil
}

// Preview serves the generated component as a standalone sandboxed document.
// The CSP sandbox keeps model-written code away from host cookies, storage
// and navigation even when the document is framed by the app.
func (c *previewController) Preview(ctx *fiber.Ctx) error {
	artifact, _, err := c.loadArtifact(ctx)
	if err != nil {
		return err
	}

	doc := preview.BuildDocument(artifact)

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	ctx.Set("Content-Security-Policy", "sandbox allow-scripts")
	ctx.Set("X-Frame-Options", "SAMEORIGIN")
	ctx.Set("Referrer-Policy", "no-referrer")
	return ctx.SendString(doc)
}

func (c *previewController) Export(ctx *fiber.Ctx) error {
	artifact, updatedAt, err := c.loadArtifact(ctx)
	if err != nil {
		return err
	}

	generatedAt := time.Now()
	if updatedAt != nil {
		generatedAt = *updatedAt
	}

	filename, content := preview.ExportBundle(artifact, generatedAt)

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.SendString(content)
}
