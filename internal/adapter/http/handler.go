package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

type Handler struct {
	session  *usecase.Session
	renderer *render.Renderer
	exporter *export.Exporter
	queue    *notify.Queue
	log      *slog.Logger
}

func NewHandler(s *usecase.Session, r *render.Renderer, e *export.Exporter, q *notify.Queue, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{session: s, renderer: r, exporter: e, queue: q, log: log}
}

// Register mounts the editor routes on r.
func (h *Handler) Register(r fiber.Router) {
	api := r.Group("/api")
	api.Get("/resume", h.GetResume)
	api.Put("/resume/personal/:field", h.SetPersonal)

	api.Post("/resume/work", h.AddWork)
	api.Patch("/resume/work/:id", h.UpdateWork)
	api.Delete("/resume/work/:id", h.RemoveWork)

	api.Post("/resume/education", h.AddEducation)
	api.Patch("/resume/education/:id", h.UpdateEducation)
	api.Delete("/resume/education/:id", h.RemoveEducation)

	api.Post("/resume/skills/:category", h.AddSkill)
	api.Delete("/resume/skills/:category/:index", h.RemoveSkill)

	api.Put("/resume/customizations/:field", h.SetCustomization)
	api.Post("/resume/reset", h.Reset)
	api.Post("/resume/skeleton", h.Skeleton)

	api.Get("/completion", h.Completion)
	api.Get("/notifications", h.Notifications)
	api.Post("/export", h.Export)

	r.Get("/preview", h.Preview)
}

type valueReq struct {
	Value string `json:"value"`
}

type entryFieldReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type skillReq struct {
	Label string `json:"label"`
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return respond(c, h.session.Snapshot())
}

func (h *Handler) SetPersonal(c *fiber.Ctx) error {
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.session.SetPersonalField(domain.PersonalField(c.Params("field")), req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) AddWork(c *fiber.Ctx) error {
	doc, id := h.session.AddWorkEntry()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"resume":  doc,
		"summary": usecase.Summarize(doc),
	})
}

func (h *Handler) UpdateWork(c *fiber.Ctx) error {
	var req entryFieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.session.UpdateWorkEntry(c.Params("id"), domain.WorkField(req.Field), req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) RemoveWork(c *fiber.Ctx) error {
	return respond(c, h.session.RemoveWorkEntry(c.Params("id")))
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	doc, id := h.session.AddEducationEntry()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"resume":  doc,
		"summary": usecase.Summarize(doc),
	})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var req entryFieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.session.UpdateEducationEntry(c.Params("id"), domain.EducationField(req.Field), req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	return respond(c, h.session.RemoveEducationEntry(c.Params("id")))
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	category, err := domain.ParseSkillCategory(c.Params("category"))
	if err != nil {
		return h.fail(c, err)
	}
	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.session.AddSkill(category, req.Label)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	category, err := domain.ParseSkillCategory(c.Params("category"))
	if err != nil {
		return h.fail(c, err)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "invalid index")
	}
	doc, err := h.session.RemoveSkill(category, index)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) SetCustomization(c *fiber.Ctx) error {
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.session.SetCustomization(domain.CustomizationField(c.Params("field")), req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, doc)
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	return respond(c, h.session.ResetToDefault())
}

func (h *Handler) Skeleton(c *fiber.Ctx) error {
	return respond(c, h.session.LoadSkeleton())
}

func (h *Handler) Completion(c *fiber.Ctx) error {
	return c.JSON(usecase.Summarize(h.session.Snapshot()))
}

func (h *Handler) Notifications(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"notifications": h.queue.List()})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := h.renderer.Render(h.session.Snapshot())
	if err != nil {
		return h.fail(c, err)
	}
	page, err := export.PrintDocument(doc)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(page)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	doc, err := h.renderer.Render(h.session.Snapshot())
	if err != nil {
		return h.fail(c, err)
	}
	res, err := h.exporter.Export(c.UserContext(), doc)
	if err != nil {
		if errors.Is(err, export.ErrSurfaceUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error(), "result": res})
		}
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func respond(c *fiber.Ctx, doc domain.Resume) error {
	return c.JSON(fiber.Map{"resume": doc, "summary": usecase.Summarize(doc)})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidValue) || errors.Is(err, domain.ErrUnknownField) {
		return badRequest(c, err.Error())
	}
	h.log.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
