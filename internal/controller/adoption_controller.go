package controller

import (
	"fmt"

	"badger-buds-be/internal/dto"
	"badger-buds-be/internal/pkg/serverutils"
	"badger-buds-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdoptionController interface {
	RegisterRoutes(r fiber.Router)
	GetCatalog(ctx *fiber.Ctx) error
	GetAvailable(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetBasket(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Unselect(ctx *fiber.Ctx) error
	Adopt(ctx *fiber.Ctx) error
	GetAdopted(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
}

type adoptionController struct {
	service service.IAdoptionService
}

func NewAdoptionController(service service.IAdoptionService) IAdoptionController {
	return &adoptionController{service: service}
}

func (c *adoptionController) RegisterRoutes(r fiber.Router) {
	buds := r.Group("/buds/v1")
	buds.Get("", c.GetCatalog)
	buds.Get("available", c.GetAvailable)
	buds.Get(":id", c.Show)

	basket := r.Group("/basket/v1")
	basket.Get("", c.GetBasket)
	basket.Post(":id", c.Save)
	basket.Delete(":id", c.Unselect)
	basket.Post(":id/adopt", c.Adopt)

	adopted := r.Group("/adopted/v1")
	adopted.Get("", c.GetAdopted)

	session := r.Group("/session/v1")
	session.Get("", c.GetSession)
	session.Delete("", c.EndSession)
}

func selectRequest(ctx *fiber.Ctx) (*dto.SelectCatRequest, error) {
	req := dto.SelectCatRequest{CatId: ctx.Params("id")}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *adoptionController) GetCatalog(ctx *fiber.Ctx) error {
	res, err := c.service.GetCatalog(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all buds", res))
}

func (c *adoptionController) GetAvailable(ctx *fiber.Ctx) error {
	res, err := c.service.GetAvailable(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get available buds", res))
}

func (c *adoptionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.ShowCat(ctx.Context(), serverutils.SessionID(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show bud", res))
}

func (c *adoptionController) GetBasket(ctx *fiber.Ctx) error {
	res, err := c.service.GetBasket(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get basket", res))
}

func (c *adoptionController) Save(ctx *fiber.Ctx) error {
	req, err := selectRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Save(ctx.Context(), serverutils.SessionID(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("%s has been added to your basket!", res.Name), res))
}

func (c *adoptionController) Unselect(ctx *fiber.Ctx) error {
	req, err := selectRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Unselect(ctx.Context(), serverutils.SessionID(ctx), req)
	if err != nil {
		return err
	}

	name := res.Name
	if name == "" {
		name = "Bud " + res.CatId
	}
	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("%s has been removed from your basket.", name), res))
}

func (c *adoptionController) Adopt(ctx *fiber.Ctx) error {
	req, err := selectRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Adopt(ctx.Context(), serverutils.SessionID(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Congratulations! %s has been adopted!", res.Name), res))
}

func (c *adoptionController) GetAdopted(ctx *fiber.Ctx) error {
	res, err := c.service.GetAdopted(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get adopted buds", res))
}

func (c *adoptionController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.GetSelection(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *adoptionController) EndSession(ctx *fiber.Ctx) error {
	if err := c.service.EndSession(ctx.Context(), serverutils.SessionID(ctx)); err != nil {
		return err
	}
	serverutils.ExpireSessionCookie(ctx)

	return ctx.JSON(serverutils.SuccessResponse[any]("Session ended", nil))
}
