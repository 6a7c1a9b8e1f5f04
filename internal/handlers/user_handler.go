package handlers

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/services"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users     *services.UserService
	auth      *services.AuthService
	validator *validation.Validator
}

func NewUserHandler(users *services.UserService, auth *services.AuthService, v *validation.Validator) *UserHandler {
	return &UserHandler{users: users, auth: auth, validator: v}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	email, err := h.validator.Email(req.Email)
	if err != nil {
		return err
	}
	password, err := h.validator.Password(req.Password)
	if err != nil {
		return err
	}

	resp, err := h.auth.Register(c.UserContext(), email, password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := validation.Credentials(req.Email, req.Password); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(*req.Email))
	resp, err := h.auth.Login(c.UserContext(), email, *req.Password)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}
	return c.JSON(services.ToProfile(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	email, err := h.validator.Email(req.Email)
	if err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	updated, err := h.users.UpdateProfile(c.UserContext(), user, email, &req)
	if err != nil {
		return err
	}
	return c.JSON(services.ToProfile(updated))
}
