package handlers

import (
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/services"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type GenreHandler struct {
	users     *services.UserService
	genres    *services.GenreService
	validator *validation.Validator
}

func NewGenreHandler(users *services.UserService, genres *services.GenreService, v *validation.Validator) *GenreHandler {
	return &GenreHandler{users: users, genres: genres, validator: v}
}

func (h *GenreHandler) Create(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CreateGenreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	genre, err := h.genres.Create(c.UserContext(), user.ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(services.ToGenre(genre))
}

func (h *GenreHandler) List(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}

	genres, err := h.genres.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(services.ToGenres(genres))
}

func (h *GenreHandler) Get(c *fiber.Ctx) error {
	genre, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(services.ToGenre(genre))
}

func (h *GenreHandler) Update(c *fiber.Ctx) error {
	genre, err := h.resolve(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGenreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	updated, err := h.genres.Update(c.UserContext(), genre, &req)
	if err != nil {
		return err
	}
	return c.JSON(services.ToGenre(updated))
}

// resolve looks up the user and the genre before authorizing, so an
// unknown genre is reported as such regardless of who asks.
func (h *GenreHandler) resolve(c *fiber.Ctx) (*models.Genre, error) {
	user, principalID, err := addressedUser(c, h.users)
	if err != nil {
		return nil, err
	}
	key, err := pathID(c, "key", apierr.ErrGenreDoesNotExist)
	if err != nil {
		return nil, err
	}
	genre, err := h.genres.FindGenre(c.UserContext(), key)
	if err != nil {
		return nil, err
	}
	if err := services.Authorize(principalID, user.ID); err != nil {
		return nil, err
	}
	if genre.UserID != user.ID {
		return nil, apierr.ErrGenreDoesNotExist
	}
	return genre, nil
}
