package handlers

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/services"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type SongHandler struct {
	users     *services.UserService
	songs     *services.SongService
	validator *validation.Validator
}

func NewSongHandler(users *services.UserService, songs *services.SongService, v *validation.Validator) *SongHandler {
	return &SongHandler{users: users, songs: songs, validator: v}
}

func (h *SongHandler) Create(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CreateSongRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	song, err := h.songs.Create(c.UserContext(), user.ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(services.ToSong(song))
}

func (h *SongHandler) List(c *fiber.Ctx) error {
	user, err := owner(c, h.users)
	if err != nil {
		return err
	}

	filter := dto.TrackFilter{
		SongTitle: queryFilter(c, "song_title"),
		Genre:     queryFilter(c, "genre"),
	}
	songs, err := h.songs.List(c.UserContext(), user.ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(services.ToSongs(songs))
}

func (h *SongHandler) Get(c *fiber.Ctx) error {
	song, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(services.ToSong(song))
}

func (h *SongHandler) Update(c *fiber.Ctx) error {
	song, err := h.resolve(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSongRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	updated, err := h.songs.Update(c.UserContext(), song, &req)
	if err != nil {
		return err
	}
	return c.JSON(services.ToSong(updated))
}

func (h *SongHandler) resolve(c *fiber.Ctx) (*models.Song, error) {
	user, principalID, err := addressedUser(c, h.users)
	if err != nil {
		return nil, err
	}
	key, err := pathID(c, "key", apierr.ErrSongDoesNotExist)
	if err != nil {
		return nil, err
	}
	song, err := h.songs.FindSong(c.UserContext(), key)
	if err != nil {
		return nil, err
	}
	if err := services.Authorize(principalID, user.ID); err != nil {
		return nil, err
	}
	if song.UserID != user.ID {
		return nil, apierr.ErrSongDoesNotExist
	}
	return song, nil
}

// queryFilter returns nil when key is absent from the query string. A
// trailing slash some clients append, e.g. "?genre=rock/", is dropped.
func queryFilter(c *fiber.Ctx, key string) *string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	v := strings.TrimSuffix(c.Query(key), "/")
	return &v
}
