package handlers

import (
	"encoding/json"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/models"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a JSON body into out. An empty body leaves out
// untouched so that required-field checks report the missing keys.
func parseBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apierr.ErrInvalidRequestBody
	}
	return nil
}

func pathID(c *fiber.Ctx, name string, notFound *apierr.Error) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return uint(id), nil
}

// addressedUser resolves the user named by the :id path segment together
// with the authenticated principal, without comparing them yet.
func addressedUser(c *fiber.Ctx, users *services.UserService) (*models.User, uint, error) {
	principalID, err := middleware.PrincipalID(c)
	if err != nil {
		return nil, 0, err
	}
	id, err := pathID(c, "id", apierr.ErrUserDoesNotExist)
	if err != nil {
		return nil, 0, err
	}
	user, err := users.FindUser(c.UserContext(), id)
	if err != nil {
		return nil, 0, err
	}
	return user, principalID, nil
}

// owner is addressedUser followed by the owner-only check.
func owner(c *fiber.Ctx, users *services.UserService) (*models.User, error) {
	user, principalID, err := addressedUser(c, users)
	if err != nil {
		return nil, err
	}
	if err := services.Authorize(principalID, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}
