package services

import "github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"

// Authorize enforces the owner-only rule: the authenticated principal may
// only address resources whose owner id equals its own.
func Authorize(principalID, ownerID uint) error {
	if principalID != ownerID {
		return apierr.ErrTokenUnauthorized
	}
	return nil
}
