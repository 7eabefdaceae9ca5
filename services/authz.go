package services

import "auction-house/models"

// OwnerOrAdmin is the single authorization rule for mutating a resource:
// the acting user must own it, or carry the admin flag.
func OwnerOrAdmin(resourceOwnerID string, actor models.Identity) bool {
	return actor.IsAdmin || actor.ID == resourceOwnerID
}
