package usecase

import "photobazaar/internal/entity"

// canManage is the single ownership check used for mutating operations on
// owned resources: the owner or an admin may act, everyone else is denied.
func canManage(actorID string, actorRole entity.UserRole, ownerID string) bool {
	return actorID == ownerID || actorRole == entity.RoleAdmin
}
