// Package policy holds the authorization rule table as pure functions of
// (actor, action, resource). No HTTP types, no storage, no side effects:
// absence of a matching grant is denial.
package policy

import (
	"yoripe/internal/core/post"
	"yoripe/internal/core/user"
)

type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllowUser gates the users resource: admin-only for every action, viewing
// included. There is deliberately no view-own-profile exception.
func AllowUser(actor *user.User, action Action) bool {
	if actor == nil {
		return false
	}
	switch action {
	case ActionList, ActionView, ActionCreate, ActionUpdate, ActionDelete:
		return actor.HasRole(user.RoleAdmin)
	}
	return false
}

// AllowPost gates the posts resource. Blanket role grants (admin, manager)
// are checked before the ownership fallback for the user role. The target
// post must already be resolved; missing resources are a Not Found condition
// raised before the policy runs.
func AllowPost(actor *user.User, action Action, p *post.Post) bool {
	if actor == nil {
		return false
	}
	switch action {
	case ActionList, ActionCreate:
		// Any authenticated actor; a created post is owned by its creator.
		return true
	case ActionView, ActionUpdate, ActionDelete:
		if actor.HasRole(user.RoleAdmin) || actor.HasRole(user.RoleManager) {
			return true
		}
		return actor.HasRole(user.RoleUser) && p != nil && p.UserID == actor.ID
	}
	return false
}
