package service

import "context"

// PageRevalidator invalidates cached rendered pages after a mutation, so the
// presentation layer re-renders them from fresh data.
type PageRevalidator interface {
	// Revalidate drops the cache entry for one logical path, e.g. "/events".
	Revalidate(ctx context.Context, path string) error

	// RevalidateAll drops every cached page. Used by the account-deletion
	// cascade, which can touch listings anywhere.
	RevalidateAll(ctx context.Context) error
}
