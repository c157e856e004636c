// Package credentials persists the session's credential pair: the bearer
// token and the serialized user object. Both are written and cleared
// together so the persisted state is never half-valid.
package credentials

import "context"

// Repository is durable storage for the credential pair.
//
// Load returns empty values (not an error) when nothing is stored; the
// session store treats that as "no session".
type Repository interface {
	Save(ctx context.Context, token string, user []byte) error
	Load(ctx context.Context) (token string, user []byte, err error)
	Clear(ctx context.Context) error
}
