// Package service implements the haleway.v1 Connect services on top of the
// checklist engine.
package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/haleway/internal/auth"
	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/errs"
	"github.com/mmynk/haleway/internal/middleware"
)

// caller returns the claims of the authenticated user.
func caller(ctx context.Context) (*auth.Claims, error) {
	claims := middleware.GetClaims(ctx)
	if claims == nil || claims.UserID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return claims, nil
}

// scope is the set of trips the claims grant access to.
func scope(claims *auth.Claims) engine.Scope {
	return engine.Trips(claims.VisibleTrips()...)
}

// toConnectError maps the engine's error taxonomy onto Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errs.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errs.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case errs.IsPermission(err):
		return connect.NewError(connect.CodePermissionDenied, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
