// AngelaMos | 2026
// queries.go

package auth

import (
	"errors"
	"reflect"

	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

// RegisterHandlers binds the auth requests to svc.
func RegisterHandlers(reg *mediator.Registry, svc *Service) error {
	return errors.Join(
		mediator.Register[RegisterUserCommand, AuthResponse](
			reg, mediator.HandlerFunc[RegisterUserCommand, AuthResponse](svc.Register)),
		mediator.Register[LoginUserCommand, AuthResponse](
			reg, mediator.HandlerFunc[LoginUserCommand, AuthResponse](svc.Login)),
		mediator.Register[GetCurrentUserQuery, UserResponse](
			reg, mediator.HandlerFunc[GetCurrentUserQuery, UserResponse](svc.GetCurrentUser)),
	)
}

// Queries lists the request types Handler dispatches.
func Queries() []reflect.Type {
	return []reflect.Type{
		mediator.Key[RegisterUserCommand](),
		mediator.Key[LoginUserCommand](),
		mediator.Key[GetCurrentUserQuery](),
	}
}
