package user

import "context"

// UserService defines business logic for login account administration
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) (ListUserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
