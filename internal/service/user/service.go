package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/domain/user"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
	"github.com/orbit-hr/hr-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
}

func NewUserService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
) user.UserService {
	return &UserServiceImpl{
		db:                 db,
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
	}
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}

// CreateUser implements user.UserService. The employee-link check and the
// insert run in one transaction so the link cannot dangle.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.EmployeeID != nil {
			if _, err := s.EmployeeRepository.GetByID(txCtx, *req.EmployeeID); err != nil {
				return err
			}
		}

		created, err = s.UserRepository.Create(txCtx, user.User{
			Name:         req.Name,
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         user.Role(req.Role),
			EmployeeID:   req.EmployeeID,
		})
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) (user.ListUserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return user.ListUserResponse{}, err
	}

	data := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, toResponse(u))
	}

	return user.ListUserResponse{Data: data}, nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.UserRepository.Delete(ctx, id)
}
