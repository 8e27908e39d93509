package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/user"
)

// employeeIDFromClaims resolves the caller's employee record from the access
// token. Accounts without a linked employee cannot use the clock endpoints.
func employeeIDFromClaims(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", user.ErrNoLinkedEmployee
	}

	return employeeID, nil
}

func roleFromClaims(r *http.Request) user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	roleStr, _ := claims["role"].(string)
	return user.Role(roleStr)
}
