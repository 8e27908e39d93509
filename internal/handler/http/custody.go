package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/custody"
	"github.com/orbit-hr/hr-backend-go/internal/domain/user"
	"github.com/orbit-hr/hr-backend-go/internal/handler/http/response"
)

type CustodyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type custodyHandlerImpl struct {
	custodyService custody.CustodyService
}

func NewCustodyHandler(custodyService custody.CustodyService) CustodyHandler {
	return &custodyHandlerImpl{
		custodyService: custodyService,
	}
}

// Create implements CustodyHandler.
func (h *custodyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req custody.CreateCustodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.custodyService.CreateCustodyItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Custody item recorded", resp)
}

// List implements CustodyHandler. Staff may scope by employee via query
// param; employee accounts only ever see their own items.
func (h *custodyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if role := roleFromClaims(r); role == user.RoleEmployee {
		own, err := employeeIDFromClaims(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		employeeID = &own
	} else if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	resp, err := h.custodyService.ListCustodyItems(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateStatus implements CustodyHandler.
func (h *custodyHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req custody.UpdateCustodyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.custodyService.UpdateCustodyStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custody item updated", resp)
}
