package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cinescope/apiserver/internal/services"
	"github.com/cinescope/apiserver/types"
)

// AdminHandler provides admin-only user management endpoints.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler constructs an AdminHandler with the provided dependencies.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminRouter registers admin routes on the given router. Every route is
// gated on an authenticated ADMIN user.
func AdminRouter(r chi.Router, adminService *services.AdminService, authService *services.AuthService) {
	handler := NewAdminHandler(adminService)

	r.Use(RequireAuth(authService), RequireRole(authService, types.RoleAdmin))
	r.Get("/users", handler.ListUsers)
	r.Put("/users/{userID}/role", handler.UpdateUserRole)
}

// ListUsers returns all users, newest first.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserListResponse{Users: users})
}

// UpdateUserRole sets the target user's role.
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.adminService.UpdateUserRole(r.Context(), userID, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserListResponse is the admin user listing payload.
type UserListResponse struct {
	Users []types.User `json:"users"`
}
