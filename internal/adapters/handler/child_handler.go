package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/middleware"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type ChildHandler struct {
	childService ports.ChildService
}

func NewChildHandler(children ports.ChildService) *ChildHandler {
	return &ChildHandler{childService: children}
}

type AddChildRequest struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	ImageURL string   `json:"image_url,omitempty"`
	About    string   `json:"about,omitempty"`
	Hobbies  []string `json:"hobbies,omitempty"`
}

func (h *ChildHandler) AddChild(w http.ResponseWriter, r *http.Request) {
	var req AddChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	child := domain.Child{
		Name:     req.Name,
		Age:      req.Age,
		ImageURL: req.ImageURL,
		About:    req.About,
	}

	orphanageID := middleware.SubjectID(r.Context())
	if err := h.childService.AddChild(r.Context(), orphanageID, child, req.Hobbies); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Child added successfully with hobbies!"})
}

func (h *ChildHandler) GetChildren(w http.ResponseWriter, r *http.Request) {
	orphanageID := middleware.SubjectID(r.Context())
	children, err := h.childService.ListMine(r.Context(), orphanageID)
	if err != nil {
		respondError(w, err)
		return
	}
	if children == nil {
		children = []domain.Child{}
	}
	respondJSON(w, http.StatusOK, children)
}

// GetChildByID is the public child detail. It intentionally does not
// check the owning orphanage's approval status; only the listing
// filters on approval.
func (h *ChildHandler) GetChildByID(w http.ResponseWriter, r *http.Request) {
	child, err := h.childService.GetChild(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, child)
}

func (h *ChildHandler) GetHobbies(w http.ResponseWriter, r *http.Request) {
	hobbies, err := h.childService.ListHobbies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if hobbies == nil {
		hobbies = []domain.Hobby{}
	}
	respondJSON(w, http.StatusOK, hobbies)
}
