package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bridgegap/bridgegap/internal/handlers/dto"
	"github.com/bridgegap/bridgegap/internal/services"
)

type InterestHandler struct {
	store services.Store
}

func NewInterestHandler(store services.Store) *InterestHandler {
	return &InterestHandler{store: store}
}

// List returns the seeded catalog ordered by id.
func (h *InterestHandler) List(c *gin.Context) {
	interests, err := h.store.ListInterests()
	if err != nil {
		log.Printf("Error fetching interests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	responses := make([]dto.InterestResponse, len(interests))
	for i, interest := range interests {
		responses[i] = dto.InterestResponse{ID: interest.ID, Name: interest.Name}
	}

	c.JSON(http.StatusOK, responses)
}
