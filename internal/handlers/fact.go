package handlers

import (
	"net/http"
	"strconv"

	"factboard/internal/models"
	"factboard/internal/store"

	"github.com/gin-gonic/gin"
)

type FactHandler struct {
	store *store.FactStore
}

func NewFactHandler(s *store.FactStore) *FactHandler {
	return &FactHandler{store: s}
}

// List returns every fact.
func (h *FactHandler) List(c *gin.Context) {
	facts, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, facts)
}

// Get serves both GET /facts/{id} and GET /facts/{category}: a numeric
// key addresses a single fact, anything else is a category filter. An
// unknown category is an empty list, an unknown id is a 404.
func (h *FactHandler) Get(c *gin.Context) {
	key := c.Param("key")

	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		fact, err := h.store.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, fact)
		return
	}

	facts, err := h.store.ListByCategory(c.Request.Context(), key)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, facts)
}

// Create validates the submitted input and stores a new fact with
// zeroed counters. The created record is echoed back so clients can
// pick up the assigned id without a re-fetch.
func (h *FactHandler) Create(c *gin.Context) {
	var input models.FactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid fact: "+err.Error())
		return
	}

	fact, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fact)
}

// Vote bumps one counter on one fact. The kind comes from the last path
// segment ("voteInteresting", "voteMindblowing" or "voteFalse"); an
// unknown segment or id is a 404. Voting never creates a record.
func (h *FactHandler) Vote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("key"), 10, 32)
	if err != nil {
		JSONError(c, http.StatusNotFound, "fact not found")
		return
	}

	kind, ok := models.ParseVoteKind(c.Param("vote"))
	if !ok {
		JSONError(c, http.StatusNotFound, "unknown vote kind")
		return
	}

	fact, err := h.store.IncrementVote(c.Request.Context(), uint(id), kind)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fact)
}
