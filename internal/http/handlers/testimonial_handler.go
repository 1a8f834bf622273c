// README: Public testimonial listing.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/testimonial"
)

type TestimonialHandler struct {
	testimonials *testimonial.Store
}

func NewTestimonialHandler(store *testimonial.Store) *TestimonialHandler {
	return &TestimonialHandler{testimonials: store}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	out, err := h.testimonials.ListPublished(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"testimonials": out})
}
