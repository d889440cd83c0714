package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rotaworks/counter-roster-api/pkg/models"
	"github.com/rotaworks/counter-roster-api/pkg/roster"
)

// PracticalMinimum is the smallest roster that fully staffs every
// slot. The pipeline still works below it, with empty counters.
const PracticalMinimum = 240

// ValidateInput handles the JSON-based validation request
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if input.TotalVolunteers < 1 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "total_volunteers must be at least 1",
		})
		return
	}

	date, err := time.Parse(DateLayout, input.RosterDate)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "roster_date must be formatted as YYYY-MM-DD",
		})
		return
	}

	var warnings []string
	if input.TotalVolunteers < PracticalMinimum {
		warnings = append(warnings, "rosters under 240 volunteers leave counters empty in peak slots")
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"warnings": warnings,
		"stats": gin.H{
			"total_volunteers": input.TotalVolunteers,
			"rotation_index":   roster.RotationIndex(date),
			"counters":         roster.Counters,
			"time_slots":       len(roster.DefaultPattern),
		},
	})
}
