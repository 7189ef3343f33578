package server

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andyli/portfolio/internal/content"
	"github.com/andyli/portfolio/internal/ui"
)

func (h *handlers) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Projects())
}

func (h *handlers) getProject(c *gin.Context) {
	p, ok := h.catalog.Project(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) listExperiences(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Experiences())
}

// listSkills returns every skill, or only one category with ?category=.
func (h *handlers) listSkills(c *gin.Context) {
	skills := h.catalog.Skills()
	raw := c.Query("category")
	if raw == "" {
		c.JSON(http.StatusOK, skills)
		return
	}
	category, ok := content.ParseSkillCategory(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "unknown skill category",
			"categories": content.SkillCategories(),
		})
		return
	}
	c.JSON(http.StatusOK, content.FilterSkills(skills, category))
}

type pointerQuery struct {
	ui.Bounds
	X     float64 `form:"x"`
	Y     float64 `form:"y"`
	Leave bool    `form:"leave"`
}

func (q pointerQuery) finite() bool {
	for _, v := range []float64{q.X, q.Y, q.Left, q.Top, q.Width, q.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type pointerResponse struct {
	Offset   ui.Offset   `json:"offset"`
	Rotation ui.Rotation `json:"rotation"`
	Glow     ui.Glow     `json:"glow"`
	MaxTilt  float64     `json:"maxTilt"`
}

// pointer computes the tilt and glow for a pointer over a card. leave=true
// returns the neutral state.
func (h *handlers) pointer(c *gin.Context) {
	var q pointerQuery
	if err := c.ShouldBindQuery(&q); err != nil || !q.finite() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pointer parameters"})
		return
	}

	tilt := ui.Tilt{}.Move(q.X, q.Y, q.Bounds)
	glow := ui.GlowAt(q.X, q.Y, q.Bounds)
	if q.Leave {
		tilt = tilt.Leave()
		glow = glow.Leave()
	}

	c.JSON(http.StatusOK, pointerResponse{
		Offset:   tilt.Offset(),
		Rotation: tilt.Rotation(),
		Glow:     glow,
		MaxTilt:  ui.MaxTiltDegrees,
	})
}
