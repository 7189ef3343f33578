package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andyli/portfolio/internal/asset"
	"github.com/andyli/portfolio/internal/content"
	"github.com/andyli/portfolio/internal/ui"
)

// cardTechTags is how many tech tags a gallery card shows before "+N".
const cardTechTags = 3

type handlers struct {
	catalog   *content.Catalog
	animation *asset.Animation
	tracking  bool
	retention time.Duration
	now       func() time.Time
}

func (h *handlers) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

type experienceItem struct {
	content.Experience
	Expanded bool
	Left     bool
}

type experienceView struct {
	Items  []experienceItem
	Active string
}

type projectCard struct {
	content.Project
	Selected bool
	Preview  []string
	Hidden   int
	Index    int
}

type galleryView struct {
	Cards  []projectCard
	Active string
}

type modalView struct {
	Open    bool
	Project content.Project
}

type copyView struct {
	Email       string
	Copied      bool
	Since       int64
	RemainingMs int64
}

type pageData struct {
	Profile        content.Profile
	Experience     experienceView
	Gallery        galleryView
	Skills         []content.SkillGroup
	Modal          modalView
	Copy           copyView
	AnimationReady bool
	MaxTilt        float64
	Year           int
}

func (h *handlers) experienceSelection() ui.Selection[string] {
	return ui.NewSelection(h.catalog.HasExperience)
}

func (h *handlers) gallerySelection() ui.Selection[string] {
	return ui.NewSelection(h.catalog.HasProject)
}

// selectionFromQuery restores ?active= and applies ?op=&id=.
func selectionFromQuery(c *gin.Context, sel ui.Selection[string]) ui.Selection[string] {
	if active := c.Query("active"); active != "" {
		sel = sel.Activate(active)
	}
	return ui.ApplySelection(sel, ui.SelectionOp(c.Query("op")), c.Query("id"))
}

func (h *handlers) timeline(sel ui.Selection[string]) experienceView {
	active, _ := sel.Active()
	exps := h.catalog.Experiences()
	items := make([]experienceItem, len(exps))
	for i, e := range exps {
		items[i] = experienceItem{
			Experience: e,
			Expanded:   sel.IsActive(e.ID),
			Left:       i%2 == 0,
		}
	}
	return experienceView{Items: items, Active: active}
}

func (h *handlers) gallery(sel ui.Selection[string]) galleryView {
	active, _ := sel.Active()
	projects := h.catalog.Projects()
	cards := make([]projectCard, len(projects))
	for i, p := range projects {
		preview, hidden := p.TechPreview(cardTechTags)
		cards[i] = projectCard{
			Project:  p,
			Selected: sel.IsActive(p.ID),
			Preview:  preview,
			Hidden:   hidden,
			Index:    i,
		}
	}
	return galleryView{Cards: cards, Active: active}
}

func modalViewOf(m ui.Modal[content.Project]) modalView {
	p, open := m.Payload()
	return modalView{Open: open, Project: p}
}

func (h *handlers) copyViewOf(ind ui.CopyIndicator) copyView {
	now := h.clock()
	v := copyView{
		Email:  h.catalog.Profile().Contact.Email,
		Copied: ind.Copied(now),
	}
	if v.Copied {
		v.Since = ind.TriggeredAt().UnixMilli()
		v.RemainingMs = ind.Remaining(now).Milliseconds()
	}
	return v
}

// index renders the full page with every controller in its initial state.
func (h *handlers) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Profile:        h.catalog.Profile(),
		Experience:     h.timeline(h.experienceSelection()),
		Gallery:        h.gallery(h.gallerySelection()),
		Skills:         content.GroupSkills(h.catalog.Skills()),
		Modal:          modalViewOf(ui.Modal[content.Project]{}),
		Copy:           h.copyViewOf(ui.CopyIndicator{}),
		AnimationReady: h.animation.Ready(),
		MaxTilt:        ui.MaxTiltDegrees,
		Year:           h.clock().Year(),
	})
}

func (h *handlers) experienceFragment(c *gin.Context) {
	sel := selectionFromQuery(c, h.experienceSelection())
	c.HTML(http.StatusOK, "experience", h.timeline(sel))
}

func (h *handlers) galleryFragment(c *gin.Context) {
	sel := selectionFromQuery(c, h.gallerySelection())
	c.HTML(http.StatusOK, "gallery", h.gallery(sel))
}

// openModal opens the detail overlay. Unknown projects render it closed.
func (h *handlers) openModal(c *gin.Context) {
	var m ui.Modal[content.Project]
	if p, ok := h.catalog.Project(c.Param("id")); ok {
		m = m.Open(p)
	}
	c.HTML(http.StatusOK, "modal", modalViewOf(m))
}

func (h *handlers) closeModal(c *gin.Context) {
	c.HTML(http.StatusOK, "modal", modalViewOf(ui.Modal[content.Project]{}.Close()))
}

// copyEmail flips the chip to "copied". The clipboard write happens in the
// browser; a newer click replaces the chip and so restarts the delay.
func (h *handlers) copyEmail(c *gin.Context) {
	ind := ui.CopyIndicator{}.Trigger(h.clock())
	c.HTML(http.StatusOK, "copy-chip", h.copyViewOf(ind))
}

// copyIndicator re-evaluates a chip triggered at ?since= (unix ms).
func (h *handlers) copyIndicator(c *gin.Context) {
	var ind ui.CopyIndicator
	if since, err := strconv.ParseInt(c.Query("since"), 10, 64); err == nil && since > 0 {
		ind = ui.CopyIndicatorSince(time.UnixMilli(since))
	}
	c.HTML(http.StatusOK, "copy-chip", h.copyViewOf(ind))
}

// privacyPolicy explains what visitor tracking stores and for how long.
func (h *handlers) privacyPolicy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"Name":          h.catalog.Profile().Contact.Name,
		"Email":         h.catalog.Profile().Contact.Email,
		"Tracking":      h.tracking,
		"RetentionDays": int(h.retention.Hours() / 24),
	})
}

// animationAsset serves the fetched descriptor; 404 keeps the page on its
// static fallback.
func (h *handlers) animationAsset(c *gin.Context) {
	data, ok := h.animation.Data()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "animation not available"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/json", data)
}
