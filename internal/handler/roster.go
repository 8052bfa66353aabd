package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-roster/internal/service"
)

// RosterHandler serves parsing, committing and reading rosters.
type RosterHandler struct {
	Planner *service.Planner
}

// NewRosterHandler panics if planner is nil.
func NewRosterHandler(planner *service.Planner) *RosterHandler {
	if planner == nil {
		panic("nil planner passed to NewRosterHandler")
	}
	return &RosterHandler{Planner: planner}
}

// rosterReq carries a pasted sign-up post.  Blank text is rejected by the
// planner with 422, not here.
type rosterReq struct {
	Text string `json:"text" validate:"max=200000"`
}

// Preview parses and resolves the posted text without storing it.
func (h *RosterHandler) Preview(c echo.Context) error {
	var req rosterReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	plan, err := h.Planner.Preview(req.Text)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Commit replaces the current roster with the posted one.
func (h *RosterHandler) Commit(c echo.Context) error {
	var req rosterReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	plan, err := h.Planner.Commit(c.Request().Context(), req.Text)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// Current returns the full plan of the committed roster.
func (h *RosterHandler) Current(c echo.Context) error {
	plan, err := h.Planner.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Stats returns the summary counts and the per-location breakdown.
func (h *RosterHandler) Stats(c echo.Context) error {
	plan, err := h.Planner.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"roster_id": plan.RosterID,
		"summary":   plan.Summary,
		"locations": plan.Locations,
		"labels":    plan.Labels,
	})
}

// Groups returns passengers grouped by boarding location.
func (h *RosterHandler) Groups(c echo.Context) error {
	plan, err := h.Planner.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"roster_id": plan.RosterID,
		"groups":    plan.Groups,
		"labels":    plan.Labels,
	})
}

// Chart returns one view per seat plus the location colour legend.
func (h *RosterHandler) Chart(c echo.Context) error {
	plan, err := h.Planner.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"roster_id": plan.RosterID,
		"chart":     plan.Chart,
		"legend":    plan.Legend,
	})
}

// Reset drops the current roster.
func (h *RosterHandler) Reset(c echo.Context) error {
	if err := h.Planner.Reset(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
