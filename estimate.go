package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/energy-estimator-go-api/internal/energy"
)

// coerceProfile turns raw form text into an InputProfile. Bad numbers become
// 0 and unknown enums fall back to the form defaults; each substitution, and
// each negative number, is reported as a warning rather than rejected.
func (r estimateRequest) coerceProfile() (energy.InputProfile, []string) {
	warnings := []string{}

	number := func(field string, text formText) float64 {
		v, ok := energy.ParseNumber(string(text))
		if !ok && strings.TrimSpace(string(text)) != "" {
			warnings = append(warnings, field+" was not a number and was treated as 0")
		}
		if v < 0 {
			warnings = append(warnings, field+" is negative")
		}
		return v
	}

	p := energy.InputProfile{
		AgeYears: number("age", r.Age),
		WeightKg: number("weight", r.Weight),
		HeightCm: number("height", r.Height),
	}

	var ok bool
	if p.Sex, ok = energy.ParseSex(string(r.Sex)); !ok && r.Sex != "" {
		warnings = append(warnings, fmt.Sprintf("unknown sex %q, using %s", r.Sex, p.Sex))
	}
	if p.ActivityLevel, ok = energy.ParseActivityLevel(string(r.ActivityLevel)); !ok && r.ActivityLevel != "" {
		warnings = append(warnings, fmt.Sprintf("unknown activity_level %q, using %s", r.ActivityLevel, p.ActivityLevel))
	}
	if p.GoalLevel, ok = energy.ParseGoalLevel(string(r.GoalLevel)); !ok && r.GoalLevel != "" {
		warnings = append(warnings, fmt.Sprintf("unknown goal_level %q, using %s", r.GoalLevel, p.GoalLevel))
	}

	return p, warnings
}

// respondEstimate runs the estimator on the bound form and writes the result.
func (h *Handler) respondEstimate(c *gin.Context, req estimateRequest) {
	profile, warnings := req.coerceProfile()
	result := energy.Estimate(profile)

	// Protein and fat alone can exceed the target; the value is still reported.
	if result.Macros != nil && result.Macros.Carbs < 0 {
		warnings = append(warnings, "carbohydrate target is negative")
	}
	if result.Saturated() {
		warnings = append(warnings, "inputs are too large; results are capped")
	}

	h.metrics.observe(profile, len(warnings))
	if len(warnings) > 0 {
		log.Printf("[estimate] request %s: %d warning(s): %s",
			c.GetString("request_id"), len(warnings), strings.Join(warnings, "; "))
	}

	c.JSON(http.StatusOK, estimateResponse{
		EnergyResult: result,
		GoalLabel:    energy.GoalLabel(result.GoalLevel),
		Profile:      profile,
		Warnings:     warnings,
	})
}

// postEstimate handles POST /api/estimate with a JSON or form-encoded body.
func (h *Handler) postEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBind(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respondEstimate(c, req)
}

// getEstimate handles GET /api/estimate?sex=&age=&weight=&height=&activity_level=&goal_level=.
// Missing parameters behave like empty form fields.
func (h *Handler) getEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	h.respondEstimate(c, req)
}

// getOptions returns the selectable values for the form, in display order.
// GET /api/options.
func (h *Handler) getOptions(c *gin.Context) {
	resp := optionsResponse{
		Defaults: map[string]string{
			"sex":            string(energy.DefaultSex),
			"activity_level": string(energy.DefaultActivityLevel),
			"goal_level":     string(energy.DefaultGoalLevel),
		},
	}
	for _, s := range energy.Sexes {
		resp.Sexes = append(resp.Sexes, option{Value: string(s), Label: energy.SexLabel(s)})
	}
	for _, a := range energy.ActivityLevels {
		m, _ := energy.ActivityMultiplier(a)
		resp.ActivityLevels = append(resp.ActivityLevels,
			option{Value: string(a), Label: energy.ActivityLabel(a), Multiplier: &m})
	}
	for _, g := range energy.GoalLevels {
		m, _ := energy.GoalMultiplier(g)
		resp.GoalLevels = append(resp.GoalLevels,
			option{Value: string(g), Label: energy.GoalOptionLabel(g), Multiplier: &m})
	}

	c.JSON(http.StatusOK, resp)
}
