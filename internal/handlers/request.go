package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/timezone"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

// bindJSON decodes and validates the body, answering 400/413 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return false
	}
	return true
}

// pageFrom reads page/limit leniently; garbage falls back to defaults.
func pageFrom(c *gin.Context) domain.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return domain.NewPage(page, limit)
}

// ======================================================
// DATES
// ======================================================

// dateParser turns the validated date strings of a request into times.
// Collected failures are reported together.
type dateParser struct {
	loc  *time.Location
	errs validators.Errors
}

func newDateParser(loc *time.Location) *dateParser {
	return &dateParser{loc: loc}
}

func (p *dateParser) parse(field, value string) time.Time {
	t, err := timezone.ParseDate(value, p.loc)
	if err != nil {
		p.errs.Add(field, field+" must be a valid date")
	}
	return t
}

func (p *dateParser) parseOptional(field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t := p.parse(field, *value)
	return &t
}

func (p *dateParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return httperr.Validation(httperr.MessageValidation, p.errs)
}

// splitList accepts "a,b" as well as repeated query keys.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// trimAll trims every entry and drops empty ones. A nil input stays nil
// so partial updates can tell "absent" from "cleared".
func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
