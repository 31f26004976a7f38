package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/usecase"
	"fieldops/pkg"
)

// queryParser collects every malformed query parameter before failing.
type queryParser struct {
	c      *gin.Context
	fields map[string]string
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c, fields: map[string]string{}}
}

func (q *queryParser) intParam(name string) int {
	raw := q.c.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		q.fields[name] = "must be a non-negative integer"
		return 0
	}
	return n
}

func (q *queryParser) boolParam(name string) bool {
	raw := q.c.Query(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fields[name] = "must be a boolean"
	}
	return b
}

func (q *queryParser) timeParam(name string) *time.Time {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		q.fields[name] = "must be an RFC 3339 timestamp"
		return nil
	}
	return &t
}

// ok writes a 400 with the collected field errors when there are any.
func (q *queryParser) ok() bool {
	if len(q.fields) == 0 {
		return true
	}
	writeAppError(q.c, pkg.NewDomainErrorSimple(string(usecase.KindValidation), "Invalid query parameters", http.StatusBadRequest).WithDetails(q.fields))
	return false
}
