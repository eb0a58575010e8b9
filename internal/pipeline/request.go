package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/jorfcheck/internal/model"
)

var (
	// ErrMissingNames is returned when the surname or given name is blank
	ErrMissingNames = errors.New("surname and given name are required")

	// ErrYearNotAllowed is returned for a publication year outside the configured set
	ErrYearNotAllowed = errors.New("publication year not allowed")
)

// Request is a verification request as typed by a user
type Request struct {
	Surname   string `json:"surname"`
	GivenName string `json:"given_name"`
	Year      int    `json:"year"`
}

// Clean trims the names and checks them against cfg
func (r Request) Clean(cfg model.GazetteConfig) (Request, error) {
	r.Surname = strings.TrimSpace(r.Surname)
	r.GivenName = strings.TrimSpace(r.GivenName)

	if r.Surname == "" || r.GivenName == "" {
		return r, ErrMissingNames
	}
	if !cfg.YearAllowed(r.Year) {
		return r, fmt.Errorf("%w: %d (allowed: %v)", ErrYearNotAllowed, r.Year, cfg.Years)
	}
	return r, nil
}
