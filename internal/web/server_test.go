package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/jorfcheck/internal/model"
	"github.com/ppiankov/jorfcheck/internal/pipeline"
)

type stubVerifier struct {
	result *model.Verification
	calls  []pipeline.Request
}

func (s *stubVerifier) Verify(_ context.Context, surname, givenName string, year int) *model.Verification {
	s.calls = append(s.calls, pipeline.Request{Surname: surname, GivenName: givenName, Year: year})
	return s.result
}

func found() *model.Verification {
	return &model.Verification{
		MatchResult: model.MatchResult{Found: true, Line: "M. DUPONT JEAN NE LE 01/01/1990", URL: "https://jo.test/a.pdf"},
		Year:        2023,
		Outcome:     model.OutcomeFound,
	}
}

func newTestServer(v Verifier) *Server {
	return NewServer(v, model.DefaultConfig().Gazette, nil)
}

func postForm(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestForm_Get(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&stubVerifier{}).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Vérification de naturalisation (JO)")
	for _, year := range []string{"2025", "2024", "2023", "2022", "2021", "2020"} {
		assert.Contains(t, body, `<option value="`+year+`"`)
	}
}

func TestForm_MissingNames(t *testing.T) {
	v := &stubVerifier{result: found()}
	rec := postForm(t, newTestServer(v).Handler(), url.Values{"surname": {"Dupont"}, "given_name": {"  "}, "year": {"2023"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Veuillez entrer un nom et un prénom.")
	assert.Empty(t, v.calls)
}

func TestForm_Found(t *testing.T) {
	v := &stubVerifier{result: found()}
	rec := postForm(t, newTestServer(v).Handler(), url.Values{"surname": {" Dupont "}, "given_name": {"Jean"}, "year": {"2023"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Personne trouvée dans un décret de naturalisation")
	assert.Contains(t, body, "M. DUPONT JEAN NE LE 01/01/1990")
	assert.Contains(t, body, `href="https://jo.test/a.pdf"`)
	assert.Contains(t, body, `<option value="2023" selected>`)
	require.Len(t, v.calls, 1)
	assert.Equal(t, pipeline.Request{Surname: "Dupont", GivenName: "Jean", Year: 2023}, v.calls[0])
}

func TestForm_NotFound(t *testing.T) {
	v := &stubVerifier{result: &model.Verification{Outcome: model.OutcomeNotFound}}
	rec := postForm(t, newTestServer(v).Handler(), url.Values{"surname": {"Dupont"}, "given_name": {"Jean"}, "year": {"2023"}})

	assert.Contains(t, rec.Body.String(), "Personne non trouvée dans les documents analysés.")
}

func TestForm_YearNotAllowed(t *testing.T) {
	v := &stubVerifier{result: found()}
	rec := postForm(t, newTestServer(v).Handler(), url.Values{"surname": {"Dupont"}, "given_name": {"Jean"}, "year": {"1999"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, v.calls)
}

func TestAPIVerify(t *testing.T) {
	v := &stubVerifier{result: found()}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verify?surname=Dupont&given_name=Jean&year=2023", nil)
	newTestServer(v).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, true, decoded["found"])
	assert.Equal(t, "https://jo.test/a.pdf", decoded["url"])
}

func TestAPIVerify_BadRequest(t *testing.T) {
	tests := []string{
		"/api/verify?surname=Dupont&given_name=Jean",
		"/api/verify?surname=Dupont&year=2023",
		"/api/verify?surname=Dupont&given_name=Jean&year=2030",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer(&stubVerifier{}).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&stubVerifier{}).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
