package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/studentboard/internal/common"
	"github.com/dmitrijs2005/studentboard/internal/server/dataset"
)

const loginFailedMessage = "Invalid username or password"

type errorResponse struct {
	Error string `json:"error"`
}

// dataResponse is the /api/data payload.
type dataResponse struct {
	Total      int              `json:"total"`
	Difficulty int              `json:"difficulty"`
	Psych      int              `json:"psych"`
	Data       []dataset.Record `json:"data"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

type loginView struct {
	Error string
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *HTTPServer) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login.html", loginView{})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "login.html", loginView{Error: loginFailedMessage})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !s.gate.Login(username, password) {
		s.logger.Warn(r.Context(), "Login failed", "username", username)
		s.render(w, r, http.StatusOK, "login.html", loginView{Error: loginFailedMessage})
		return
	}

	if err := s.gate.Issue(w); err != nil {
		s.logger.Error(r.Context(), "issuing session", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "username", username)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.gate.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *HTTPServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "dashboard.html", nil)
}

func (s *HTTPServer) handleData(w http.ResponseWriter, r *http.Request) {
	n, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrInvalidPage.Error()})
		return
	}

	page, err := s.dashboard.Page(n)
	if err != nil {
		if errors.Is(err, common.ErrInvalidPage) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrInvalidPage.Error()})
			return
		}
		s.logger.Error(r.Context(), "loading page", "page", n, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
		return
	}

	if claims, ok := sessionFromContext(r.Context()); ok {
		s.logger.Debug(r.Context(), "page served", "page", n, "records", len(page.Records), "session", claims.ID)
	}

	sum := s.dashboard.Summary()
	writeJSON(w, http.StatusOK, dataResponse{
		Total:      sum.Total,
		Difficulty: sum.Difficulty,
		Psych:      sum.Psych,
		Data:       page.Records,
		Page:       page.Number,
		TotalPages: page.TotalPages,
	})
}

// parsePage reads the page query value; absent means 1.
func parsePage(v string) (int, error) {
	if v == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, common.ErrInvalidPage
	}
	if n < 1 {
		return 0, common.ErrInvalidPage
	}
	return n, nil
}

func (s *HTTPServer) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error(r.Context(), "template execution", "template", name, "error", err.Error())
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
