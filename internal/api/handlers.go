package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/rooms"
)

type roomResponse struct {
	rooms.Info
	Index      int               `json:"index"`
	Creators   []rooms.Creator   `json:"creators,omitempty"`
	Characters []rooms.Character `json:"characters,omitempty"`
	Links      []rooms.Link      `json:"links,omitempty"`
}

func roomDetail(r rooms.Room) roomResponse {
	resp := roomResponse{Info: r.Info(), Index: rooms.Index(r), Creators: rooms.Creators(r)}
	switch r {
	case rooms.InspirationGarden:
		resp.Characters = rooms.Characters()
	case rooms.ThankYou:
		resp.Links = rooms.ShareLinks()
	}
	return resp
}

func (s *Server) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rooms.AllInfo())
}

func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := rooms.Parse(chi.URLParam(r, "room"))
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, roomDetail(room))
}

func (s *Server) listQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, quiz.Questions())
}

func (s *Server) listTraits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, quiz.Profiles())
}

type scoreRequest struct {
	Answers []int `json:"answers"`
}

type traitScore struct {
	quiz.Profile
	Percent int `json:"percent"`
	Raw     int `json:"raw"`
}

type scoreResponse struct {
	Primary   quiz.Profile `json:"primary"`
	Secondary quiz.Profile `json:"secondary"`
	Scores    []traitScore `json:"scores"`
}

func (s *Server) score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if len(req.Answers) != quiz.QuestionCount {
		respondError(w, http.StatusBadRequest, fmt.Errorf("expected %d answers, got %d", quiz.QuestionCount, len(req.Answers)))
		return
	}
	res, err := quiz.Score(req.Answers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, quiz.ErrInvalidOption) || errors.Is(err, quiz.ErrTooManyAnswers) {
			status = http.StatusBadRequest
		}
		respondError(w, status, err)
		return
	}

	resp := scoreResponse{Primary: res.Primary.Profile(), Secondary: res.Secondary.Profile()}
	for _, t := range res.Ranked() {
		resp.Scores = append(resp.Scores, traitScore{Profile: t.Profile(), Percent: res.Scores[t], Raw: res.Raw[t]})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) traitStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		respondError(w, http.StatusServiceUnavailable, errors.New("stats unavailable"))
		return
	}
	counts, err := s.stats.TraitDistribution(r.Context())
	if err != nil {
		s.logger.Error("trait distribution", "error", err)
		respondError(w, http.StatusInternalServerError, errors.New("query failed"))
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) roomStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		respondError(w, http.StatusServiceUnavailable, errors.New("stats unavailable"))
		return
	}
	counts, err := s.stats.RoomVisitCounts(r.Context())
	if err != nil {
		s.logger.Error("room visit counts", "error", err)
		respondError(w, http.StatusInternalServerError, errors.New("query failed"))
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
