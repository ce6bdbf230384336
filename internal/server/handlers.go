package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/presidential-roast/internal/db"
	"github.com/jonathan/presidential-roast/internal/fetch"
	"github.com/jonathan/presidential-roast/internal/formatting"
	"github.com/jonathan/presidential-roast/internal/types"
)

// maxRequestBody caps request bodies well above the content limit.
const maxRequestBody = 1 << 20

// maxLeaderboardSize caps the leaderboard limit query parameter.
const maxLeaderboardSize = 100

// roastRequest is the POST /roast body. Exactly one of content and
// contentUrl should be set; content wins when both are.
type roastRequest struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	ContentURL string `json:"contentUrl"`
}

// roastResponse is the canonical roast payload.
type roastResponse struct {
	ID               *uuid.UUID `json:"id,omitempty"`
	Roast            string     `json:"roast"`
	Score            int        `json:"score"`
	IsExecutiveOrder bool       `json:"isExecutiveOrder"`
	Analysis         string     `json:"analysis"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	RewardTokens     int        `json:"rewardTokens"`
	ShareToken       string     `json:"shareToken,omitempty"`
}

// rewardsRequest is the POST /rewards body.
type rewardsRequest struct {
	WalletAddress string `json:"walletAddress"`
	Roast         string `json:"roast"`
	Score         int    `json:"score"`
}

// handleRoast runs a submission through the full pipeline.
func (s *Server) handleRoast(w http.ResponseWriter, r *http.Request) {
	var req roastRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	content := req.Content
	if content == "" && req.ContentURL != "" {
		text, err := fetch.SubmissionText(r.Context(), req.ContentURL, nil)
		if err != nil {
			log.Printf("[server] content fetch failed: %v", err)
			cerr := &ErrContentUnavailable{URL: req.ContentURL}
			s.errorResponse(w, HTTPStatus(cerr), cerr.Error())
			return
		}
		content = text
	}

	sub := types.Submission{
		Category: types.Category(req.Type),
		RawText:  content,
	}

	result, err := s.pipeline.Run(r.Context(), sub)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[server] roast failed: %v", err)
			s.errorResponse(w, status, "roast generation failed")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	resp := roastResponse{
		Roast:            result.Text,
		Score:            result.Score,
		IsExecutiveOrder: result.IsExecutiveOrder,
		Analysis:         result.Analysis,
		ImageURL:         result.ImageURL,
		RewardTokens:     result.RewardTokens,
	}

	// Archive and share failures degrade the response, never fail it.
	if s.archive != nil {
		if id, err := s.archive.SaveRoast(r.Context(), sub, result); err != nil {
			log.Printf("[server] failed to archive roast: %v", err)
		} else {
			resp.ID = &id
		}
	}
	if token, err := s.shareTokens.Generate(sub.Category, result); err != nil {
		log.Printf("[server] failed to sign share token: %v", err)
	} else {
		resp.ShareToken = token
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRewards grants a reward for a scored roast.
func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	var req rewardsRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.WalletAddress) == "" {
		s.errorResponse(w, http.StatusBadRequest, "walletAddress is required")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		s.errorResponse(w, http.StatusBadRequest, "score must be between 0 and 100")
		return
	}

	tokens := formatting.RewardTokens(req.Score)
	receipt := s.rewards.GrantReward(r.Context(), req.WalletAddress, req.Roast, tokens)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"walletAddress": req.WalletAddress,
		"rewardTokens":  tokens,
		"transfer":      receipt.Transfer,
		"mint":          receipt.Mint,
	})
}

// handleBalance reports the ledger balance for an address.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if strings.TrimSpace(address) == "" {
		s.errorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.rewards.Balance(r.Context(), address))
}

// handleShare resolves a share token back to its roast payload.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	claims, err := s.shareTokens.Resolve(r.PathValue("token"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, roastResponse{
		Roast:            claims.Roast,
		Score:            claims.Score,
		IsExecutiveOrder: claims.IsExecutiveOrder,
		Analysis:         formatting.Analysis(claims.Score),
		ImageURL:         claims.ImageURL,
		RewardTokens:     formatting.RewardTokens(claims.Score),
	})
}

// handleGetRoast loads one archived roast.
func (s *Server) handleGetRoast(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.errorResponse(w, HTTPStatus(ErrArchiveDisabled), ErrArchiveDisabled.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid roast id")
		return
	}

	rec, err := s.archive.GetRoast(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[server] failed to load roast %s: %v", id, err)
			s.errorResponse(w, status, "failed to load roast")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleLeaderboard returns the highest-scoring archived roasts.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.errorResponse(w, HTTPStatus(ErrArchiveDisabled), ErrArchiveDisabled.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLeaderboardSize {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := s.archive.TopRoasts(r.Context(), limit)
	if err != nil {
		log.Printf("[server] failed to load leaderboard: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	if records == nil {
		records = []db.RoastRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"roasts": records})
}
