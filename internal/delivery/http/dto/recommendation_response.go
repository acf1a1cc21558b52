package dto

import (
	"github.com/google/uuid"

	"hackmate/internal/usecase"
)

type TeamRecommendationResponse struct {
	Team   TeamSummaryResponse `json:"team"`
	Result MatchResultResponse `json:"result"`
}

func NewTeamRecommendationListResponse(recs []usecase.TeamRecommendation) []TeamRecommendationResponse {
	out := make([]TeamRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, TeamRecommendationResponse{
			Team:   NewTeamSummaryResponse(r.Team),
			Result: NewMatchResultResponse(r.Result),
		})
	}
	return out
}

type CandidateSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	Skills          []string  `json:"skills"`
	ExperienceLevel string    `json:"experience_level"`
	Timezone        string    `json:"timezone"`
}

type UserRecommendationResponse struct {
	User   CandidateSummaryResponse `json:"user"`
	Result MatchResultResponse      `json:"result"`
}

func NewUserRecommendationListResponse(recs []usecase.UserRecommendation) []UserRecommendationResponse {
	out := make([]UserRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, UserRecommendationResponse{
			User: CandidateSummaryResponse{
				ID:              r.User.ID,
				DisplayName:     r.User.DisplayName,
				Skills:          emptyIfNil(r.User.Skills),
				ExperienceLevel: r.User.ExperienceLevel,
				Timezone:        r.User.Timezone,
			},
			Result: NewMatchResultResponse(r.Result),
		})
	}
	return out
}
