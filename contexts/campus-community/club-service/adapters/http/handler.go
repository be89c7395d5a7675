package httpadapter

import (
	"context"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/transport/http"
)

type Handler struct {
	Service application.Service
}

func (h Handler) ListClubsHandler(ctx context.Context) (httptransport.ListClubsResponse, error) {
	clubs, err := h.Service.ListClubs(ctx)
	if err != nil {
		return httptransport.ListClubsResponse{}, err
	}
	dtos := make([]httptransport.ClubDTO, 0, len(clubs))
	for _, club := range clubs {
		dtos = append(dtos, clubDTO(club))
	}
	return httptransport.ListClubsResponse{Clubs: dtos}, nil
}

func (h Handler) GetClubHandler(ctx context.Context, clubID string) (httptransport.ClubDetailResponse, error) {
	detail, err := h.Service.GetClub(ctx, clubID)
	if err != nil {
		return httptransport.ClubDetailResponse{}, err
	}
	members := make([]httptransport.MemberDTO, 0, len(detail.Members))
	for _, member := range detail.Members {
		members = append(members, httptransport.MemberDTO{
			UserID:   member.UserID,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		})
	}
	return httptransport.ClubDetailResponse{
		ClubDTO:     clubDTO(detail.Club),
		MemberCount: detail.MemberCount,
		Members:     members,
	}, nil
}

func (h Handler) CreateClubHandler(ctx context.Context, actorID string, request httptransport.CreateClubRequest) (httptransport.ClubDTO, error) {
	club, err := h.Service.CreateClub(ctx, application.CreateClubInput{
		ActorID:     actorID,
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		return httptransport.ClubDTO{}, err
	}
	return clubDTO(club), nil
}

func (h Handler) UpdateClubHandler(
	ctx context.Context,
	clubID string,
	actorID string,
	actorAdmin bool,
	request httptransport.UpdateClubRequest,
) (httptransport.ClubDTO, error) {
	club, err := h.Service.UpdateClub(ctx, application.UpdateClubInput{
		ClubID:      clubID,
		ActorID:     actorID,
		ActorAdmin:  actorAdmin,
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		return httptransport.ClubDTO{}, err
	}
	return clubDTO(club), nil
}

func (h Handler) DeleteClubHandler(ctx context.Context, clubID string, actorID string, actorAdmin bool) error {
	return h.Service.DeleteClub(ctx, clubID, actorID, actorAdmin)
}

func (h Handler) JoinClubHandler(ctx context.Context, clubID string, actorID string) (httptransport.JoinClubResponse, error) {
	membership, err := h.Service.JoinClub(ctx, clubID, actorID)
	if err != nil {
		return httptransport.JoinClubResponse{}, err
	}
	return httptransport.JoinClubResponse{
		ClubID:   membership.ClubID,
		UserID:   membership.UserID,
		Role:     membership.Role,
		JoinedAt: membership.JoinedAt,
	}, nil
}

func (h Handler) LeaveClubHandler(ctx context.Context, clubID string, actorID string) error {
	return h.Service.LeaveClub(ctx, clubID, actorID)
}

func clubDTO(club entities.Club) httptransport.ClubDTO {
	return httptransport.ClubDTO{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		CreatedBy:   club.CreatedBy,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}
