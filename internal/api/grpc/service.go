package grpc

import (
	"context"

	"github.com/kazup01/frontend/internal/app"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// AppService can return collective members and their stats.
type AppService interface {
	FetchMembers(ctx context.Context, r app.MembersRequest) ([]app.Member, error)
	FetchMembersStats(ctx context.Context, r app.MembersRequest) (*app.MembersStats, error)
}

// Service implements MembersServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ MembersServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// FetchMembers calls service and returns reply with "members" list.
func (s *Service) FetchMembers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	members, err := s.appService.FetchMembers(ctx, requestFromStruct(in))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.FetchMembers"))
	}

	list := make([]interface{}, 0, len(members))
	for _, m := range members {
		list = append(list, memberToMap(m))
	}

	reply, err := structpb.NewStruct(map[string]interface{}{
		"members": list,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "building reply: %v", err)
	}
	return reply, nil
}

// FetchMembersStats calls service and returns stats reply.
func (s *Service) FetchMembersStats(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	stats, err := s.appService.FetchMembersStats(ctx, requestFromStruct(in))
	if err != nil {
		return nil, statusError(errors.Wrap(err, "service.FetchMembersStats"))
	}

	fields := map[string]interface{}{
		"name":  stats.Name,
		"count": stats.Count,
	}
	if stats.Slug != "" {
		fields["slug"] = stats.Slug
	}

	reply, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "building reply: %v", err)
	}
	return reply, nil
}

// NewRequestStruct builds request message for collectivepage.Members methods.
func NewRequestStruct(r app.MembersRequest) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"collectiveSlug": structpb.NewStringValue(r.CollectiveSlug),
	}
	if r.BackerType != "" {
		fields["backerType"] = structpb.NewStringValue(r.BackerType)
	}
	if r.TierSlug != "" {
		fields["tierSlug"] = structpb.NewStringValue(r.TierSlug)
	}
	if r.Contributors {
		fields["contributors"] = structpb.NewBoolValue(true)
	}

	return &structpb.Struct{Fields: fields}
}

func requestFromStruct(in *structpb.Struct) app.MembersRequest {
	f := in.GetFields()
	r := app.NewMembersRequest(
		f["collectiveSlug"].GetStringValue(),
		f["backerType"].GetStringValue(),
		f["tierSlug"].GetStringValue(),
	)
	if f["contributors"].GetBoolValue() {
		r.Contributors = true
	}

	return r
}

func memberToMap(m app.Member) map[string]interface{} {
	v := map[string]interface{}{
		"slug": m.Slug,
		"type": m.Type,
	}
	if m.Image != "" {
		v["image"] = m.Image
	}
	if m.Website != "" {
		v["website"] = m.Website
	}
	if m.TwitterHandle != "" {
		v["twitterHandle"] = m.TwitterHandle
	}
	if len(m.Stats) > 0 {
		stats := make(map[string]interface{}, len(m.Stats))
		for k, n := range m.Stats {
			stats[k] = n
		}
		v["stats"] = stats
	}

	return v
}

func statusError(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case app.IsTransportError(err):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
