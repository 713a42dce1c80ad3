package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of collectivepage.Members service.
const (
	serviceName             = "collectivepage.Members"
	fetchMembersMethod      = "/" + serviceName + "/FetchMembers"
	fetchMembersStatsMethod = "/" + serviceName + "/FetchMembersStats"
)

// MembersServer is the server API for collectivepage.Members service.
// Requests and replies are google.protobuf.Struct messages.
type MembersServer interface {
	FetchMembers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FetchMembersStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterMembersServer registers MembersServer in grpc server.
func RegisterMembersServer(s *grpc.Server, srv MembersServer) {
	s.RegisterService(&membersServiceDesc, srv)
}

var membersServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*MembersServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FetchMembers",
			Handler:    fetchMembersHandler,
		},
		{
			MethodName: "FetchMembersStats",
			Handler:    fetchMembersStatsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collectivepage/members",
}

func fetchMembersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MembersServer).FetchMembers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fetchMembersMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MembersServer).FetchMembers(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func fetchMembersStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MembersServer).FetchMembersStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fetchMembersStatsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MembersServer).FetchMembersStats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// MembersClient is the client API for collectivepage.Members service.
type MembersClient struct {
	cc grpc.ClientConnInterface
}

// NewMembersClient creates new MembersClient instance.
func NewMembersClient(cc grpc.ClientConnInterface) *MembersClient {
	return &MembersClient{cc: cc}
}

// FetchMembers calls FetchMembers method.
func (c *MembersClient) FetchMembers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fetchMembersMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchMembersStats calls FetchMembersStats method.
func (c *MembersClient) FetchMembersStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fetchMembersStatsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
