package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the full name of the card service
	ServiceName = "rpgcards.v1alpha1.CardService"

	generateCardsMethod = "/" + ServiceName + "/GenerateCards"
)

// CardServiceServer is the server side of the card service. Messages are
// google.protobuf.Struct values shaped like the CLI flags and the card JSON.
type CardServiceServer interface {
	GenerateCards(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// CardServiceServiceDesc describes the card service to a grpc.Server
var CardServiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateCards",
			Handler:    generateCardsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgcards/v1alpha1/cards.proto",
}

// RegisterCardServiceServer registers srv on s
func RegisterCardServiceServer(s grpc.ServiceRegistrar, srv CardServiceServer) {
	s.RegisterService(&CardServiceServiceDesc, srv)
}

func generateCardsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).GenerateCards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: generateCardsMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardServiceServer).GenerateCards(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CardServiceClient is the client side of the card service
type CardServiceClient interface {
	GenerateCards(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type cardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCardServiceClient creates a client over an established connection
func NewCardServiceClient(cc grpc.ClientConnInterface) CardServiceClient {
	return &cardServiceClient{cc: cc}
}

func (c *cardServiceClient) GenerateCards(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, generateCardsMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
