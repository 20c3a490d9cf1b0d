// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"github.com/MKhiriev/go-dgc/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "dgc.DGC"

	DirtyFullMethodName = "/" + ServiceName + "/Dirty"
	CleanFullMethodName = "/" + ServiceName + "/Clean"

	// TraceIDKey is the metadata key carrying the caller's trace id.
	TraceIDKey = "x-trace-id"
)

// Empty is the response message of Clean.
type Empty struct{}

// DGCServer is the server API for the DGC service.
type DGCServer interface {
	Dirty(ctx context.Context, req *models.DirtyRequest) (*models.DirtyResponse, error)
	Clean(ctx context.Context, req *models.CleanRequest) (*Empty, error)
}

// RegisterDGCServer registers srv on s.
func RegisterDGCServer(s grpc.ServiceRegistrar, srv DGCServer) {
	s.RegisterService(&DGCServiceDesc, srv)
}

func dirtyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DirtyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DGCServer).Dirty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DirtyFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DGCServer).Dirty(ctx, req.(*models.DirtyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func cleanHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.CleanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DGCServer).Clean(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CleanFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DGCServer).Clean(ctx, req.(*models.CleanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DGCServiceDesc is the grpc.ServiceDesc for the DGC service.
var DGCServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DGCServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dirty",
			Handler:    dirtyHandler,
		},
		{
			MethodName: "Clean",
			Handler:    cleanHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dgc",
}

// DGCClient is the client API for the DGC service.
type DGCClient interface {
	Dirty(ctx context.Context, in *models.DirtyRequest, opts ...grpc.CallOption) (*models.DirtyResponse, error)
	Clean(ctx context.Context, in *models.CleanRequest, opts ...grpc.CallOption) (*Empty, error)
}

type dgcClient struct {
	cc grpc.ClientConnInterface
}

// NewDGCClient returns a [DGCClient] calling through cc with the JSON codec.
func NewDGCClient(cc grpc.ClientConnInterface) DGCClient {
	return &dgcClient{cc: cc}
}

func (c *dgcClient) Dirty(ctx context.Context, in *models.DirtyRequest, opts ...grpc.CallOption) (*models.DirtyResponse, error) {
	out := new(models.DirtyResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, DirtyFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dgcClient) Clean(ctx context.Context, in *models.CleanRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, CleanFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
