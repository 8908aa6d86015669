// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: face.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MachineLearningService_ExtractEmbedding_FullMethodName = "/face.v1.MachineLearningService/ExtractEmbedding"
	MachineLearningService_DetectFace_FullMethodName       = "/face.v1.MachineLearningService/DetectFace"
	MachineLearningService_PredictExamScore_FullMethodName = "/face.v1.MachineLearningService/PredictExamScore"
	MachineLearningService_PredictDropout_FullMethodName   = "/face.v1.MachineLearningService/PredictDropout"
)

// MachineLearningServiceClient is the client API for MachineLearningService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MachineLearningServiceClient interface {
	ExtractEmbedding(ctx context.Context, in *ExtractEmbeddingRequest, opts ...grpc.CallOption) (*ExtractEmbeddingResponse, error)
	DetectFace(ctx context.Context, in *DetectFaceRequest, opts ...grpc.CallOption) (*DetectFaceResponse, error)
	PredictExamScore(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictExamScoreResponse, error)
	PredictDropout(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictDropoutResponse, error)
}

type machineLearningServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMachineLearningServiceClient(cc grpc.ClientConnInterface) MachineLearningServiceClient {
	return &machineLearningServiceClient{cc}
}

func (c *machineLearningServiceClient) ExtractEmbedding(ctx context.Context, in *ExtractEmbeddingRequest, opts ...grpc.CallOption) (*ExtractEmbeddingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractEmbeddingResponse)
	err := c.cc.Invoke(ctx, MachineLearningService_ExtractEmbedding_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineLearningServiceClient) DetectFace(ctx context.Context, in *DetectFaceRequest, opts ...grpc.CallOption) (*DetectFaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetectFaceResponse)
	err := c.cc.Invoke(ctx, MachineLearningService_DetectFace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineLearningServiceClient) PredictExamScore(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictExamScoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PredictExamScoreResponse)
	err := c.cc.Invoke(ctx, MachineLearningService_PredictExamScore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineLearningServiceClient) PredictDropout(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictDropoutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PredictDropoutResponse)
	err := c.cc.Invoke(ctx, MachineLearningService_PredictDropout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MachineLearningServiceServer is the server API for MachineLearningService service.
// All implementations must embed UnimplementedMachineLearningServiceServer
// for forward compatibility.
type MachineLearningServiceServer interface {
	ExtractEmbedding(context.Context, *ExtractEmbeddingRequest) (*ExtractEmbeddingResponse, error)
	DetectFace(context.Context, *DetectFaceRequest) (*DetectFaceResponse, error)
	PredictExamScore(context.Context, *PredictRequest) (*PredictExamScoreResponse, error)
	PredictDropout(context.Context, *PredictRequest) (*PredictDropoutResponse, error)
	mustEmbedUnimplementedMachineLearningServiceServer()
}

// UnimplementedMachineLearningServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMachineLearningServiceServer struct{}

func (UnimplementedMachineLearningServiceServer) ExtractEmbedding(context.Context, *ExtractEmbeddingRequest) (*ExtractEmbeddingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractEmbedding not implemented")
}
func (UnimplementedMachineLearningServiceServer) DetectFace(context.Context, *DetectFaceRequest) (*DetectFaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectFace not implemented")
}
func (UnimplementedMachineLearningServiceServer) PredictExamScore(context.Context, *PredictRequest) (*PredictExamScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictExamScore not implemented")
}
func (UnimplementedMachineLearningServiceServer) PredictDropout(context.Context, *PredictRequest) (*PredictDropoutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictDropout not implemented")
}
func (UnimplementedMachineLearningServiceServer) mustEmbedUnimplementedMachineLearningServiceServer() {
}
func (UnimplementedMachineLearningServiceServer) testEmbeddedByValue() {}

// UnsafeMachineLearningServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MachineLearningServiceServer will
// result in compilation errors.
type UnsafeMachineLearningServiceServer interface {
	mustEmbedUnimplementedMachineLearningServiceServer()
}

func RegisterMachineLearningServiceServer(s grpc.ServiceRegistrar, srv MachineLearningServiceServer) {
	// If the following call pancis, it indicates UnimplementedMachineLearningServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MachineLearningService_ServiceDesc, srv)
}

func _MachineLearningService_ExtractEmbedding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractEmbeddingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineLearningServiceServer).ExtractEmbedding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MachineLearningService_ExtractEmbedding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineLearningServiceServer).ExtractEmbedding(ctx, req.(*ExtractEmbeddingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineLearningService_DetectFace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectFaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineLearningServiceServer).DetectFace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MachineLearningService_DetectFace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineLearningServiceServer).DetectFace(ctx, req.(*DetectFaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineLearningService_PredictExamScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineLearningServiceServer).PredictExamScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MachineLearningService_PredictExamScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineLearningServiceServer).PredictExamScore(ctx, req.(*PredictRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineLearningService_PredictDropout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineLearningServiceServer).PredictDropout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MachineLearningService_PredictDropout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineLearningServiceServer).PredictDropout(ctx, req.(*PredictRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MachineLearningService_ServiceDesc is the grpc.ServiceDesc for MachineLearningService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MachineLearningService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "face.v1.MachineLearningService",
	HandlerType: (*MachineLearningServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractEmbedding",
			Handler:    _MachineLearningService_ExtractEmbedding_Handler,
		},
		{
			MethodName: "DetectFace",
			Handler:    _MachineLearningService_DetectFace_Handler,
		},
		{
			MethodName: "PredictExamScore",
			Handler:    _MachineLearningService_PredictExamScore_Handler,
		},
		{
			MethodName: "PredictDropout",
			Handler:    _MachineLearningService_PredictDropout_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "face.proto",
}

const (
	FaceRecognitionService_RecognizeImage_FullMethodName      = "/face.v1.FaceRecognitionService/RecognizeImage"
	FaceRecognitionService_GetEnrollmentStatus_FullMethodName = "/face.v1.FaceRecognitionService/GetEnrollmentStatus"
)

// FaceRecognitionServiceClient is the client API for FaceRecognitionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FaceRecognitionServiceClient interface {
	RecognizeImage(ctx context.Context, in *RecognizeImageRequest, opts ...grpc.CallOption) (*RecognizeImageResponse, error)
	GetEnrollmentStatus(ctx context.Context, in *GetEnrollmentStatusRequest, opts ...grpc.CallOption) (*GetEnrollmentStatusResponse, error)
}

type faceRecognitionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFaceRecognitionServiceClient(cc grpc.ClientConnInterface) FaceRecognitionServiceClient {
	return &faceRecognitionServiceClient{cc}
}

func (c *faceRecognitionServiceClient) RecognizeImage(ctx context.Context, in *RecognizeImageRequest, opts ...grpc.CallOption) (*RecognizeImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecognizeImageResponse)
	err := c.cc.Invoke(ctx, FaceRecognitionService_RecognizeImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceRecognitionServiceClient) GetEnrollmentStatus(ctx context.Context, in *GetEnrollmentStatusRequest, opts ...grpc.CallOption) (*GetEnrollmentStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEnrollmentStatusResponse)
	err := c.cc.Invoke(ctx, FaceRecognitionService_GetEnrollmentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FaceRecognitionServiceServer is the server API for FaceRecognitionService service.
// All implementations must embed UnimplementedFaceRecognitionServiceServer
// for forward compatibility.
type FaceRecognitionServiceServer interface {
	RecognizeImage(context.Context, *RecognizeImageRequest) (*RecognizeImageResponse, error)
	GetEnrollmentStatus(context.Context, *GetEnrollmentStatusRequest) (*GetEnrollmentStatusResponse, error)
	mustEmbedUnimplementedFaceRecognitionServiceServer()
}

// UnimplementedFaceRecognitionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFaceRecognitionServiceServer struct{}

func (UnimplementedFaceRecognitionServiceServer) RecognizeImage(context.Context, *RecognizeImageRequest) (*RecognizeImageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecognizeImage not implemented")
}
func (UnimplementedFaceRecognitionServiceServer) GetEnrollmentStatus(context.Context, *GetEnrollmentStatusRequest) (*GetEnrollmentStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEnrollmentStatus not implemented")
}
func (UnimplementedFaceRecognitionServiceServer) mustEmbedUnimplementedFaceRecognitionServiceServer() {
}
func (UnimplementedFaceRecognitionServiceServer) testEmbeddedByValue() {}

// UnsafeFaceRecognitionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FaceRecognitionServiceServer will
// result in compilation errors.
type UnsafeFaceRecognitionServiceServer interface {
	mustEmbedUnimplementedFaceRecognitionServiceServer()
}

func RegisterFaceRecognitionServiceServer(s grpc.ServiceRegistrar, srv FaceRecognitionServiceServer) {
	// If the following call pancis, it indicates UnimplementedFaceRecognitionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FaceRecognitionService_ServiceDesc, srv)
}

func _FaceRecognitionService_RecognizeImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecognizeImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceRecognitionServiceServer).RecognizeImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceRecognitionService_RecognizeImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FaceRecognitionServiceServer).RecognizeImage(ctx, req.(*RecognizeImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceRecognitionService_GetEnrollmentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEnrollmentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceRecognitionServiceServer).GetEnrollmentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceRecognitionService_GetEnrollmentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FaceRecognitionServiceServer).GetEnrollmentStatus(ctx, req.(*GetEnrollmentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FaceRecognitionService_ServiceDesc is the grpc.ServiceDesc for FaceRecognitionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FaceRecognitionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "face.v1.FaceRecognitionService",
	HandlerType: (*FaceRecognitionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecognizeImage",
			Handler:    _FaceRecognitionService_RecognizeImage_Handler,
		},
		{
			MethodName: "GetEnrollmentStatus",
			Handler:    _FaceRecognitionService_GetEnrollmentStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "face.proto",
}
