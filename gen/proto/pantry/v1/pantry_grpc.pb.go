// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: pantry/v1/pantry.proto

package pantrypb

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
	ReceiptsService_UploadReceipt_FullMethodName    = "/pantry.v1.ReceiptsService/UploadReceipt"
	ReceiptsService_GetReceipt_FullMethodName       = "/pantry.v1.ReceiptsService/GetReceipt"
	ReceiptsService_ListReceipts_FullMethodName     = "/pantry.v1.ReceiptsService/ListReceipts"
	ReceiptsService_ListLineItems_FullMethodName    = "/pantry.v1.ReceiptsService/ListLineItems"
	ReceiptsService_CancelReceipt_FullMethodName    = "/pantry.v1.ReceiptsService/CancelReceipt"
	ReceiptsService_ReprocessReceipt_FullMethodName = "/pantry.v1.ReceiptsService/ReprocessReceipt"
	ReceiptsService_ReviewReceipt_FullMethodName    = "/pantry.v1.ReceiptsService/ReviewReceipt"
)

// ReceiptsServiceClient is the client API for ReceiptsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReceiptsService drives the receipt-understanding pipeline.
type ReceiptsServiceClient interface {
	// UploadReceipt registers a file and queues it for processing.
	UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error)
	GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error)
	ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error)
	ListLineItems(ctx context.Context, in *ListLineItemsRequest, opts ...grpc.CallOption) (*ListLineItemsResponse, error)
	// CancelReceipt flags a receipt; the pipeline short-circuits before its
	// next stage.
	CancelReceipt(ctx context.Context, in *CancelReceiptRequest, opts ...grpc.CallOption) (*CancelReceiptResponse, error)
	// ReprocessReceipt re-queues a receipt parked in review_pending or error.
	ReprocessReceipt(ctx context.Context, in *ReprocessReceiptRequest, opts ...grpc.CallOption) (*ReprocessReceiptResponse, error)
	// ReviewReceipt applies human line corrections to a receipt parked in
	// review_pending and resumes it towards completed.
	ReviewReceipt(ctx context.Context, in *ReviewReceiptRequest, opts ...grpc.CallOption) (*ReviewReceiptResponse, error)
}

type receiptsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReceiptsServiceClient(cc grpc.ClientConnInterface) ReceiptsServiceClient {
	return &receiptsServiceClient{cc}
}

func (c *receiptsServiceClient) UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_UploadReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_GetReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReceiptsResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_ListReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) ListLineItems(ctx context.Context, in *ListLineItemsRequest, opts ...grpc.CallOption) (*ListLineItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLineItemsResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_ListLineItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) CancelReceipt(ctx context.Context, in *CancelReceiptRequest, opts ...grpc.CallOption) (*CancelReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_CancelReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) ReprocessReceipt(ctx context.Context, in *ReprocessReceiptRequest, opts ...grpc.CallOption) (*ReprocessReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_ReprocessReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) ReviewReceipt(ctx context.Context, in *ReviewReceiptRequest, opts ...grpc.CallOption) (*ReviewReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_ReviewReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiptsServiceServer is the server API for ReceiptsService service.
// All implementations must embed UnimplementedReceiptsServiceServer
// for forward compatibility.
//
// ReceiptsService drives the receipt-understanding pipeline.
type ReceiptsServiceServer interface {
	// UploadReceipt registers a file and queues it for processing.
	UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error)
	GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error)
	ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error)
	ListLineItems(context.Context, *ListLineItemsRequest) (*ListLineItemsResponse, error)
	// CancelReceipt flags a receipt; the pipeline short-circuits before its
	// next stage.
	CancelReceipt(context.Context, *CancelReceiptRequest) (*CancelReceiptResponse, error)
	// ReprocessReceipt re-queues a receipt parked in review_pending or error.
	ReprocessReceipt(context.Context, *ReprocessReceiptRequest) (*ReprocessReceiptResponse, error)
	// ReviewReceipt applies human line corrections to a receipt parked in
	// review_pending and resumes it towards completed.
	ReviewReceipt(context.Context, *ReviewReceiptRequest) (*ReviewReceiptResponse, error)
	mustEmbedUnimplementedReceiptsServiceServer()
}

// UnimplementedReceiptsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReceiptsServiceServer struct{}

func (UnimplementedReceiptsServiceServer) UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReceipts not implemented")
}
func (UnimplementedReceiptsServiceServer) ListLineItems(context.Context, *ListLineItemsRequest) (*ListLineItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLineItems not implemented")
}
func (UnimplementedReceiptsServiceServer) CancelReceipt(context.Context, *CancelReceiptRequest) (*CancelReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) ReprocessReceipt(context.Context, *ReprocessReceiptRequest) (*ReprocessReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReprocessReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) ReviewReceipt(context.Context, *ReviewReceiptRequest) (*ReviewReceiptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReviewReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) mustEmbedUnimplementedReceiptsServiceServer() {}
func (UnimplementedReceiptsServiceServer) testEmbeddedByValue()                         {}

// UnsafeReceiptsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReceiptsServiceServer will
// result in compilation errors.
type UnsafeReceiptsServiceServer interface {
	mustEmbedUnimplementedReceiptsServiceServer()
}

func RegisterReceiptsServiceServer(s grpc.ServiceRegistrar, srv ReceiptsServiceServer) {
	// If the following call panics, it indicates UnimplementedReceiptsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReceiptsService_ServiceDesc, srv)
}

func _ReceiptsService_UploadReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).UploadReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_UploadReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).UploadReceipt(ctx, req.(*UploadReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_GetReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).GetReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_GetReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).GetReceipt(ctx, req.(*GetReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_ListReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).ListReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_ListReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).ListReceipts(ctx, req.(*ListReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_ListLineItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLineItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).ListLineItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_ListLineItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).ListLineItems(ctx, req.(*ListLineItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_CancelReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).CancelReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_CancelReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).CancelReceipt(ctx, req.(*CancelReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_ReprocessReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).ReprocessReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_ReprocessReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).ReprocessReceipt(ctx, req.(*ReprocessReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_ReviewReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).ReviewReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_ReviewReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).ReviewReceipt(ctx, req.(*ReviewReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReceiptsService_ServiceDesc is the grpc.ServiceDesc for ReceiptsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReceiptsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.ReceiptsService",
	HandlerType: (*ReceiptsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadReceipt",
			Handler:    _ReceiptsService_UploadReceipt_Handler,
		},
		{
			MethodName: "GetReceipt",
			Handler:    _ReceiptsService_GetReceipt_Handler,
		},
		{
			MethodName: "ListReceipts",
			Handler:    _ReceiptsService_ListReceipts_Handler,
		},
		{
			MethodName: "ListLineItems",
			Handler:    _ReceiptsService_ListLineItems_Handler,
		},
		{
			MethodName: "CancelReceipt",
			Handler:    _ReceiptsService_CancelReceipt_Handler,
		},
		{
			MethodName: "ReprocessReceipt",
			Handler:    _ReceiptsService_ReprocessReceipt_Handler,
		},
		{
			MethodName: "ReviewReceipt",
			Handler:    _ReceiptsService_ReviewReceipt_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	InventoryService_ListInventory_FullMethodName   = "/pantry.v1.InventoryService/ListInventory"
	InventoryService_ConsumeItem_FullMethodName     = "/pantry.v1.InventoryService/ConsumeItem"
	InventoryService_ExportInventory_FullMethodName = "/pantry.v1.InventoryService/ExportInventory"
)

// InventoryServiceClient is the client API for InventoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InventoryService exposes the stock created by the pipeline.
type InventoryServiceClient interface {
	ListInventory(ctx context.Context, in *ListInventoryRequest, opts ...grpc.CallOption) (*ListInventoryResponse, error)
	ConsumeItem(ctx context.Context, in *ConsumeItemRequest, opts ...grpc.CallOption) (*ConsumeItemResponse, error)
	ExportInventory(ctx context.Context, in *ExportInventoryRequest, opts ...grpc.CallOption) (*ExportInventoryResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) ListInventory(ctx context.Context, in *ListInventoryRequest, opts ...grpc.CallOption) (*ListInventoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInventoryResponse)
	err := c.cc.Invoke(ctx, InventoryService_ListInventory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ConsumeItem(ctx context.Context, in *ConsumeItemRequest, opts ...grpc.CallOption) (*ConsumeItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConsumeItemResponse)
	err := c.cc.Invoke(ctx, InventoryService_ConsumeItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ExportInventory(ctx context.Context, in *ExportInventoryRequest, opts ...grpc.CallOption) (*ExportInventoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInventoryResponse)
	err := c.cc.Invoke(ctx, InventoryService_ExportInventory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryServiceServer is the server API for InventoryService service.
// All implementations must embed UnimplementedInventoryServiceServer
// for forward compatibility.
//
// InventoryService exposes the stock created by the pipeline.
type InventoryServiceServer interface {
	ListInventory(context.Context, *ListInventoryRequest) (*ListInventoryResponse, error)
	ConsumeItem(context.Context, *ConsumeItemRequest) (*ConsumeItemResponse, error)
	ExportInventory(context.Context, *ExportInventoryRequest) (*ExportInventoryResponse, error)
	mustEmbedUnimplementedInventoryServiceServer()
}

// UnimplementedInventoryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) ListInventory(context.Context, *ListInventoryRequest) (*ListInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInventory not implemented")
}
func (UnimplementedInventoryServiceServer) ConsumeItem(context.Context, *ConsumeItemRequest) (*ConsumeItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConsumeItem not implemented")
}
func (UnimplementedInventoryServiceServer) ExportInventory(context.Context, *ExportInventoryRequest) (*ExportInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportInventory not implemented")
}
func (UnimplementedInventoryServiceServer) mustEmbedUnimplementedInventoryServiceServer() {}
func (UnimplementedInventoryServiceServer) testEmbeddedByValue()                          {}

// UnsafeInventoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InventoryServiceServer will
// result in compilation errors.
type UnsafeInventoryServiceServer interface {
	mustEmbedUnimplementedInventoryServiceServer()
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	// If the following call panics, it indicates UnimplementedInventoryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_ListInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ListInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListInventory(ctx, req.(*ListInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ConsumeItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConsumeItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ConsumeItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ConsumeItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ConsumeItem(ctx, req.(*ConsumeItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ExportInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ExportInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ExportInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ExportInventory(ctx, req.(*ExportInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListInventory",
			Handler:    _InventoryService_ListInventory_Handler,
		},
		{
			MethodName: "ConsumeItem",
			Handler:    _InventoryService_ConsumeItem_Handler,
		},
		{
			MethodName: "ExportInventory",
			Handler:    _InventoryService_ExportInventory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}

const (
	PatternsService_ListPatterns_FullMethodName      = "/pantry.v1.PatternsService/ListPatterns"
	PatternsService_DeactivatePattern_FullMethodName = "/pantry.v1.PatternsService/DeactivatePattern"
)

// PatternsServiceClient is the client API for PatternsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PatternsService administers the learned OCR correction patterns.
type PatternsServiceClient interface {
	ListPatterns(ctx context.Context, in *ListPatternsRequest, opts ...grpc.CallOption) (*ListPatternsResponse, error)
	DeactivatePattern(ctx context.Context, in *DeactivatePatternRequest, opts ...grpc.CallOption) (*DeactivatePatternResponse, error)
}

type patternsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPatternsServiceClient(cc grpc.ClientConnInterface) PatternsServiceClient {
	return &patternsServiceClient{cc}
}

func (c *patternsServiceClient) ListPatterns(ctx context.Context, in *ListPatternsRequest, opts ...grpc.CallOption) (*ListPatternsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPatternsResponse)
	err := c.cc.Invoke(ctx, PatternsService_ListPatterns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *patternsServiceClient) DeactivatePattern(ctx context.Context, in *DeactivatePatternRequest, opts ...grpc.CallOption) (*DeactivatePatternResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivatePatternResponse)
	err := c.cc.Invoke(ctx, PatternsService_DeactivatePattern_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PatternsServiceServer is the server API for PatternsService service.
// All implementations must embed UnimplementedPatternsServiceServer
// for forward compatibility.
//
// PatternsService administers the learned OCR correction patterns.
type PatternsServiceServer interface {
	ListPatterns(context.Context, *ListPatternsRequest) (*ListPatternsResponse, error)
	DeactivatePattern(context.Context, *DeactivatePatternRequest) (*DeactivatePatternResponse, error)
	mustEmbedUnimplementedPatternsServiceServer()
}

// UnimplementedPatternsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPatternsServiceServer struct{}

func (UnimplementedPatternsServiceServer) ListPatterns(context.Context, *ListPatternsRequest) (*ListPatternsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPatterns not implemented")
}
func (UnimplementedPatternsServiceServer) DeactivatePattern(context.Context, *DeactivatePatternRequest) (*DeactivatePatternResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivatePattern not implemented")
}
func (UnimplementedPatternsServiceServer) mustEmbedUnimplementedPatternsServiceServer() {}
func (UnimplementedPatternsServiceServer) testEmbeddedByValue()                         {}

// UnsafePatternsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PatternsServiceServer will
// result in compilation errors.
type UnsafePatternsServiceServer interface {
	mustEmbedUnimplementedPatternsServiceServer()
}

func RegisterPatternsServiceServer(s grpc.ServiceRegistrar, srv PatternsServiceServer) {
	// If the following call panics, it indicates UnimplementedPatternsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PatternsService_ServiceDesc, srv)
}

func _PatternsService_ListPatterns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPatternsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PatternsServiceServer).ListPatterns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PatternsService_ListPatterns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PatternsServiceServer).ListPatterns(ctx, req.(*ListPatternsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PatternsService_DeactivatePattern_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivatePatternRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PatternsServiceServer).DeactivatePattern(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PatternsService_DeactivatePattern_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PatternsServiceServer).DeactivatePattern(ctx, req.(*DeactivatePatternRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PatternsService_ServiceDesc is the grpc.ServiceDesc for PatternsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PatternsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.PatternsService",
	HandlerType: (*PatternsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPatterns",
			Handler:    _PatternsService_ListPatterns_Handler,
		},
		{
			MethodName: "DeactivatePattern",
			Handler:    _PatternsService_DeactivatePattern_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/pantry.proto",
}
