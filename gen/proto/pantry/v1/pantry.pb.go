// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: pantry/v1/pantry.proto

package pantrypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Receipt struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StoreName       string                 `protobuf:"bytes,2,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`
	PurchasedAt     string                 `protobuf:"bytes,3,opt,name=purchased_at,json=purchasedAt,proto3" json:"purchased_at,omitempty"` // RFC3339
	Total           string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`                                // fixed-point string
	Currency        string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	Status          string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ProcessingNotes string                 `protobuf:"bytes,7,opt,name=processing_notes,json=processingNotes,proto3" json:"processing_notes,omitempty"`
	TotalDiff       string                 `protobuf:"bytes,8,opt,name=total_diff,json=totalDiff,proto3" json:"total_diff,omitempty"` // fixed-point string, signed
	SourcePath      string                 `protobuf:"bytes,9,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Cancelled       bool                   `protobuf:"varint,10,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt       string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{0}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *Receipt) GetPurchasedAt() string {
	if x != nil {
		return x.PurchasedAt
	}
	return ""
}

func (x *Receipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Receipt) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Receipt) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Receipt) GetProcessingNotes() string {
	if x != nil {
		return x.ProcessingNotes
	}
	return ""
}

func (x *Receipt) GetTotalDiff() string {
	if x != nil {
		return x.TotalDiff
	}
	return ""
}

func (x *Receipt) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Receipt) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LineItem struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReceiptId        string                 `protobuf:"bytes,2,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	RawText          string                 `protobuf:"bytes,3,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	ProductName      string                 `protobuf:"bytes,4,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Quantity         string                 `protobuf:"bytes,5,opt,name=quantity,proto3" json:"quantity,omitempty"`                    // fixed-point string
	UnitPrice        string                 `protobuf:"bytes,6,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"` // fixed-point string
	LineTotal        string                 `protobuf:"bytes,7,opt,name=line_total,json=lineTotal,proto3" json:"line_total,omitempty"` // fixed-point string
	VatCode          string                 `protobuf:"bytes,8,opt,name=vat_code,json=vatCode,proto3" json:"vat_code,omitempty"`
	MatchedProductId string                 `protobuf:"bytes,9,opt,name=matched_product_id,json=matchedProductId,proto3" json:"matched_product_id,omitempty"`
	Meta             string                 `protobuf:"bytes,10,opt,name=meta,proto3" json:"meta,omitempty"` // JSON
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{1}
}

func (x *LineItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LineItem) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *LineItem) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *LineItem) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *LineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *LineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *LineItem) GetLineTotal() string {
	if x != nil {
		return x.LineTotal
	}
	return ""
}

func (x *LineItem) GetVatCode() string {
	if x != nil {
		return x.VatCode
	}
	return ""
}

func (x *LineItem) GetMatchedProductId() string {
	if x != nil {
		return x.MatchedProductId
	}
	return ""
}

func (x *LineItem) GetMeta() string {
	if x != nil {
		return x.Meta
	}
	return ""
}

type Product struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Brand         string                 `protobuf:"bytes,3,opt,name=brand,proto3" json:"brand,omitempty"`
	Barcode       string                 `protobuf:"bytes,4,opt,name=barcode,proto3" json:"barcode,omitempty"`
	CategoryId    string                 `protobuf:"bytes,5,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	IsActive      bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	Aliases       []string               `protobuf:"bytes,7,rep,name=aliases,proto3" json:"aliases,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Product) Reset() {
	*x = Product{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Product) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Product) ProtoMessage() {}

func (x *Product) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Product.ProtoReflect.Descriptor instead.
func (*Product) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{2}
}

func (x *Product) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Product) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Product) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *Product) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *Product) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Product) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Product) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

type InventoryItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	PurchaseDate  string                 `protobuf:"bytes,3,opt,name=purchase_date,json=purchaseDate,proto3" json:"purchase_date,omitempty"` // YYYY-MM-DD
	ExpiryDate    string                 `protobuf:"bytes,4,opt,name=expiry_date,json=expiryDate,proto3" json:"expiry_date,omitempty"`       // YYYY-MM-DD, empty when unknown
	Quantity      string                 `protobuf:"bytes,5,opt,name=quantity,proto3" json:"quantity,omitempty"`                             // fixed-point string
	Unit          string                 `protobuf:"bytes,6,opt,name=unit,proto3" json:"unit,omitempty"`
	Storage       string                 `protobuf:"bytes,7,opt,name=storage,proto3" json:"storage,omitempty"`
	BatchId       string                 `protobuf:"bytes,8,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InventoryItem) Reset() {
	*x = InventoryItem{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InventoryItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InventoryItem) ProtoMessage() {}

func (x *InventoryItem) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InventoryItem.ProtoReflect.Descriptor instead.
func (*InventoryItem) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{3}
}

func (x *InventoryItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InventoryItem) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *InventoryItem) GetPurchaseDate() string {
	if x != nil {
		return x.PurchaseDate
	}
	return ""
}

func (x *InventoryItem) GetExpiryDate() string {
	if x != nil {
		return x.ExpiryDate
	}
	return ""
}

func (x *InventoryItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *InventoryItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *InventoryItem) GetStorage() string {
	if x != nil {
		return x.Storage
	}
	return ""
}

func (x *InventoryItem) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type CorrectionPattern struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ErrorPattern     string                 `protobuf:"bytes,2,opt,name=error_pattern,json=errorPattern,proto3" json:"error_pattern,omitempty"`
	CorrectPattern   string                 `protobuf:"bytes,3,opt,name=correct_pattern,json=correctPattern,proto3" json:"correct_pattern,omitempty"`
	IsRegex          bool                   `protobuf:"varint,4,opt,name=is_regex,json=isRegex,proto3" json:"is_regex,omitempty"`
	Confidence       float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	TimesApplied     int32                  `protobuf:"varint,6,opt,name=times_applied,json=timesApplied,proto3" json:"times_applied,omitempty"`
	SampleCount      int32                  `protobuf:"varint,7,opt,name=sample_count,json=sampleCount,proto3" json:"sample_count,omitempty"`
	IsActive         bool                   `protobuf:"varint,8,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	HumanDeactivated bool                   `protobuf:"varint,9,opt,name=human_deactivated,json=humanDeactivated,proto3" json:"human_deactivated,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CorrectionPattern) Reset() {
	*x = CorrectionPattern{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectionPattern) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectionPattern) ProtoMessage() {}

func (x *CorrectionPattern) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectionPattern.ProtoReflect.Descriptor instead.
func (*CorrectionPattern) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{4}
}

func (x *CorrectionPattern) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CorrectionPattern) GetErrorPattern() string {
	if x != nil {
		return x.ErrorPattern
	}
	return ""
}

func (x *CorrectionPattern) GetCorrectPattern() string {
	if x != nil {
		return x.CorrectPattern
	}
	return ""
}

func (x *CorrectionPattern) GetIsRegex() bool {
	if x != nil {
		return x.IsRegex
	}
	return false
}

func (x *CorrectionPattern) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *CorrectionPattern) GetTimesApplied() int32 {
	if x != nil {
		return x.TimesApplied
	}
	return 0
}

func (x *CorrectionPattern) GetSampleCount() int32 {
	if x != nil {
		return x.SampleCount
	}
	return 0
}

func (x *CorrectionPattern) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *CorrectionPattern) GetHumanDeactivated() bool {
	if x != nil {
		return x.HumanDeactivated
	}
	return false
}

type UploadReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourcePath    string                 `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	StoreName     string                 `protobuf:"bytes,2,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`             // optional, declared by the uploader
	DeclaredTotal string                 `protobuf:"bytes,3,opt,name=declared_total,json=declaredTotal,proto3" json:"declared_total,omitempty"` // optional, fixed-point string
	Currency      string                 `protobuf:"bytes,4,opt,name=currency,proto3" json:"currency,omitempty"`                                // optional, defaults to PLN
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptRequest) Reset() {
	*x = UploadReceiptRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptRequest) ProtoMessage() {}

func (x *UploadReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptRequest.ProtoReflect.Descriptor instead.
func (*UploadReceiptRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{5}
}

func (x *UploadReceiptRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *UploadReceiptRequest) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *UploadReceiptRequest) GetDeclaredTotal() string {
	if x != nil {
		return x.DeclaredTotal
	}
	return ""
}

func (x *UploadReceiptRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

type UploadReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptResponse) Reset() {
	*x = UploadReceiptResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptResponse) ProtoMessage() {}

func (x *UploadReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptResponse.ProtoReflect.Descriptor instead.
func (*UploadReceiptResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{6}
}

func (x *UploadReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{7}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{8}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{9}
}

func (x *ListReceiptsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{10}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ListLineItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLineItemsRequest) Reset() {
	*x = ListLineItemsRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLineItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLineItemsRequest) ProtoMessage() {}

func (x *ListLineItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLineItemsRequest.ProtoReflect.Descriptor instead.
func (*ListLineItemsRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{11}
}

func (x *ListLineItemsRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ListLineItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LineItems     []*LineItem            `protobuf:"bytes,1,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLineItemsResponse) Reset() {
	*x = ListLineItemsResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLineItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLineItemsResponse) ProtoMessage() {}

func (x *ListLineItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLineItemsResponse.ProtoReflect.Descriptor instead.
func (*ListLineItemsResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{12}
}

func (x *ListLineItemsResponse) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

type CancelReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelReceiptRequest) Reset() {
	*x = CancelReceiptRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelReceiptRequest) ProtoMessage() {}

func (x *CancelReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelReceiptRequest.ProtoReflect.Descriptor instead.
func (*CancelReceiptRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{13}
}

func (x *CancelReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type CancelReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelReceiptResponse) Reset() {
	*x = CancelReceiptResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelReceiptResponse) ProtoMessage() {}

func (x *CancelReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelReceiptResponse.ProtoReflect.Descriptor instead.
func (*CancelReceiptResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{14}
}

func (x *CancelReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ReprocessReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessReceiptRequest) Reset() {
	*x = ReprocessReceiptRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessReceiptRequest) ProtoMessage() {}

func (x *ReprocessReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessReceiptRequest.ProtoReflect.Descriptor instead.
func (*ReprocessReceiptRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{15}
}

func (x *ReprocessReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ReprocessReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessReceiptResponse) Reset() {
	*x = ReprocessReceiptResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessReceiptResponse) ProtoMessage() {}

func (x *ReprocessReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessReceiptResponse.ProtoReflect.Descriptor instead.
func (*ReprocessReceiptResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{16}
}

func (x *ReprocessReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type LineCorrection struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LineId        string                 `protobuf:"bytes,1,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineCorrection) Reset() {
	*x = LineCorrection{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineCorrection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineCorrection) ProtoMessage() {}

func (x *LineCorrection) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineCorrection.ProtoReflect.Descriptor instead.
func (*LineCorrection) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{17}
}

func (x *LineCorrection) GetLineId() string {
	if x != nil {
		return x.LineId
	}
	return ""
}

func (x *LineCorrection) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type ReviewReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Corrections   []*LineCorrection      `protobuf:"bytes,2,rep,name=corrections,proto3" json:"corrections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewReceiptRequest) Reset() {
	*x = ReviewReceiptRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewReceiptRequest) ProtoMessage() {}

func (x *ReviewReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewReceiptRequest.ProtoReflect.Descriptor instead.
func (*ReviewReceiptRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{18}
}

func (x *ReviewReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *ReviewReceiptRequest) GetCorrections() []*LineCorrection {
	if x != nil {
		return x.Corrections
	}
	return nil
}

type ReviewReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewReceiptResponse) Reset() {
	*x = ReviewReceiptResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewReceiptResponse) ProtoMessage() {}

func (x *ReviewReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewReceiptResponse.ProtoReflect.Descriptor instead.
func (*ReviewReceiptResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{19}
}

func (x *ReviewReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListInventoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ProductId      string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`                // optional filter
	ExpiringBefore string                 `protobuf:"bytes,2,opt,name=expiring_before,json=expiringBefore,proto3" json:"expiring_before,omitempty"` // YYYY-MM-DD, optional filter
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListInventoryRequest) Reset() {
	*x = ListInventoryRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInventoryRequest) ProtoMessage() {}

func (x *ListInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInventoryRequest.ProtoReflect.Descriptor instead.
func (*ListInventoryRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{20}
}

func (x *ListInventoryRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *ListInventoryRequest) GetExpiringBefore() string {
	if x != nil {
		return x.ExpiringBefore
	}
	return ""
}

type ListInventoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*InventoryItem       `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInventoryResponse) Reset() {
	*x = ListInventoryResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInventoryResponse) ProtoMessage() {}

func (x *ListInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInventoryResponse.ProtoReflect.Descriptor instead.
func (*ListInventoryResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{21}
}

func (x *ListInventoryResponse) GetItems() []*InventoryItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ConsumeItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Quantity      string                 `protobuf:"bytes,2,opt,name=quantity,proto3" json:"quantity,omitempty"` // fixed-point string
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsumeItemRequest) Reset() {
	*x = ConsumeItemRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsumeItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsumeItemRequest) ProtoMessage() {}

func (x *ConsumeItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsumeItemRequest.ProtoReflect.Descriptor instead.
func (*ConsumeItemRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{22}
}

func (x *ConsumeItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *ConsumeItemRequest) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *ConsumeItemRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ConsumeItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *InventoryItem         `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsumeItemResponse) Reset() {
	*x = ConsumeItemResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsumeItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsumeItemResponse) ProtoMessage() {}

func (x *ConsumeItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsumeItemResponse.ProtoReflect.Descriptor instead.
func (*ConsumeItemResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{23}
}

func (x *ConsumeItemResponse) GetItem() *InventoryItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ExportInventoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryRequest) Reset() {
	*x = ExportInventoryRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryRequest) ProtoMessage() {}

func (x *ExportInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryRequest.ProtoReflect.Descriptor instead.
func (*ExportInventoryRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{24}
}

func (x *ExportInventoryRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportInventoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Rows          int32                  `protobuf:"varint,2,opt,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryResponse) Reset() {
	*x = ExportInventoryResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryResponse) ProtoMessage() {}

func (x *ExportInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryResponse.ProtoReflect.Descriptor instead.
func (*ExportInventoryResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{25}
}

func (x *ExportInventoryResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExportInventoryResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

type ListPatternsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActiveOnly    bool                   `protobuf:"varint,1,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatternsRequest) Reset() {
	*x = ListPatternsRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatternsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatternsRequest) ProtoMessage() {}

func (x *ListPatternsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatternsRequest.ProtoReflect.Descriptor instead.
func (*ListPatternsRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{26}
}

func (x *ListPatternsRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

type ListPatternsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patterns      []*CorrectionPattern   `protobuf:"bytes,1,rep,name=patterns,proto3" json:"patterns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatternsResponse) Reset() {
	*x = ListPatternsResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatternsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatternsResponse) ProtoMessage() {}

func (x *ListPatternsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatternsResponse.ProtoReflect.Descriptor instead.
func (*ListPatternsResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{27}
}

func (x *ListPatternsResponse) GetPatterns() []*CorrectionPattern {
	if x != nil {
		return x.Patterns
	}
	return nil
}

type DeactivatePatternRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatternId     string                 `protobuf:"bytes,1,opt,name=pattern_id,json=patternId,proto3" json:"pattern_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivatePatternRequest) Reset() {
	*x = DeactivatePatternRequest{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivatePatternRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivatePatternRequest) ProtoMessage() {}

func (x *DeactivatePatternRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivatePatternRequest.ProtoReflect.Descriptor instead.
func (*DeactivatePatternRequest) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{28}
}

func (x *DeactivatePatternRequest) GetPatternId() string {
	if x != nil {
		return x.PatternId
	}
	return ""
}

type DeactivatePatternResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pattern       *CorrectionPattern     `protobuf:"bytes,1,opt,name=pattern,proto3" json:"pattern,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivatePatternResponse) Reset() {
	*x = DeactivatePatternResponse{}
	mi := &file_pantry_v1_pantry_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivatePatternResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivatePatternResponse) ProtoMessage() {}

func (x *DeactivatePatternResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pantry_v1_pantry_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivatePatternResponse.ProtoReflect.Descriptor instead.
func (*DeactivatePatternResponse) Descriptor() ([]byte, []int) {
	return file_pantry_v1_pantry_proto_rawDescGZIP(), []int{29}
}

func (x *DeactivatePatternResponse) GetPattern() *CorrectionPattern {
	if x != nil {
		return x.Pattern
	}
	return nil
}

var File_pantry_v1_pantry_proto protoreflect.FileDescriptor

const file_pantry_v1_pantry_proto_rawDesc = "" +
	"\n" +
	"\x16pantry/v1/pantry.proto\x12\tpantry.v1\"\xec\x02\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"store_name\x18\x02 \x01(\tR\tstoreName\x12!\n" +
	"\fpurchased_at\x18\x03 \x01(\tR\vpurchasedAt\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12)\n" +
	"\x10processing_notes\x18\a \x01(\tR\x0fprocessingNotes\x12\x1d\n" +
	"\n" +
	"total_diff\x18\b \x01(\tR\ttotalDiff\x12\x1f\n" +
	"\vsource_path\x18\t \x01(\tR\n" +
	"sourcePath\x12\x1c\n" +
	"\tcancelled\x18\n" +
	" \x01(\bR\tcancelled\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xae\x02\n" +
	"\bLineItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x02 \x01(\tR\treceiptId\x12\x19\n" +
	"\braw_text\x18\x03 \x01(\tR\arawText\x12!\n" +
	"\fproduct_name\x18\x04 \x01(\tR\vproductName\x12\x1a\n" +
	"\bquantity\x18\x05 \x01(\tR\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x06 \x01(\tR\tunitPrice\x12\x1d\n" +
	"\n" +
	"line_total\x18\a \x01(\tR\tlineTotal\x12\x19\n" +
	"\bvat_code\x18\b \x01(\tR\avatCode\x12,\n" +
	"\x12matched_product_id\x18\t \x01(\tR\x10matchedProductId\x12\x12\n" +
	"\x04meta\x18\n" +
	" \x01(\tR\x04meta\"\xb5\x01\n" +
	"\aProduct\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05brand\x18\x03 \x01(\tR\x05brand\x12\x18\n" +
	"\abarcode\x18\x04 \x01(\tR\abarcode\x12\x1f\n" +
	"\vcategory_id\x18\x05 \x01(\tR\n" +
	"categoryId\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12\x18\n" +
	"\aaliases\x18\a \x03(\tR\aaliases\"\xe9\x01\n" +
	"\rInventoryItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12#\n" +
	"\rpurchase_date\x18\x03 \x01(\tR\fpurchaseDate\x12\x1f\n" +
	"\vexpiry_date\x18\x04 \x01(\tR\n" +
	"expiryDate\x12\x1a\n" +
	"\bquantity\x18\x05 \x01(\tR\bquantity\x12\x12\n" +
	"\x04unit\x18\x06 \x01(\tR\x04unit\x12\x18\n" +
	"\astorage\x18\a \x01(\tR\astorage\x12\x19\n" +
	"\bbatch_id\x18\b \x01(\tR\abatchId\"\xbe\x02\n" +
	"\x11CorrectionPattern\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rerror_pattern\x18\x02 \x01(\tR\ferrorPattern\x12'\n" +
	"\x0fcorrect_pattern\x18\x03 \x01(\tR\x0ecorrectPattern\x12\x19\n" +
	"\bis_regex\x18\x04 \x01(\bR\aisRegex\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\rtimes_applied\x18\x06 \x01(\x05R\ftimesApplied\x12!\n" +
	"\fsample_count\x18\a \x01(\x05R\vsampleCount\x12\x1b\n" +
	"\tis_active\x18\b \x01(\bR\bisActive\x12+\n" +
	"\x11human_deactivated\x18\t \x01(\bR\x10humanDeactivated\"\x99\x01\n" +
	"\x14UploadReceiptRequest\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x1d\n" +
	"\n" +
	"store_name\x18\x02 \x01(\tR\tstoreName\x12%\n" +
	"\x0edeclared_total\x18\x03 \x01(\tR\rdeclaredTotal\x12\x1a\n" +
	"\bcurrency\x18\x04 \x01(\tR\bcurrency\"E\n" +
	"\x15UploadReceiptResponse\x12,\n" +
	"\areceipt\x18\x01 \x01(\v2\x12.pantry.v1.ReceiptR\areceipt\"2\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"B\n" +
	"\x12GetReceiptResponse\x12,\n" +
	"\areceipt\x18\x01 \x01(\v2\x12.pantry.v1.ReceiptR\areceipt\"c\n" +
	"\x13ListReceiptsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"F\n" +
	"\x14ListReceiptsResponse\x12.\n" +
	"\breceipts\x18\x01 \x03(\v2\x12.pantry.v1.ReceiptR\breceipts\"5\n" +
	"\x14ListLineItemsRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"K\n" +
	"\x15ListLineItemsResponse\x122\n" +
	"\n" +
	"line_items\x18\x01 \x03(\v2\x13.pantry.v1.LineItemR\tlineItems\"5\n" +
	"\x14CancelReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"E\n" +
	"\x15CancelReceiptResponse\x12,\n" +
	"\areceipt\x18\x01 \x01(\v2\x12.pantry.v1.ReceiptR\areceipt\"8\n" +
	"\x17ReprocessReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"H\n" +
	"\x18ReprocessReceiptResponse\x12,\n" +
	"\areceipt\x18\x01 \x01(\v2\x12.pantry.v1.ReceiptR\areceipt\"H\n" +
	"\x0eLineCorrection\x12\x17\n" +
	"\aline_id\x18\x01 \x01(\tR\x06lineId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\"r\n" +
	"\x14ReviewReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12;\n" +
	"\vcorrections\x18\x02 \x03(\v2\x19.pantry.v1.LineCorrectionR\vcorrections\"E\n" +
	"\x15ReviewReceiptResponse\x12,\n" +
	"\areceipt\x18\x01 \x01(\v2\x12.pantry.v1.ReceiptR\areceipt\"^\n" +
	"\x14ListInventoryRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12'\n" +
	"\x0fexpiring_before\x18\x02 \x01(\tR\x0eexpiringBefore\"G\n" +
	"\x15ListInventoryResponse\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.pantry.v1.InventoryItemR\x05items\"_\n" +
	"\x12ConsumeItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\tR\bquantity\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"C\n" +
	"\x13ConsumeItemResponse\x12,\n" +
	"\x04item\x18\x01 \x01(\v2\x18.pantry.v1.InventoryItemR\x04item\"9\n" +
	"\x16ExportInventoryRequest\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\"A\n" +
	"\x17ExportInventoryResponse\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x12\n" +
	"\x04rows\x18\x02 \x01(\x05R\x04rows\"6\n" +
	"\x13ListPatternsRequest\x12\x1f\n" +
	"\vactive_only\x18\x01 \x01(\bR\n" +
	"activeOnly\"P\n" +
	"\x14ListPatternsResponse\x128\n" +
	"\bpatterns\x18\x01 \x03(\v2\x1c.pantry.v1.CorrectionPatternR\bpatterns\"9\n" +
	"\x18DeactivatePatternRequest\x12\x1d\n" +
	"\n" +
	"pattern_id\x18\x01 \x01(\tR\tpatternId\"S\n" +
	"\x19DeactivatePatternResponse\x126\n" +
	"\apattern\x18\x01 \x01(\v2\x1c.pantry.v1.CorrectionPatternR\apattern2\xda\x04\n" +
	"\x0fReceiptsService\x12R\n" +
	"\rUploadReceipt\x12\x1f.pantry.v1.UploadReceiptRequest\x1a .pantry.v1.UploadReceiptResponse\x12I\n" +
	"\n" +
	"GetReceipt\x12\x1c.pantry.v1.GetReceiptRequest\x1a\x1d.pantry.v1.GetReceiptResponse\x12O\n" +
	"\fListReceipts\x12\x1e.pantry.v1.ListReceiptsRequest\x1a\x1f.pantry.v1.ListReceiptsResponse\x12R\n" +
	"\rListLineItems\x12\x1f.pantry.v1.ListLineItemsRequest\x1a .pantry.v1.ListLineItemsResponse\x12R\n" +
	"\rCancelReceipt\x12\x1f.pantry.v1.CancelReceiptRequest\x1a .pantry.v1.CancelReceiptResponse\x12[\n" +
	"\x10ReprocessReceipt\x12\".pantry.v1.ReprocessReceiptRequest\x1a#.pantry.v1.ReprocessReceiptResponse\x12R\n" +
	"\rReviewReceipt\x12\x1f.pantry.v1.ReviewReceiptRequest\x1a .pantry.v1.ReviewReceiptResponse2\x8e\x02\n" +
	"\x10InventoryService\x12R\n" +
	"\rListInventory\x12\x1f.pantry.v1.ListInventoryRequest\x1a .pantry.v1.ListInventoryResponse\x12L\n" +
	"\vConsumeItem\x12\x1d.pantry.v1.ConsumeItemRequest\x1a\x1e.pantry.v1.ConsumeItemResponse\x12X\n" +
	"\x0fExportInventory\x12!.pantry.v1.ExportInventoryRequest\x1a\".pantry.v1.ExportInventoryResponse2\xc2\x01\n" +
	"\x0fPatternsService\x12O\n" +
	"\fListPatterns\x12\x1e.pantry.v1.ListPatternsRequest\x1a\x1f.pantry.v1.ListPatternsResponse\x12^\n" +
	"\x11DeactivatePattern\x12#.pantry.v1.DeactivatePatternRequest\x1a$.pantry.v1.DeactivatePatternResponseBDZBgithub.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1;pantrypbb\x06proto3"

var (
	file_pantry_v1_pantry_proto_rawDescOnce sync.Once
	file_pantry_v1_pantry_proto_rawDescData []byte
)

func file_pantry_v1_pantry_proto_rawDescGZIP() []byte {
	file_pantry_v1_pantry_proto_rawDescOnce.Do(func() {
		file_pantry_v1_pantry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pantry_v1_pantry_proto_rawDesc), len(file_pantry_v1_pantry_proto_rawDesc)))
	})
	return file_pantry_v1_pantry_proto_rawDescData
}

var file_pantry_v1_pantry_proto_msgTypes = make([]protoimpl.MessageInfo, 30)
var file_pantry_v1_pantry_proto_goTypes = []any{
	(*Receipt)(nil),                   // 0: pantry.v1.Receipt
	(*LineItem)(nil),                  // 1: pantry.v1.LineItem
	(*Product)(nil),                   // 2: pantry.v1.Product
	(*InventoryItem)(nil),             // 3: pantry.v1.InventoryItem
	(*CorrectionPattern)(nil),         // 4: pantry.v1.CorrectionPattern
	(*UploadReceiptRequest)(nil),      // 5: pantry.v1.UploadReceiptRequest
	(*UploadReceiptResponse)(nil),     // 6: pantry.v1.UploadReceiptResponse
	(*GetReceiptRequest)(nil),         // 7: pantry.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),        // 8: pantry.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),       // 9: pantry.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),      // 10: pantry.v1.ListReceiptsResponse
	(*ListLineItemsRequest)(nil),      // 11: pantry.v1.ListLineItemsRequest
	(*ListLineItemsResponse)(nil),     // 12: pantry.v1.ListLineItemsResponse
	(*CancelReceiptRequest)(nil),      // 13: pantry.v1.CancelReceiptRequest
	(*CancelReceiptResponse)(nil),     // 14: pantry.v1.CancelReceiptResponse
	(*ReprocessReceiptRequest)(nil),   // 15: pantry.v1.ReprocessReceiptRequest
	(*ReprocessReceiptResponse)(nil),  // 16: pantry.v1.ReprocessReceiptResponse
	(*LineCorrection)(nil),            // 17: pantry.v1.LineCorrection
	(*ReviewReceiptRequest)(nil),      // 18: pantry.v1.ReviewReceiptRequest
	(*ReviewReceiptResponse)(nil),     // 19: pantry.v1.ReviewReceiptResponse
	(*ListInventoryRequest)(nil),      // 20: pantry.v1.ListInventoryRequest
	(*ListInventoryResponse)(nil),     // 21: pantry.v1.ListInventoryResponse
	(*ConsumeItemRequest)(nil),        // 22: pantry.v1.ConsumeItemRequest
	(*ConsumeItemResponse)(nil),       // 23: pantry.v1.ConsumeItemResponse
	(*ExportInventoryRequest)(nil),    // 24: pantry.v1.ExportInventoryRequest
	(*ExportInventoryResponse)(nil),   // 25: pantry.v1.ExportInventoryResponse
	(*ListPatternsRequest)(nil),       // 26: pantry.v1.ListPatternsRequest
	(*ListPatternsResponse)(nil),      // 27: pantry.v1.ListPatternsResponse
	(*DeactivatePatternRequest)(nil),  // 28: pantry.v1.DeactivatePatternRequest
	(*DeactivatePatternResponse)(nil), // 29: pantry.v1.DeactivatePatternResponse
}
var file_pantry_v1_pantry_proto_depIdxs = []int32{
	0,  // 0: pantry.v1.UploadReceiptResponse.receipt:type_name -> pantry.v1.Receipt
	0,  // 1: pantry.v1.GetReceiptResponse.receipt:type_name -> pantry.v1.Receipt
	0,  // 2: pantry.v1.ListReceiptsResponse.receipts:type_name -> pantry.v1.Receipt
	1,  // 3: pantry.v1.ListLineItemsResponse.line_items:type_name -> pantry.v1.LineItem
	0,  // 4: pantry.v1.CancelReceiptResponse.receipt:type_name -> pantry.v1.Receipt
	0,  // 5: pantry.v1.ReprocessReceiptResponse.receipt:type_name -> pantry.v1.Receipt
	17, // 6: pantry.v1.ReviewReceiptRequest.corrections:type_name -> pantry.v1.LineCorrection
	0,  // 7: pantry.v1.ReviewReceiptResponse.receipt:type_name -> pantry.v1.Receipt
	3,  // 8: pantry.v1.ListInventoryResponse.items:type_name -> pantry.v1.InventoryItem
	3,  // 9: pantry.v1.ConsumeItemResponse.item:type_name -> pantry.v1.InventoryItem
	4,  // 10: pantry.v1.ListPatternsResponse.patterns:type_name -> pantry.v1.CorrectionPattern
	4,  // 11: pantry.v1.DeactivatePatternResponse.pattern:type_name -> pantry.v1.CorrectionPattern
	5,  // 12: pantry.v1.ReceiptsService.UploadReceipt:input_type -> pantry.v1.UploadReceiptRequest
	7,  // 13: pantry.v1.ReceiptsService.GetReceipt:input_type -> pantry.v1.GetReceiptRequest
	9,  // 14: pantry.v1.ReceiptsService.ListReceipts:input_type -> pantry.v1.ListReceiptsRequest
	11, // 15: pantry.v1.ReceiptsService.ListLineItems:input_type -> pantry.v1.ListLineItemsRequest
	13, // 16: pantry.v1.ReceiptsService.CancelReceipt:input_type -> pantry.v1.CancelReceiptRequest
	15, // 17: pantry.v1.ReceiptsService.ReprocessReceipt:input_type -> pantry.v1.ReprocessReceiptRequest
	18, // 18: pantry.v1.ReceiptsService.ReviewReceipt:input_type -> pantry.v1.ReviewReceiptRequest
	20, // 19: pantry.v1.InventoryService.ListInventory:input_type -> pantry.v1.ListInventoryRequest
	22, // 20: pantry.v1.InventoryService.ConsumeItem:input_type -> pantry.v1.ConsumeItemRequest
	24, // 21: pantry.v1.InventoryService.ExportInventory:input_type -> pantry.v1.ExportInventoryRequest
	26, // 22: pantry.v1.PatternsService.ListPatterns:input_type -> pantry.v1.ListPatternsRequest
	28, // 23: pantry.v1.PatternsService.DeactivatePattern:input_type -> pantry.v1.DeactivatePatternRequest
	6,  // 24: pantry.v1.ReceiptsService.UploadReceipt:output_type -> pantry.v1.UploadReceiptResponse
	8,  // 25: pantry.v1.ReceiptsService.GetReceipt:output_type -> pantry.v1.GetReceiptResponse
	10, // 26: pantry.v1.ReceiptsService.ListReceipts:output_type -> pantry.v1.ListReceiptsResponse
	12, // 27: pantry.v1.ReceiptsService.ListLineItems:output_type -> pantry.v1.ListLineItemsResponse
	14, // 28: pantry.v1.ReceiptsService.CancelReceipt:output_type -> pantry.v1.CancelReceiptResponse
	16, // 29: pantry.v1.ReceiptsService.ReprocessReceipt:output_type -> pantry.v1.ReprocessReceiptResponse
	19, // 30: pantry.v1.ReceiptsService.ReviewReceipt:output_type -> pantry.v1.ReviewReceiptResponse
	21, // 31: pantry.v1.InventoryService.ListInventory:output_type -> pantry.v1.ListInventoryResponse
	23, // 32: pantry.v1.InventoryService.ConsumeItem:output_type -> pantry.v1.ConsumeItemResponse
	25, // 33: pantry.v1.InventoryService.ExportInventory:output_type -> pantry.v1.ExportInventoryResponse
	27, // 34: pantry.v1.PatternsService.ListPatterns:output_type -> pantry.v1.ListPatternsResponse
	29, // 35: pantry.v1.PatternsService.DeactivatePattern:output_type -> pantry.v1.DeactivatePatternResponse
	24, // [24:36] is the sub-list for method output_type
	12, // [12:24] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_pantry_v1_pantry_proto_init() }
func file_pantry_v1_pantry_proto_init() {
	if File_pantry_v1_pantry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pantry_v1_pantry_proto_rawDesc), len(file_pantry_v1_pantry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   30,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_pantry_v1_pantry_proto_goTypes,
		DependencyIndexes: file_pantry_v1_pantry_proto_depIdxs,
		MessageInfos:      file_pantry_v1_pantry_proto_msgTypes,
	}.Build()
	File_pantry_v1_pantry_proto = out.File
	file_pantry_v1_pantry_proto_goTypes = nil
	file_pantry_v1_pantry_proto_depIdxs = nil
}
