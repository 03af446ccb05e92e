// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: faturas/v1/faturas.proto

package faturasv1

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

type Customer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string                 `protobuf:"bytes,3,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	HolderTaxId   string                 `protobuf:"bytes,4,opt,name=holder_tax_id,json=holderTaxId,proto3" json:"holder_tax_id,omitempty"`
	BirthDate     string                 `protobuf:"bytes,5,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"` // YYYY-MM-DD
	Address       string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         string                 `protobuf:"bytes,8,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Customer) Reset() {
	*x = Customer{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Customer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Customer) ProtoMessage() {}

func (x *Customer) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Customer.ProtoReflect.Descriptor instead.
func (*Customer) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{0}
}

func (x *Customer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Customer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Customer) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *Customer) GetHolderTaxId() string {
	if x != nil {
		return x.HolderTaxId
	}
	return ""
}

func (x *Customer) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *Customer) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Customer) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Customer) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Customer) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Customer) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type BillingUnit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	Kind          string                 `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	StartedAt     string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"` // YYYY-MM-DD
	RetiredAt     string                 `protobuf:"bytes,7,opt,name=retired_at,json=retiredAt,proto3" json:"retired_at,omitempty"` // YYYY-MM-DD, empty while the unit is active
	Active        bool                   `protobuf:"varint,8,opt,name=active,proto3" json:"active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillingUnit) Reset() {
	*x = BillingUnit{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillingUnit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillingUnit) ProtoMessage() {}

func (x *BillingUnit) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillingUnit.ProtoReflect.Descriptor instead.
func (*BillingUnit) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{1}
}

func (x *BillingUnit) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BillingUnit) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *BillingUnit) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *BillingUnit) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *BillingUnit) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *BillingUnit) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *BillingUnit) GetRetiredAt() string {
	if x != nil {
		return x.RetiredAt
	}
	return ""
}

func (x *BillingUnit) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *BillingUnit) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *BillingUnit) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Invoice struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UnitId          string                 `protobuf:"bytes,2,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	ReferencePeriod string                 `protobuf:"bytes,3,opt,name=reference_period,json=referencePeriod,proto3" json:"reference_period,omitempty"` // MM/YYYY
	Amount          string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`                                          // decimal string, empty when unknown
	DueDate         string                 `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`                         // YYYY-MM-DD
	DocumentRef     string                 `protobuf:"bytes,6,opt,name=document_ref,json=documentRef,proto3" json:"document_ref,omitempty"`
	RetrievedAt     string                 `protobuf:"bytes,7,opt,name=retrieved_at,json=retrievedAt,proto3" json:"retrieved_at,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{2}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *Invoice) GetReferencePeriod() string {
	if x != nil {
		return x.ReferencePeriod
	}
	return ""
}

func (x *Invoice) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetDocumentRef() string {
	if x != nil {
		return x.DocumentRef
	}
	return ""
}

func (x *Invoice) GetRetrievedAt() string {
	if x != nil {
		return x.RetrievedAt
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ImportTask struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UnitId          string                 `protobuf:"bytes,2,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	ReferencePeriod string                 `protobuf:"bytes,3,opt,name=reference_period,json=referencePeriod,proto3" json:"reference_period,omitempty"` // MM/YYYY
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`                                          // PENDING | IN_PROGRESS | SUCCESS | FAILURE
	ErrorMessage    string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CompletedAt     string                 `protobuf:"bytes,6,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ImportTask) Reset() {
	*x = ImportTask{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportTask) ProtoMessage() {}

func (x *ImportTask) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportTask.ProtoReflect.Descriptor instead.
func (*ImportTask) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{3}
}

func (x *ImportTask) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportTask) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *ImportTask) GetReferencePeriod() string {
	if x != nil {
		return x.ReferencePeriod
	}
	return ""
}

func (x *ImportTask) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportTask) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ImportTask) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *ImportTask) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateCustomerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TaxId         string                 `protobuf:"bytes,2,opt,name=tax_id,json=taxId,proto3" json:"tax_id,omitempty"`
	HolderTaxId   string                 `protobuf:"bytes,3,opt,name=holder_tax_id,json=holderTaxId,proto3" json:"holder_tax_id,omitempty"`
	BirthDate     string                 `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"` // YYYY-MM-DD
	Address       string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         string                 `protobuf:"bytes,7,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerRequest) Reset() {
	*x = CreateCustomerRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerRequest) ProtoMessage() {}

func (x *CreateCustomerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerRequest.ProtoReflect.Descriptor instead.
func (*CreateCustomerRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{4}
}

func (x *CreateCustomerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCustomerRequest) GetTaxId() string {
	if x != nil {
		return x.TaxId
	}
	return ""
}

func (x *CreateCustomerRequest) GetHolderTaxId() string {
	if x != nil {
		return x.HolderTaxId
	}
	return ""
}

func (x *CreateCustomerRequest) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *CreateCustomerRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateCustomerRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateCustomerRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CreateCustomerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Customer      *Customer              `protobuf:"bytes,1,opt,name=customer,proto3" json:"customer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerResponse) Reset() {
	*x = CreateCustomerResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerResponse) ProtoMessage() {}

func (x *CreateCustomerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerResponse.ProtoReflect.Descriptor instead.
func (*CreateCustomerResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{5}
}

func (x *CreateCustomerResponse) GetCustomer() *Customer {
	if x != nil {
		return x.Customer
	}
	return nil
}

type ListCustomersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCustomersRequest) Reset() {
	*x = ListCustomersRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCustomersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCustomersRequest) ProtoMessage() {}

func (x *ListCustomersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCustomersRequest.ProtoReflect.Descriptor instead.
func (*ListCustomersRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{6}
}

type ListCustomersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Customers     []*Customer            `protobuf:"bytes,1,rep,name=customers,proto3" json:"customers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCustomersResponse) Reset() {
	*x = ListCustomersResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCustomersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCustomersResponse) ProtoMessage() {}

func (x *ListCustomersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCustomersResponse.ProtoReflect.Descriptor instead.
func (*ListCustomersResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{7}
}

func (x *ListCustomersResponse) GetCustomers() []*Customer {
	if x != nil {
		return x.Customers
	}
	return nil
}

type RegisterUnitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Kind          string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`                            // defaults to Residencial
	StartedAt     string                 `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"` // YYYY-MM-DD, defaults to today
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterUnitRequest) Reset() {
	*x = RegisterUnitRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterUnitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterUnitRequest) ProtoMessage() {}

func (x *RegisterUnitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterUnitRequest.ProtoReflect.Descriptor instead.
func (*RegisterUnitRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{8}
}

func (x *RegisterUnitRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *RegisterUnitRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *RegisterUnitRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *RegisterUnitRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *RegisterUnitRequest) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

type RegisterUnitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Unit          *BillingUnit           `protobuf:"bytes,1,opt,name=unit,proto3" json:"unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterUnitResponse) Reset() {
	*x = RegisterUnitResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterUnitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterUnitResponse) ProtoMessage() {}

func (x *RegisterUnitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterUnitResponse.ProtoReflect.Descriptor instead.
func (*RegisterUnitResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{9}
}

func (x *RegisterUnitResponse) GetUnit() *BillingUnit {
	if x != nil {
		return x.Unit
	}
	return nil
}

type ListUnitsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CustomerId     string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	IncludeRetired bool                   `protobuf:"varint,2,opt,name=include_retired,json=includeRetired,proto3" json:"include_retired,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListUnitsRequest) Reset() {
	*x = ListUnitsRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnitsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnitsRequest) ProtoMessage() {}

func (x *ListUnitsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnitsRequest.ProtoReflect.Descriptor instead.
func (*ListUnitsRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{10}
}

func (x *ListUnitsRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ListUnitsRequest) GetIncludeRetired() bool {
	if x != nil {
		return x.IncludeRetired
	}
	return false
}

type ListUnitsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Units         []*BillingUnit         `protobuf:"bytes,1,rep,name=units,proto3" json:"units,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUnitsResponse) Reset() {
	*x = ListUnitsResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnitsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnitsResponse) ProtoMessage() {}

func (x *ListUnitsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnitsResponse.ProtoReflect.Descriptor instead.
func (*ListUnitsResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{11}
}

func (x *ListUnitsResponse) GetUnits() []*BillingUnit {
	if x != nil {
		return x.Units
	}
	return nil
}

type SetUnitStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnitId        string                 `protobuf:"bytes,1,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	Active        bool                   `protobuf:"varint,2,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUnitStatusRequest) Reset() {
	*x = SetUnitStatusRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUnitStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUnitStatusRequest) ProtoMessage() {}

func (x *SetUnitStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUnitStatusRequest.ProtoReflect.Descriptor instead.
func (*SetUnitStatusRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{12}
}

func (x *SetUnitStatusRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *SetUnitStatusRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SetUnitStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Unit          *BillingUnit           `protobuf:"bytes,1,opt,name=unit,proto3" json:"unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUnitStatusResponse) Reset() {
	*x = SetUnitStatusResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUnitStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUnitStatusResponse) ProtoMessage() {}

func (x *SetUnitStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUnitStatusResponse.ProtoReflect.Descriptor instead.
func (*SetUnitStatusResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{13}
}

func (x *SetUnitStatusResponse) GetUnit() *BillingUnit {
	if x != nil {
		return x.Unit
	}
	return nil
}

type Diagnostic struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Level         string                 `protobuf:"bytes,1,opt,name=level,proto3" json:"level,omitempty"` // warn | info
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Diagnostic) Reset() {
	*x = Diagnostic{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Diagnostic) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Diagnostic) ProtoMessage() {}

func (x *Diagnostic) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Diagnostic.ProtoReflect.Descriptor instead.
func (*Diagnostic) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{14}
}

func (x *Diagnostic) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *Diagnostic) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *Diagnostic) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type PreviewExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewExtractionRequest) Reset() {
	*x = PreviewExtractionRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewExtractionRequest) ProtoMessage() {}

func (x *PreviewExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewExtractionRequest.ProtoReflect.Descriptor instead.
func (*PreviewExtractionRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{15}
}

func (x *PreviewExtractionRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *PreviewExtractionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type PreviewExtractionResponse struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Status      string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // success | error
	ErrorDetail string                 `protobuf:"bytes,2,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	// fields_json is the extraction result's closed field set, serialized
	// with the documented camelCase keys.
	FieldsJson    string        `protobuf:"bytes,3,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"`
	Diagnostics   []*Diagnostic `protobuf:"bytes,4,rep,name=diagnostics,proto3" json:"diagnostics,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewExtractionResponse) Reset() {
	*x = PreviewExtractionResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewExtractionResponse) ProtoMessage() {}

func (x *PreviewExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewExtractionResponse.ProtoReflect.Descriptor instead.
func (*PreviewExtractionResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{16}
}

func (x *PreviewExtractionResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *PreviewExtractionResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

func (x *PreviewExtractionResponse) GetFieldsJson() string {
	if x != nil {
		return x.FieldsJson
	}
	return ""
}

func (x *PreviewExtractionResponse) GetDiagnostics() []*Diagnostic {
	if x != nil {
		return x.Diagnostics
	}
	return nil
}

type InvoiceDocument struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Path        string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Name        string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DocumentRef string                 `protobuf:"bytes,3,opt,name=document_ref,json=documentRef,proto3" json:"document_ref,omitempty"`
	// unit_code overrides the extracted unit identifier.
	UnitCode string `protobuf:"bytes,4,opt,name=unit_code,json=unitCode,proto3" json:"unit_code,omitempty"`
	// period overrides the extracted reference period, MM/YYYY.
	Period string `protobuf:"bytes,5,opt,name=period,proto3" json:"period,omitempty"`
	// fields_json skips extraction entirely; validated against the closed
	// field-set schema.
	FieldsJson    string `protobuf:"bytes,6,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"`
	Force         bool   `protobuf:"varint,7,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceDocument) Reset() {
	*x = InvoiceDocument{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceDocument) ProtoMessage() {}

func (x *InvoiceDocument) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceDocument.ProtoReflect.Descriptor instead.
func (*InvoiceDocument) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{17}
}

func (x *InvoiceDocument) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *InvoiceDocument) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *InvoiceDocument) GetDocumentRef() string {
	if x != nil {
		return x.DocumentRef
	}
	return ""
}

func (x *InvoiceDocument) GetUnitCode() string {
	if x != nil {
		return x.UnitCode
	}
	return ""
}

func (x *InvoiceDocument) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *InvoiceDocument) GetFieldsJson() string {
	if x != nil {
		return x.FieldsJson
	}
	return ""
}

func (x *InvoiceDocument) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type Conflict struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Kind         string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"` // OWNERSHIP_CONFLICT | DUPLICATE_INVOICE
	DocumentName string                 `protobuf:"bytes,2,opt,name=document_name,json=documentName,proto3" json:"document_name,omitempty"`
	UnitCode     string                 `protobuf:"bytes,3,opt,name=unit_code,json=unitCode,proto3" json:"unit_code,omitempty"`
	Period       string                 `protobuf:"bytes,4,opt,name=period,proto3" json:"period,omitempty"`
	Message      string                 `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	// actual owner of the unit, set on ownership conflicts
	OwnerCustomerId string `protobuf:"bytes,6,opt,name=owner_customer_id,json=ownerCustomerId,proto3" json:"owner_customer_id,omitempty"`
	OwnerName       string `protobuf:"bytes,7,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Conflict) Reset() {
	*x = Conflict{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Conflict) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Conflict) ProtoMessage() {}

func (x *Conflict) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Conflict.ProtoReflect.Descriptor instead.
func (*Conflict) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{18}
}

func (x *Conflict) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Conflict) GetDocumentName() string {
	if x != nil {
		return x.DocumentName
	}
	return ""
}

func (x *Conflict) GetUnitCode() string {
	if x != nil {
		return x.UnitCode
	}
	return ""
}

func (x *Conflict) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *Conflict) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Conflict) GetOwnerCustomerId() string {
	if x != nil {
		return x.OwnerCustomerId
	}
	return ""
}

func (x *Conflict) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

type DocumentError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentName  string                 `protobuf:"bytes,1,opt,name=document_name,json=documentName,proto3" json:"document_name,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentError) Reset() {
	*x = DocumentError{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentError) ProtoMessage() {}

func (x *DocumentError) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentError.ProtoReflect.Descriptor instead.
func (*DocumentError) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{19}
}

func (x *DocumentError) GetDocumentName() string {
	if x != nil {
		return x.DocumentName
	}
	return ""
}

func (x *DocumentError) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *DocumentError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type UploadInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Documents     []*InvoiceDocument     `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadInvoicesRequest) Reset() {
	*x = UploadInvoicesRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadInvoicesRequest) ProtoMessage() {}

func (x *UploadInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadInvoicesRequest.ProtoReflect.Descriptor instead.
func (*UploadInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{20}
}

func (x *UploadInvoicesRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *UploadInvoicesRequest) GetDocuments() []*InvoiceDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type UploadInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Created       []*Invoice             `protobuf:"bytes,1,rep,name=created,proto3" json:"created,omitempty"`
	Conflicts     []*Conflict            `protobuf:"bytes,2,rep,name=conflicts,proto3" json:"conflicts,omitempty"`
	Errors        []*DocumentError       `protobuf:"bytes,3,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadInvoicesResponse) Reset() {
	*x = UploadInvoicesResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadInvoicesResponse) ProtoMessage() {}

func (x *UploadInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadInvoicesResponse.ProtoReflect.Descriptor instead.
func (*UploadInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{21}
}

func (x *UploadInvoicesResponse) GetCreated() []*Invoice {
	if x != nil {
		return x.Created
	}
	return nil
}

func (x *UploadInvoicesResponse) GetConflicts() []*Conflict {
	if x != nil {
		return x.Conflicts
	}
	return nil
}

func (x *UploadInvoicesResponse) GetErrors() []*DocumentError {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	UnitId        string                 `protobuf:"bytes,2,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"` // optional, narrows to one unit
	Year          int32                  `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`                  // optional, 0 = all years
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{22}
}

func (x *ListInvoicesRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ListInvoicesRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *ListInvoicesRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{23}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type UpdateInvoiceRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId       string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	ReferencePeriod string                 `protobuf:"bytes,2,opt,name=reference_period,json=referencePeriod,proto3" json:"reference_period,omitempty"` // MM/YYYY, empty = unchanged
	Amount          string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`                                          // decimal string, empty = unchanged
	DueDate         string                 `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`                         // YYYY-MM-DD, empty = unchanged
	DocumentRef     string                 `protobuf:"bytes,5,opt,name=document_ref,json=documentRef,proto3" json:"document_ref,omitempty"`             // empty = unchanged
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateInvoiceRequest) Reset() {
	*x = UpdateInvoiceRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInvoiceRequest) ProtoMessage() {}

func (x *UpdateInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInvoiceRequest.ProtoReflect.Descriptor instead.
func (*UpdateInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{24}
}

func (x *UpdateInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *UpdateInvoiceRequest) GetReferencePeriod() string {
	if x != nil {
		return x.ReferencePeriod
	}
	return ""
}

func (x *UpdateInvoiceRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *UpdateInvoiceRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *UpdateInvoiceRequest) GetDocumentRef() string {
	if x != nil {
		return x.DocumentRef
	}
	return ""
}

type UpdateInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInvoiceResponse) Reset() {
	*x = UpdateInvoiceResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInvoiceResponse) ProtoMessage() {}

func (x *UpdateInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInvoiceResponse.ProtoReflect.Descriptor instead.
func (*UpdateInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{25}
}

func (x *UpdateInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListImportTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	UnitId        string                 `protobuf:"bytes,2,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"` // optional
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`                // 0 = server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportTasksRequest) Reset() {
	*x = ListImportTasksRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportTasksRequest) ProtoMessage() {}

func (x *ListImportTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportTasksRequest.ProtoReflect.Descriptor instead.
func (*ListImportTasksRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{26}
}

func (x *ListImportTasksRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ListImportTasksRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *ListImportTasksRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListImportTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*ImportTask          `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportTasksResponse) Reset() {
	*x = ListImportTasksResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportTasksResponse) ProtoMessage() {}

func (x *ListImportTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportTasksResponse.ProtoReflect.Descriptor instead.
func (*ListImportTasksResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{27}
}

func (x *ListImportTasksResponse) GetTasks() []*ImportTask {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Year          int32                  `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"` // 0 = all years
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{28}
}

func (x *ExportInvoicesRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_faturas_v1_faturas_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_faturas_v1_faturas_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_faturas_v1_faturas_proto_rawDescGZIP(), []int{29}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_faturas_v1_faturas_proto protoreflect.FileDescriptor

const file_faturas_v1_faturas_proto_rawDesc = "" +
	"\n" +
	"\x18faturas/v1/faturas.proto\x12\n" +
	"faturas.v1\"\x8c\x02\n" +
	"\bCustomer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x03 \x01(\tR\x05taxId\x12\"\n" +
	"\rholder_tax_id\x18\x04 \x01(\tR\vholderTaxId\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x05 \x01(\tR\tbirthDate\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\a \x01(\tR\x05phone\x12\x14\n" +
	"\x05email\x18\b \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\x94\x02\n" +
	"\vBillingUnit\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\tR\n" +
	"customerId\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x12\n" +
	"\x04kind\x18\x05 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1d\n" +
	"\n" +
	"retired_at\x18\a \x01(\tR\tretiredAt\x12\x16\n" +
	"\x06active\x18\b \x01(\bR\x06active\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\x94\x02\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aunit_id\x18\x02 \x01(\tR\x06unitId\x12)\n" +
	"\x10reference_period\x18\x03 \x01(\tR\x0freferencePeriod\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\tR\x06amount\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12!\n" +
	"\fdocument_ref\x18\x06 \x01(\tR\vdocumentRef\x12!\n" +
	"\fretrieved_at\x18\a \x01(\tR\vretrievedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xdf\x01\n" +
	"\n" +
	"ImportTask\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aunit_id\x18\x02 \x01(\tR\x06unitId\x12)\n" +
	"\x10reference_period\x18\x03 \x01(\tR\x0freferencePeriod\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12!\n" +
	"\fcompleted_at\x18\x06 \x01(\tR\vcompletedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\xcb\x01\n" +
	"\x15CreateCustomerRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x15\n" +
	"\x06tax_id\x18\x02 \x01(\tR\x05taxId\x12\"\n" +
	"\rholder_tax_id\x18\x03 \x01(\tR\vholderTaxId\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x14\n" +
	"\x05email\x18\a \x01(\tR\x05email\"J\n" +
	"\x16CreateCustomerResponse\x120\n" +
	"\bcustomer\x18\x01 \x01(\v2\x14.faturas.v1.CustomerR\bcustomer\"\x16\n" +
	"\x14ListCustomersRequest\"K\n" +
	"\x15ListCustomersResponse\x122\n" +
	"\tcustomers\x18\x01 \x03(\v2\x14.faturas.v1.CustomerR\tcustomers\"\x97\x01\n" +
	"\x13RegisterUnitRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x1d\n" +
	"\n" +
	"started_at\x18\x05 \x01(\tR\tstartedAt\"C\n" +
	"\x14RegisterUnitResponse\x12+\n" +
	"\x04unit\x18\x01 \x01(\v2\x17.faturas.v1.BillingUnitR\x04unit\"\\\n" +
	"\x10ListUnitsRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12'\n" +
	"\x0finclude_retired\x18\x02 \x01(\bR\x0eincludeRetired\"B\n" +
	"\x11ListUnitsResponse\x12-\n" +
	"\x05units\x18\x01 \x03(\v2\x17.faturas.v1.BillingUnitR\x05units\"G\n" +
	"\x14SetUnitStatusRequest\x12\x17\n" +
	"\aunit_id\x18\x01 \x01(\tR\x06unitId\x12\x16\n" +
	"\x06active\x18\x02 \x01(\bR\x06active\"D\n" +
	"\x15SetUnitStatusResponse\x12+\n" +
	"\x04unit\x18\x01 \x01(\v2\x17.faturas.v1.BillingUnitR\x04unit\"R\n" +
	"\n" +
	"Diagnostic\x12\x14\n" +
	"\x05level\x18\x01 \x01(\tR\x05level\x12\x14\n" +
	"\x05field\x18\x02 \x01(\tR\x05field\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"B\n" +
	"\x18PreviewExtractionRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\xb1\x01\n" +
	"\x19PreviewExtractionResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12!\n" +
	"\ferror_detail\x18\x02 \x01(\tR\verrorDetail\x12\x1f\n" +
	"\vfields_json\x18\x03 \x01(\tR\n" +
	"fieldsJson\x128\n" +
	"\vdiagnostics\x18\x04 \x03(\v2\x16.faturas.v1.DiagnosticR\vdiagnostics\"\xc8\x01\n" +
	"\x0fInvoiceDocument\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fdocument_ref\x18\x03 \x01(\tR\vdocumentRef\x12\x1b\n" +
	"\tunit_code\x18\x04 \x01(\tR\bunitCode\x12\x16\n" +
	"\x06period\x18\x05 \x01(\tR\x06period\x12\x1f\n" +
	"\vfields_json\x18\x06 \x01(\tR\n" +
	"fieldsJson\x12\x14\n" +
	"\x05force\x18\a \x01(\bR\x05force\"\xdd\x01\n" +
	"\bConflict\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12#\n" +
	"\rdocument_name\x18\x02 \x01(\tR\fdocumentName\x12\x1b\n" +
	"\tunit_code\x18\x03 \x01(\tR\bunitCode\x12\x16\n" +
	"\x06period\x18\x04 \x01(\tR\x06period\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\x12*\n" +
	"\x11owner_customer_id\x18\x06 \x01(\tR\x0fownerCustomerId\x12\x1d\n" +
	"\n" +
	"owner_name\x18\a \x01(\tR\townerName\"b\n" +
	"\rDocumentError\x12#\n" +
	"\rdocument_name\x18\x01 \x01(\tR\fdocumentName\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"s\n" +
	"\x15UploadInvoicesRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x129\n" +
	"\tdocuments\x18\x02 \x03(\v2\x1b.faturas.v1.InvoiceDocumentR\tdocuments\"\xae\x01\n" +
	"\x16UploadInvoicesResponse\x12-\n" +
	"\acreated\x18\x01 \x03(\v2\x13.faturas.v1.InvoiceR\acreated\x122\n" +
	"\tconflicts\x18\x02 \x03(\v2\x14.faturas.v1.ConflictR\tconflicts\x121\n" +
	"\x06errors\x18\x03 \x03(\v2\x19.faturas.v1.DocumentErrorR\x06errors\"c\n" +
	"\x13ListInvoicesRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12\x17\n" +
	"\aunit_id\x18\x02 \x01(\tR\x06unitId\x12\x12\n" +
	"\x04year\x18\x03 \x01(\x05R\x04year\"G\n" +
	"\x14ListInvoicesResponse\x12/\n" +
	"\binvoices\x18\x01 \x03(\v2\x13.faturas.v1.InvoiceR\binvoices\"\xb6\x01\n" +
	"\x14UpdateInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12)\n" +
	"\x10reference_period\x18\x02 \x01(\tR\x0freferencePeriod\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\x12!\n" +
	"\fdocument_ref\x18\x05 \x01(\tR\vdocumentRef\"F\n" +
	"\x15UpdateInvoiceResponse\x12-\n" +
	"\ainvoice\x18\x01 \x01(\v2\x13.faturas.v1.InvoiceR\ainvoice\"h\n" +
	"\x16ListImportTasksRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12\x17\n" +
	"\aunit_id\x18\x02 \x01(\tR\x06unitId\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"G\n" +
	"\x17ListImportTasksResponse\x12,\n" +
	"\x05tasks\x18\x01 \x03(\v2\x16.faturas.v1.ImportTaskR\x05tasks\"L\n" +
	"\x15ExportInvoicesRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb4\x03\n" +
	"\x10CustomersService\x12W\n" +
	"\x0eCreateCustomer\x12!.faturas.v1.CreateCustomerRequest\x1a\".faturas.v1.CreateCustomerResponse\x12T\n" +
	"\rListCustomers\x12 .faturas.v1.ListCustomersRequest\x1a!.faturas.v1.ListCustomersResponse\x12Q\n" +
	"\fRegisterUnit\x12\x1f.faturas.v1.RegisterUnitRequest\x1a .faturas.v1.RegisterUnitResponse\x12H\n" +
	"\tListUnits\x12\x1c.faturas.v1.ListUnitsRequest\x1a\x1d.faturas.v1.ListUnitsResponse\x12T\n" +
	"\rSetUnitStatus\x12 .faturas.v1.SetUnitStatusRequest\x1a!.faturas.v1.SetUnitStatusResponse2\xcd\x01\n" +
	"\x10IngestionService\x12`\n" +
	"\x11PreviewExtraction\x12$.faturas.v1.PreviewExtractionRequest\x1a%.faturas.v1.PreviewExtractionResponse\x12W\n" +
	"\x0eUploadInvoices\x12!.faturas.v1.UploadInvoicesRequest\x1a\".faturas.v1.UploadInvoicesResponse2\x96\x02\n" +
	"\x0fInvoicesService\x12Q\n" +
	"\fListInvoices\x12\x1f.faturas.v1.ListInvoicesRequest\x1a .faturas.v1.ListInvoicesResponse\x12T\n" +
	"\rUpdateInvoice\x12 .faturas.v1.UpdateInvoiceRequest\x1a!.faturas.v1.UpdateInvoiceResponse\x12Z\n" +
	"\x0fListImportTasks\x12\".faturas.v1.ListImportTasksRequest\x1a#.faturas.v1.ListImportTasksResponse2h\n" +
	"\rExportService\x12W\n" +
	"\x0eExportInvoices\x12!.faturas.v1.ExportInvoicesRequest\x1a\".faturas.v1.ExportInvoicesResponseB@Z>github.com/lucasveras/faturahub/gen/proto/faturas/v1;faturasv1b\x06proto3"

var (
	file_faturas_v1_faturas_proto_rawDescOnce sync.Once
	file_faturas_v1_faturas_proto_rawDescData []byte
)

func file_faturas_v1_faturas_proto_rawDescGZIP() []byte {
	file_faturas_v1_faturas_proto_rawDescOnce.Do(func() {
		file_faturas_v1_faturas_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_faturas_v1_faturas_proto_rawDesc), len(file_faturas_v1_faturas_proto_rawDesc)))
	})
	return file_faturas_v1_faturas_proto_rawDescData
}

var file_faturas_v1_faturas_proto_msgTypes = make([]protoimpl.MessageInfo, 30)
var file_faturas_v1_faturas_proto_goTypes = []any{
	(*Customer)(nil),                  // 0: faturas.v1.Customer
	(*BillingUnit)(nil),               // 1: faturas.v1.BillingUnit
	(*Invoice)(nil),                   // 2: faturas.v1.Invoice
	(*ImportTask)(nil),                // 3: faturas.v1.ImportTask
	(*CreateCustomerRequest)(nil),     // 4: faturas.v1.CreateCustomerRequest
	(*CreateCustomerResponse)(nil),    // 5: faturas.v1.CreateCustomerResponse
	(*ListCustomersRequest)(nil),      // 6: faturas.v1.ListCustomersRequest
	(*ListCustomersResponse)(nil),     // 7: faturas.v1.ListCustomersResponse
	(*RegisterUnitRequest)(nil),       // 8: faturas.v1.RegisterUnitRequest
	(*RegisterUnitResponse)(nil),      // 9: faturas.v1.RegisterUnitResponse
	(*ListUnitsRequest)(nil),          // 10: faturas.v1.ListUnitsRequest
	(*ListUnitsResponse)(nil),         // 11: faturas.v1.ListUnitsResponse
	(*SetUnitStatusRequest)(nil),      // 12: faturas.v1.SetUnitStatusRequest
	(*SetUnitStatusResponse)(nil),     // 13: faturas.v1.SetUnitStatusResponse
	(*Diagnostic)(nil),                // 14: faturas.v1.Diagnostic
	(*PreviewExtractionRequest)(nil),  // 15: faturas.v1.PreviewExtractionRequest
	(*PreviewExtractionResponse)(nil), // 16: faturas.v1.PreviewExtractionResponse
	(*InvoiceDocument)(nil),           // 17: faturas.v1.InvoiceDocument
	(*Conflict)(nil),                  // 18: faturas.v1.Conflict
	(*DocumentError)(nil),             // 19: faturas.v1.DocumentError
	(*UploadInvoicesRequest)(nil),     // 20: faturas.v1.UploadInvoicesRequest
	(*UploadInvoicesResponse)(nil),    // 21: faturas.v1.UploadInvoicesResponse
	(*ListInvoicesRequest)(nil),       // 22: faturas.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),      // 23: faturas.v1.ListInvoicesResponse
	(*UpdateInvoiceRequest)(nil),      // 24: faturas.v1.UpdateInvoiceRequest
	(*UpdateInvoiceResponse)(nil),     // 25: faturas.v1.UpdateInvoiceResponse
	(*ListImportTasksRequest)(nil),    // 26: faturas.v1.ListImportTasksRequest
	(*ListImportTasksResponse)(nil),   // 27: faturas.v1.ListImportTasksResponse
	(*ExportInvoicesRequest)(nil),     // 28: faturas.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),    // 29: faturas.v1.ExportInvoicesResponse
}
var file_faturas_v1_faturas_proto_depIdxs = []int32{
	0,  // 0: faturas.v1.CreateCustomerResponse.customer:type_name -> faturas.v1.Customer
	0,  // 1: faturas.v1.ListCustomersResponse.customers:type_name -> faturas.v1.Customer
	1,  // 2: faturas.v1.RegisterUnitResponse.unit:type_name -> faturas.v1.BillingUnit
	1,  // 3: faturas.v1.ListUnitsResponse.units:type_name -> faturas.v1.BillingUnit
	1,  // 4: faturas.v1.SetUnitStatusResponse.unit:type_name -> faturas.v1.BillingUnit
	14, // 5: faturas.v1.PreviewExtractionResponse.diagnostics:type_name -> faturas.v1.Diagnostic
	17, // 6: faturas.v1.UploadInvoicesRequest.documents:type_name -> faturas.v1.InvoiceDocument
	2,  // 7: faturas.v1.UploadInvoicesResponse.created:type_name -> faturas.v1.Invoice
	18, // 8: faturas.v1.UploadInvoicesResponse.conflicts:type_name -> faturas.v1.Conflict
	19, // 9: faturas.v1.UploadInvoicesResponse.errors:type_name -> faturas.v1.DocumentError
	2,  // 10: faturas.v1.ListInvoicesResponse.invoices:type_name -> faturas.v1.Invoice
	2,  // 11: faturas.v1.UpdateInvoiceResponse.invoice:type_name -> faturas.v1.Invoice
	3,  // 12: faturas.v1.ListImportTasksResponse.tasks:type_name -> faturas.v1.ImportTask
	4,  // 13: faturas.v1.CustomersService.CreateCustomer:input_type -> faturas.v1.CreateCustomerRequest
	6,  // 14: faturas.v1.CustomersService.ListCustomers:input_type -> faturas.v1.ListCustomersRequest
	8,  // 15: faturas.v1.CustomersService.RegisterUnit:input_type -> faturas.v1.RegisterUnitRequest
	10, // 16: faturas.v1.CustomersService.ListUnits:input_type -> faturas.v1.ListUnitsRequest
	12, // 17: faturas.v1.CustomersService.SetUnitStatus:input_type -> faturas.v1.SetUnitStatusRequest
	15, // 18: faturas.v1.IngestionService.PreviewExtraction:input_type -> faturas.v1.PreviewExtractionRequest
	20, // 19: faturas.v1.IngestionService.UploadInvoices:input_type -> faturas.v1.UploadInvoicesRequest
	22, // 20: faturas.v1.InvoicesService.ListInvoices:input_type -> faturas.v1.ListInvoicesRequest
	24, // 21: faturas.v1.InvoicesService.UpdateInvoice:input_type -> faturas.v1.UpdateInvoiceRequest
	26, // 22: faturas.v1.InvoicesService.ListImportTasks:input_type -> faturas.v1.ListImportTasksRequest
	28, // 23: faturas.v1.ExportService.ExportInvoices:input_type -> faturas.v1.ExportInvoicesRequest
	5,  // 24: faturas.v1.CustomersService.CreateCustomer:output_type -> faturas.v1.CreateCustomerResponse
	7,  // 25: faturas.v1.CustomersService.ListCustomers:output_type -> faturas.v1.ListCustomersResponse
	9,  // 26: faturas.v1.CustomersService.RegisterUnit:output_type -> faturas.v1.RegisterUnitResponse
	11, // 27: faturas.v1.CustomersService.ListUnits:output_type -> faturas.v1.ListUnitsResponse
	13, // 28: faturas.v1.CustomersService.SetUnitStatus:output_type -> faturas.v1.SetUnitStatusResponse
	16, // 29: faturas.v1.IngestionService.PreviewExtraction:output_type -> faturas.v1.PreviewExtractionResponse
	21, // 30: faturas.v1.IngestionService.UploadInvoices:output_type -> faturas.v1.UploadInvoicesResponse
	23, // 31: faturas.v1.InvoicesService.ListInvoices:output_type -> faturas.v1.ListInvoicesResponse
	25, // 32: faturas.v1.InvoicesService.UpdateInvoice:output_type -> faturas.v1.UpdateInvoiceResponse
	27, // 33: faturas.v1.InvoicesService.ListImportTasks:output_type -> faturas.v1.ListImportTasksResponse
	29, // 34: faturas.v1.ExportService.ExportInvoices:output_type -> faturas.v1.ExportInvoicesResponse
	24, // [24:35] is the sub-list for method output_type
	13, // [13:24] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_faturas_v1_faturas_proto_init() }
func file_faturas_v1_faturas_proto_init() {
	if File_faturas_v1_faturas_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_faturas_v1_faturas_proto_rawDesc), len(file_faturas_v1_faturas_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   30,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_faturas_v1_faturas_proto_goTypes,
		DependencyIndexes: file_faturas_v1_faturas_proto_depIdxs,
		MessageInfos:      file_faturas_v1_faturas_proto_msgTypes,
	}.Build()
	File_faturas_v1_faturas_proto = out.File
	file_faturas_v1_faturas_proto_goTypes = nil
	file_faturas_v1_faturas_proto_depIdxs = nil
}
