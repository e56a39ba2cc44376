package universapb

import (
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"

	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ItemState int32

const (
	ItemState_UNDEFINED           ItemState = 0
	ItemState_PENDING             ItemState = 1
	ItemState_PENDING_POSITIVE    ItemState = 2
	ItemState_PENDING_NEGATIVE    ItemState = 3
	ItemState_APPROVED            ItemState = 4
	ItemState_DECLINED            ItemState = 5
	ItemState_REVOKED             ItemState = 6
	ItemState_LOCKED_FOR_CREATION ItemState = 7
	ItemState_DISCARDED           ItemState = 8
)

// Enum value maps for ItemState.
var (
	ItemState_name = map[int32]string{
		0: "UNDEFINED",
		1: "PENDING",
		2: "PENDING_POSITIVE",
		3: "PENDING_NEGATIVE",
		4: "APPROVED",
		5: "DECLINED",
		6: "REVOKED",
		7: "LOCKED_FOR_CREATION",
		8: "DISCARDED",
	}
	ItemState_value = map[string]int32{
		"UNDEFINED":           0,
		"PENDING":             1,
		"PENDING_POSITIVE":    2,
		"PENDING_NEGATIVE":    3,
		"APPROVED":            4,
		"DECLINED":            5,
		"REVOKED":             6,
		"LOCKED_FOR_CREATION": 7,
		"DISCARDED":           8,
	}
)

func (x ItemState) Enum() *ItemState {
	p := new(ItemState)
	*p = x
	return p
}

func (x ItemState) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ItemState) Descriptor() protoreflect.EnumDescriptor {
	return file_universa_proto_enumTypes[0].Descriptor()
}

func (ItemState) Type() protoreflect.EnumType {
	return &file_universa_proto_enumTypes[0]
}

func (x ItemState) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ItemState.Descriptor instead.
func (ItemState) EnumDescriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{0}
}

type ItemResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         ItemState              `protobuf:"varint,1,opt,name=state,proto3,enum=universa.ItemState" json:"state,omitempty"`
	ExpiresAt     int64                  `protobuf:"varint,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	HaveCopy      bool                   `protobuf:"varint,3,opt,name=have_copy,json=haveCopy,proto3" json:"have_copy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemResult) Reset() {
	*x = ItemResult{}
	mi := &file_universa_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemResult) ProtoMessage() {}

func (x *ItemResult) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemResult.ProtoReflect.Descriptor instead.
func (*ItemResult) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{0}
}

func (x *ItemResult) GetState() ItemState {
	if x != nil {
		return x.State
	}
	return ItemState_UNDEFINED
}

func (x *ItemResult) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *ItemResult) GetHaveCopy() bool {
	if x != nil {
		return x.HaveCopy
	}
	return false
}

type ItemNotification struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromNode      uint32                 `protobuf:"varint,1,opt,name=from_node,json=fromNode,proto3" json:"from_node,omitempty"`
	ItemId        []byte                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Result        *ItemResult            `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
	RequestAnswer bool                   `protobuf:"varint,4,opt,name=request_answer,json=requestAnswer,proto3" json:"request_answer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemNotification) Reset() {
	*x = ItemNotification{}
	mi := &file_universa_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemNotification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemNotification) ProtoMessage() {}

func (x *ItemNotification) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemNotification.ProtoReflect.Descriptor instead.
func (*ItemNotification) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{1}
}

func (x *ItemNotification) GetFromNode() uint32 {
	if x != nil {
		return x.FromNode
	}
	return 0
}

func (x *ItemNotification) GetItemId() []byte {
	if x != nil {
		return x.ItemId
	}
	return nil
}

func (x *ItemNotification) GetResult() *ItemResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ItemNotification) GetRequestAnswer() bool {
	if x != nil {
		return x.RequestAnswer
	}
	return false
}

type Ack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_universa_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ack.ProtoReflect.Descriptor instead.
func (*Ack) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{2}
}

type GetItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        []byte                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetItemRequest) Reset() {
	*x = GetItemRequest{}
	mi := &file_universa_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetItemRequest) ProtoMessage() {}

func (x *GetItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetItemRequest.ProtoReflect.Descriptor instead.
func (*GetItemRequest) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{3}
}

func (x *GetItemRequest) GetItemId() []byte {
	if x != nil {
		return x.ItemId
	}
	return nil
}

type GetItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Packed        []byte                 `protobuf:"bytes,1,opt,name=packed,proto3" json:"packed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetItemResponse) Reset() {
	*x = GetItemResponse{}
	mi := &file_universa_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetItemResponse) ProtoMessage() {}

func (x *GetItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetItemResponse.ProtoReflect.Descriptor instead.
func (*GetItemResponse) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{4}
}

func (x *GetItemResponse) GetPacked() []byte {
	if x != nil {
		return x.Packed
	}
	return nil
}

type PackedItem struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CreatedAt       int64                  `protobuf:"varint,1,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt       int64                  `protobuf:"varint,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	ReferencedItems [][]byte               `protobuf:"bytes,3,rep,name=referenced_items,json=referencedItems,proto3" json:"referenced_items,omitempty"`
	RevokingItems   []*PackedItem          `protobuf:"bytes,4,rep,name=revoking_items,json=revokingItems,proto3" json:"revoking_items,omitempty"`
	NewItems        []*PackedItem          `protobuf:"bytes,5,rep,name=new_items,json=newItems,proto3" json:"new_items,omitempty"`
	Payload         string                 `protobuf:"bytes,6,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PackedItem) Reset() {
	*x = PackedItem{}
	mi := &file_universa_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PackedItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PackedItem) ProtoMessage() {}

func (x *PackedItem) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PackedItem.ProtoReflect.Descriptor instead.
func (*PackedItem) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{5}
}

func (x *PackedItem) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *PackedItem) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *PackedItem) GetReferencedItems() [][]byte {
	if x != nil {
		return x.ReferencedItems
	}
	return nil
}

func (x *PackedItem) GetRevokingItems() []*PackedItem {
	if x != nil {
		return x.RevokingItems
	}
	return nil
}

func (x *PackedItem) GetNewItems() []*PackedItem {
	if x != nil {
		return x.NewItems
	}
	return nil
}

func (x *PackedItem) GetPayload() string {
	if x != nil {
		return x.Payload
	}
	return ""
}

type LedgerRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        []byte                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	State         ItemState              `protobuf:"varint,2,opt,name=state,proto3,enum=universa.ItemState" json:"state,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt     int64                  `protobuf:"varint,4,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	LockedBy      []byte                 `protobuf:"bytes,5,opt,name=locked_by,json=lockedBy,proto3" json:"locked_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LedgerRecord) Reset() {
	*x = LedgerRecord{}
	mi := &file_universa_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LedgerRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LedgerRecord) ProtoMessage() {}

func (x *LedgerRecord) ProtoReflect() protoreflect.Message {
	mi := &file_universa_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LedgerRecord.ProtoReflect.Descriptor instead.
func (*LedgerRecord) Descriptor() ([]byte, []int) {
	return file_universa_proto_rawDescGZIP(), []int{6}
}

func (x *LedgerRecord) GetItemId() []byte {
	if x != nil {
		return x.ItemId
	}
	return nil
}

func (x *LedgerRecord) GetState() ItemState {
	if x != nil {
		return x.State
	}
	return ItemState_UNDEFINED
}

func (x *LedgerRecord) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *LedgerRecord) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *LedgerRecord) GetLockedBy() []byte {
	if x != nil {
		return x.LockedBy
	}
	return nil
}

var File_universa_proto protoreflect.FileDescriptor

const file_universa_proto_rawDesc = "" +
	"\n" +
	"\x0euniversa.proto\x12\buniversa\"s\n" +
	"\n" +
	"ItemResult\x12)\n" +
	"\x05state\x18\x01 \x01(\x0e2\x13.universa.ItemStateR\x05state\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\x03R\texpiresAt\x12\x1b\n" +
	"\thave_copy\x18\x03 \x01(\bR\bhaveCopy\"\x9d\x01\n" +
	"\x10ItemNotification\x12\x1b\n" +
	"\tfrom_node\x18\x01 \x01(\rR\bfromNode\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\fR\x06itemId\x12,\n" +
	"\x06result\x18\x03 \x01(\v2\x14.universa.ItemResultR\x06result\x12%\n" +
	"\x0erequest_answer\x18\x04 \x01(\bR\rrequestAnswer\"\x05\n" +
	"\x03Ack\")\n" +
	"\x0eGetItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\fR\x06itemId\")\n" +
	"\x0fGetItemResponse\x12\x16\n" +
	"\x06packed\x18\x01 \x01(\fR\x06packed\"\xff\x01\n" +
	"\n" +
	"PackedItem\x12\x1d\n" +
	"\n" +
	"created_at\x18\x01 \x01(\x03R\tcreatedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\x03R\texpiresAt\x12)\n" +
	"\x10referenced_items\x18\x03 \x03(\fR\x0freferencedItems\x12;\n" +
	"\x0erevoking_items\x18\x04 \x03(\v2\x14.universa.PackedItemR\rrevokingItems\x121\n" +
	"\tnew_items\x18\x05 \x03(\v2\x14.universa.PackedItemR\bnewItems\x12\x18\n" +
	"\apayload\x18\x06 \x01(\tR\apayload\"\xad\x01\n" +
	"\fLedgerRecord\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\fR\x06itemId\x12)\n" +
	"\x05state\x18\x02 \x01(\x0e2\x13.universa.ItemStateR\x05state\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\x03R\tcreatedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x04 \x01(\x03R\texpiresAt\x12\x1b\n" +
	"\tlocked_by\x18\x05 \x01(\fR\blockedBy*\xa4\x01\n" +
	"\tItemState\x12\r\n" +
	"\tUNDEFINED\x10\x00\x12\v\n" +
	"\aPENDING\x10\x01\x12\x14\n" +
	"\x10PENDING_POSITIVE\x10\x02\x12\x14\n" +
	"\x10PENDING_NEGATIVE\x10\x03\x12\f\n" +
	"\bAPPROVED\x10\x04\x12\f\n" +
	"\bDECLINED\x10\x05\x12\v\n" +
	"\aREVOKED\x10\x06\x12\x17\n" +
	"\x13LOCKED_FOR_CREATION\x10\a\x12\r\n" +
	"\tDISCARDED\x10\b2\x83\x01\n" +
	"\fItemProtocol\x123\n" +
	"\x06Notify\x12\x1a.universa.ItemNotification\x1a\r.universa.Ack\x12>\n" +
	"\aGetItem\x12\x18.universa.GetItemRequest\x1a\x19.universa.GetItemResponseBNZLgithub.com/modsagraphy/universa/internal/transport/gen/universapb;universapbb\x06proto3"

var (
	file_universa_proto_rawDescOnce sync.Once
	file_universa_proto_rawDescData []byte
)

func file_universa_proto_rawDescGZIP() []byte {
	file_universa_proto_rawDescOnce.Do(func() {
		file_universa_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_universa_proto_rawDesc), len(file_universa_proto_rawDesc)))
	})
	return file_universa_proto_rawDescData
}

var file_universa_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_universa_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_universa_proto_goTypes = []any{
	(ItemState)(0),           // 0: universa.ItemState
	(*ItemResult)(nil),       // 1: universa.ItemResult
	(*ItemNotification)(nil), // 2: universa.ItemNotification
	(*Ack)(nil),              // 3: universa.Ack
	(*GetItemRequest)(nil),   // 4: universa.GetItemRequest
	(*GetItemResponse)(nil),  // 5: universa.GetItemResponse
	(*PackedItem)(nil),       // 6: universa.PackedItem
	(*LedgerRecord)(nil),     // 7: universa.LedgerRecord
}
var file_universa_proto_depIdxs = []int32{
	0, // 0: universa.ItemResult.state:type_name -> universa.ItemState
	1, // 1: universa.ItemNotification.result:type_name -> universa.ItemResult
	6, // 2: universa.PackedItem.revoking_items:type_name -> universa.PackedItem
	6, // 3: universa.PackedItem.new_items:type_name -> universa.PackedItem
	0, // 4: universa.LedgerRecord.state:type_name -> universa.ItemState
	2, // 5: universa.ItemProtocol.Notify:input_type -> universa.ItemNotification
	4, // 6: universa.ItemProtocol.GetItem:input_type -> universa.GetItemRequest
	3, // 7: universa.ItemProtocol.Notify:output_type -> universa.Ack
	5, // 8: universa.ItemProtocol.GetItem:output_type -> universa.GetItemResponse
	7, // [7:9] is the sub-list for method output_type
	5, // [5:7] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_universa_proto_init() }
func file_universa_proto_init() {
	if File_universa_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_universa_proto_rawDesc), len(file_universa_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_universa_proto_goTypes,
		DependencyIndexes: file_universa_proto_depIdxs,
		EnumInfos:         file_universa_proto_enumTypes,
		MessageInfos:      file_universa_proto_msgTypes,
	}.Build()
	File_universa_proto = out.File
	file_universa_proto_goTypes = nil
	file_universa_proto_depIdxs = nil
}
