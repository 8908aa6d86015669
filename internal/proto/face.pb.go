// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: face.proto

package proto

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

type FramePixels struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pixels        []byte                 `protobuf:"bytes,1,opt,name=pixels,proto3" json:"pixels,omitempty"`
	Width         int32                  `protobuf:"varint,2,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Channels      int32                  `protobuf:"varint,4,opt,name=channels,proto3" json:"channels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FramePixels) Reset() {
	*x = FramePixels{}
	mi := &file_face_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FramePixels) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FramePixels) ProtoMessage() {}

func (x *FramePixels) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FramePixels.ProtoReflect.Descriptor instead.
func (*FramePixels) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{0}
}

func (x *FramePixels) GetPixels() []byte {
	if x != nil {
		return x.Pixels
	}
	return nil
}

func (x *FramePixels) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *FramePixels) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *FramePixels) GetChannels() int32 {
	if x != nil {
		return x.Channels
	}
	return 0
}

type ExtractEmbeddingRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Frame            *FramePixels           `protobuf:"bytes,1,opt,name=frame,proto3" json:"frame,omitempty"`
	EnforceDetection bool                   `protobuf:"varint,2,opt,name=enforce_detection,json=enforceDetection,proto3" json:"enforce_detection,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractEmbeddingRequest) Reset() {
	*x = ExtractEmbeddingRequest{}
	mi := &file_face_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractEmbeddingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractEmbeddingRequest) ProtoMessage() {}

func (x *ExtractEmbeddingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractEmbeddingRequest.ProtoReflect.Descriptor instead.
func (*ExtractEmbeddingRequest) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractEmbeddingRequest) GetFrame() *FramePixels {
	if x != nil {
		return x.Frame
	}
	return nil
}

func (x *ExtractEmbeddingRequest) GetEnforceDetection() bool {
	if x != nil {
		return x.EnforceDetection
	}
	return false
}

type ExtractEmbeddingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FaceFound     bool                   `protobuf:"varint,1,opt,name=face_found,json=faceFound,proto3" json:"face_found,omitempty"`
	Vector        []float32              `protobuf:"fixed32,2,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ModelVersion  string                 `protobuf:"bytes,4,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractEmbeddingResponse) Reset() {
	*x = ExtractEmbeddingResponse{}
	mi := &file_face_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractEmbeddingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractEmbeddingResponse) ProtoMessage() {}

func (x *ExtractEmbeddingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractEmbeddingResponse.ProtoReflect.Descriptor instead.
func (*ExtractEmbeddingResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractEmbeddingResponse) GetFaceFound() bool {
	if x != nil {
		return x.FaceFound
	}
	return false
}

func (x *ExtractEmbeddingResponse) GetVector() []float32 {
	if x != nil {
		return x.Vector
	}
	return nil
}

func (x *ExtractEmbeddingResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractEmbeddingResponse) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

type DetectFaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Frame         *FramePixels           `protobuf:"bytes,1,opt,name=frame,proto3" json:"frame,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectFaceRequest) Reset() {
	*x = DetectFaceRequest{}
	mi := &file_face_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectFaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectFaceRequest) ProtoMessage() {}

func (x *DetectFaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectFaceRequest.ProtoReflect.Descriptor instead.
func (*DetectFaceRequest) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{3}
}

func (x *DetectFaceRequest) GetFrame() *FramePixels {
	if x != nil {
		return x.Frame
	}
	return nil
}

type DetectFaceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FaceFound     bool                   `protobuf:"varint,1,opt,name=face_found,json=faceFound,proto3" json:"face_found,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectFaceResponse) Reset() {
	*x = DetectFaceResponse{}
	mi := &file_face_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectFaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectFaceResponse) ProtoMessage() {}

func (x *DetectFaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectFaceResponse.ProtoReflect.Descriptor instead.
func (*DetectFaceResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{4}
}

func (x *DetectFaceResponse) GetFaceFound() bool {
	if x != nil {
		return x.FaceFound
	}
	return false
}

func (x *DetectFaceResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type PredictRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Features      []float64              `protobuf:"fixed64,1,rep,packed,name=features,proto3" json:"features,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictRequest) Reset() {
	*x = PredictRequest{}
	mi := &file_face_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictRequest) ProtoMessage() {}

func (x *PredictRequest) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictRequest.ProtoReflect.Descriptor instead.
func (*PredictRequest) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{5}
}

func (x *PredictRequest) GetFeatures() []float64 {
	if x != nil {
		return x.Features
	}
	return nil
}

type PredictExamScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         float64                `protobuf:"fixed64,1,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictExamScoreResponse) Reset() {
	*x = PredictExamScoreResponse{}
	mi := &file_face_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictExamScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictExamScoreResponse) ProtoMessage() {}

func (x *PredictExamScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictExamScoreResponse.ProtoReflect.Descriptor instead.
func (*PredictExamScoreResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{6}
}

func (x *PredictExamScoreResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

type PredictDropoutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Probability   float64                `protobuf:"fixed64,2,opt,name=probability,proto3" json:"probability,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictDropoutResponse) Reset() {
	*x = PredictDropoutResponse{}
	mi := &file_face_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictDropoutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictDropoutResponse) ProtoMessage() {}

func (x *PredictDropoutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictDropoutResponse.ProtoReflect.Descriptor instead.
func (*PredictDropoutResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{7}
}

func (x *PredictDropoutResponse) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *PredictDropoutResponse) GetProbability() float64 {
	if x != nil {
		return x.Probability
	}
	return 0
}

type FaceEnrolledEvent struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	EventId        string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	EventTimestamp int64                  `protobuf:"varint,2,opt,name=event_timestamp,json=eventTimestamp,proto3" json:"event_timestamp,omitempty"`
	RollNumber     string                 `protobuf:"bytes,3,opt,name=roll_number,json=rollNumber,proto3" json:"roll_number,omitempty"`
	ImageKey       string                 `protobuf:"bytes,4,opt,name=image_key,json=imageKey,proto3" json:"image_key,omitempty"`
	ModelVersion   string                 `protobuf:"bytes,5,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	VectorSize     int32                  `protobuf:"varint,6,opt,name=vector_size,json=vectorSize,proto3" json:"vector_size,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FaceEnrolledEvent) Reset() {
	*x = FaceEnrolledEvent{}
	mi := &file_face_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FaceEnrolledEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FaceEnrolledEvent) ProtoMessage() {}

func (x *FaceEnrolledEvent) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FaceEnrolledEvent.ProtoReflect.Descriptor instead.
func (*FaceEnrolledEvent) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{8}
}

func (x *FaceEnrolledEvent) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *FaceEnrolledEvent) GetEventTimestamp() int64 {
	if x != nil {
		return x.EventTimestamp
	}
	return 0
}

func (x *FaceEnrolledEvent) GetRollNumber() string {
	if x != nil {
		return x.RollNumber
	}
	return ""
}

func (x *FaceEnrolledEvent) GetImageKey() string {
	if x != nil {
		return x.ImageKey
	}
	return ""
}

func (x *FaceEnrolledEvent) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

func (x *FaceEnrolledEvent) GetVectorSize() int32 {
	if x != nil {
		return x.VectorSize
	}
	return 0
}

type RecognizeImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageData     []byte                 `protobuf:"bytes,1,opt,name=image_data,json=imageData,proto3" json:"image_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeImageRequest) Reset() {
	*x = RecognizeImageRequest{}
	mi := &file_face_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeImageRequest) ProtoMessage() {}

func (x *RecognizeImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeImageRequest.ProtoReflect.Descriptor instead.
func (*RecognizeImageRequest) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{9}
}

func (x *RecognizeImageRequest) GetImageData() []byte {
	if x != nil {
		return x.ImageData
	}
	return nil
}

type RecognizeImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        string                 `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	RollNumber    string                 `protobuf:"bytes,2,opt,name=roll_number,json=rollNumber,proto3" json:"roll_number,omitempty"`
	Distance      float64                `protobuf:"fixed64,3,opt,name=distance,proto3" json:"distance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecognizeImageResponse) Reset() {
	*x = RecognizeImageResponse{}
	mi := &file_face_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecognizeImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecognizeImageResponse) ProtoMessage() {}

func (x *RecognizeImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecognizeImageResponse.ProtoReflect.Descriptor instead.
func (*RecognizeImageResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{10}
}

func (x *RecognizeImageResponse) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

func (x *RecognizeImageResponse) GetRollNumber() string {
	if x != nil {
		return x.RollNumber
	}
	return ""
}

func (x *RecognizeImageResponse) GetDistance() float64 {
	if x != nil {
		return x.Distance
	}
	return 0
}

type GetEnrollmentStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RollNumber    string                 `protobuf:"bytes,1,opt,name=roll_number,json=rollNumber,proto3" json:"roll_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEnrollmentStatusRequest) Reset() {
	*x = GetEnrollmentStatusRequest{}
	mi := &file_face_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEnrollmentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEnrollmentStatusRequest) ProtoMessage() {}

func (x *GetEnrollmentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEnrollmentStatusRequest.ProtoReflect.Descriptor instead.
func (*GetEnrollmentStatusRequest) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{11}
}

func (x *GetEnrollmentStatusRequest) GetRollNumber() string {
	if x != nil {
		return x.RollNumber
	}
	return ""
}

type GetEnrollmentStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrolled      bool                   `protobuf:"varint,1,opt,name=enrolled,proto3" json:"enrolled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEnrollmentStatusResponse) Reset() {
	*x = GetEnrollmentStatusResponse{}
	mi := &file_face_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEnrollmentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEnrollmentStatusResponse) ProtoMessage() {}

func (x *GetEnrollmentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_face_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEnrollmentStatusResponse.ProtoReflect.Descriptor instead.
func (*GetEnrollmentStatusResponse) Descriptor() ([]byte, []int) {
	return file_face_proto_rawDescGZIP(), []int{12}
}

func (x *GetEnrollmentStatusResponse) GetEnrolled() bool {
	if x != nil {
		return x.Enrolled
	}
	return false
}

var File_face_proto protoreflect.FileDescriptor

const file_face_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"face.proto\x12\aface.v1\"o\n" +
	"\vFramePixels\x12\x16\n" +
	"\x06pixels\x18\x01 \x01(\fR\x06pixels\x12\x14\n" +
	"\x05width\x18\x02 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x03 \x01(\x05R\x06height\x12\x1a\n" +
	"\bchannels\x18\x04 \x01(\x05R\bchannels\"r\n" +
	"\x17ExtractEmbeddingRequest\x12*\n" +
	"\x05frame\x18\x01 \x01(\v2\x14.face.v1.FramePixelsR\x05frame\x12+\n" +
	"\x11enforce_detection\x18\x02 \x01(\bR\x10enforceDetection\"\x96\x01\n" +
	"\x18ExtractEmbeddingResponse\x12\x1d\n" +
	"\n" +
	"face_found\x18\x01 \x01(\bR\tfaceFound\x12\x16\n" +
	"\x06vector\x18\x02 \x03(\x02R\x06vector\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\rmodel_version\x18\x04 \x01(\tR\fmodelVersion\"?\n" +
	"\x11DetectFaceRequest\x12*\n" +
	"\x05frame\x18\x01 \x01(\v2\x14.face.v1.FramePixelsR\x05frame\"S\n" +
	"\x12DetectFaceResponse\x12\x1d\n" +
	"\n" +
	"face_found\x18\x01 \x01(\bR\tfaceFound\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\",\n" +
	"\x0ePredictRequest\x12\x1a\n" +
	"\bfeatures\x18\x01 \x03(\x01R\bfeatures\"0\n" +
	"\x18PredictExamScoreResponse\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x01R\x05score\"P\n" +
	"\x16PredictDropoutResponse\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12 \n" +
	"\vprobability\x18\x02 \x01(\x01R\vprobability\"\xdb\x01\n" +
	"\x11FaceEnrolledEvent\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x12'\n" +
	"\x0fevent_timestamp\x18\x02 \x01(\x03R\x0eeventTimestamp\x12\x1f\n" +
	"\vroll_number\x18\x03 \x01(\tR\n" +
	"rollNumber\x12\x1b\n" +
	"\timage_key\x18\x04 \x01(\tR\bimageKey\x12#\n" +
	"\rmodel_version\x18\x05 \x01(\tR\fmodelVersion\x12\x1f\n" +
	"\vvector_size\x18\x06 \x01(\x05R\n" +
	"vectorSize\"6\n" +
	"\x15RecognizeImageRequest\x12\x1d\n" +
	"\n" +
	"image_data\x18\x01 \x01(\fR\timageData\"m\n" +
	"\x16RecognizeImageResponse\x12\x16\n" +
	"\x06result\x18\x01 \x01(\tR\x06result\x12\x1f\n" +
	"\vroll_number\x18\x02 \x01(\tR\n" +
	"rollNumber\x12\x1a\n" +
	"\bdistance\x18\x03 \x01(\x01R\bdistance\"=\n" +
	"\x1aGetEnrollmentStatusRequest\x12\x1f\n" +
	"\vroll_number\x18\x01 \x01(\tR\n" +
	"rollNumber\"9\n" +
	"\x1bGetEnrollmentStatusResponse\x12\x1a\n" +
	"\benrolled\x18\x01 \x01(\bR\benrolled2\xd4\x02\n" +
	"\x16MachineLearningService\x12W\n" +
	"\x10ExtractEmbedding\x12 .face.v1.ExtractEmbeddingRequest\x1a!.face.v1.ExtractEmbeddingResponse\x12E\n" +
	"\n" +
	"DetectFace\x12\x1a.face.v1.DetectFaceRequest\x1a\x1b.face.v1.DetectFaceResponse\x12N\n" +
	"\x10PredictExamScore\x12\x17.face.v1.PredictRequest\x1a!.face.v1.PredictExamScoreResponse\x12J\n" +
	"\x0ePredictDropout\x12\x17.face.v1.PredictRequest\x1a\x1f.face.v1.PredictDropoutResponse2\xcd\x01\n" +
	"\x16FaceRecognitionService\x12Q\n" +
	"\x0eRecognizeImage\x12\x1e.face.v1.RecognizeImageRequest\x1a\x1f.face.v1.RecognizeImageResponse\x12`\n" +
	"\x13GetEnrollmentStatus\x12#.face.v1.GetEnrollmentStatusRequest\x1a$.face.v1.GetEnrollmentStatusResponseB=Z;github.com/vidyarthi-tech/face-backend/internal/proto;protob\x06proto3"

var (
	file_face_proto_rawDescOnce sync.Once
	file_face_proto_rawDescData []byte
)

func file_face_proto_rawDescGZIP() []byte {
	file_face_proto_rawDescOnce.Do(func() {
		file_face_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_face_proto_rawDesc), len(file_face_proto_rawDesc)))
	})
	return file_face_proto_rawDescData
}

var file_face_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_face_proto_goTypes = []any{
	(*FramePixels)(nil),                 // 0: face.v1.FramePixels
	(*ExtractEmbeddingRequest)(nil),     // 1: face.v1.ExtractEmbeddingRequest
	(*ExtractEmbeddingResponse)(nil),    // 2: face.v1.ExtractEmbeddingResponse
	(*DetectFaceRequest)(nil),           // 3: face.v1.DetectFaceRequest
	(*DetectFaceResponse)(nil),          // 4: face.v1.DetectFaceResponse
	(*PredictRequest)(nil),              // 5: face.v1.PredictRequest
	(*PredictExamScoreResponse)(nil),    // 6: face.v1.PredictExamScoreResponse
	(*PredictDropoutResponse)(nil),      // 7: face.v1.PredictDropoutResponse
	(*FaceEnrolledEvent)(nil),           // 8: face.v1.FaceEnrolledEvent
	(*RecognizeImageRequest)(nil),       // 9: face.v1.RecognizeImageRequest
	(*RecognizeImageResponse)(nil),      // 10: face.v1.RecognizeImageResponse
	(*GetEnrollmentStatusRequest)(nil),  // 11: face.v1.GetEnrollmentStatusRequest
	(*GetEnrollmentStatusResponse)(nil), // 12: face.v1.GetEnrollmentStatusResponse
}
var file_face_proto_depIdxs = []int32{
	0,  // 0: face.v1.ExtractEmbeddingRequest.frame:type_name -> face.v1.FramePixels
	0,  // 1: face.v1.DetectFaceRequest.frame:type_name -> face.v1.FramePixels
	1,  // 2: face.v1.MachineLearningService.ExtractEmbedding:input_type -> face.v1.ExtractEmbeddingRequest
	3,  // 3: face.v1.MachineLearningService.DetectFace:input_type -> face.v1.DetectFaceRequest
	5,  // 4: face.v1.MachineLearningService.PredictExamScore:input_type -> face.v1.PredictRequest
	5,  // 5: face.v1.MachineLearningService.PredictDropout:input_type -> face.v1.PredictRequest
	9,  // 6: face.v1.FaceRecognitionService.RecognizeImage:input_type -> face.v1.RecognizeImageRequest
	11, // 7: face.v1.FaceRecognitionService.GetEnrollmentStatus:input_type -> face.v1.GetEnrollmentStatusRequest
	2,  // 8: face.v1.MachineLearningService.ExtractEmbedding:output_type -> face.v1.ExtractEmbeddingResponse
	4,  // 9: face.v1.MachineLearningService.DetectFace:output_type -> face.v1.DetectFaceResponse
	6,  // 10: face.v1.MachineLearningService.PredictExamScore:output_type -> face.v1.PredictExamScoreResponse
	7,  // 11: face.v1.MachineLearningService.PredictDropout:output_type -> face.v1.PredictDropoutResponse
	10, // 12: face.v1.FaceRecognitionService.RecognizeImage:output_type -> face.v1.RecognizeImageResponse
	12, // 13: face.v1.FaceRecognitionService.GetEnrollmentStatus:output_type -> face.v1.GetEnrollmentStatusResponse
	8,  // [8:14] is the sub-list for method output_type
	2,  // [2:8] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_face_proto_init() }
func file_face_proto_init() {
	if File_face_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_face_proto_rawDesc), len(file_face_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_face_proto_goTypes,
		DependencyIndexes: file_face_proto_depIdxs,
		MessageInfos:      file_face_proto_msgTypes,
	}.Build()
	File_face_proto = out.File
	file_face_proto_goTypes = nil
	file_face_proto_depIdxs = nil
}
