package creditv1

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestServiceDescriptorMatchesGRPCDesc(test *testing.T) {
	test.Parallel()
	service := File_credit_v1_credit_proto.Services().ByName("CreditService")
	if service == nil {
		test.Fatalf("CreditService missing from descriptor")
	}
	if string(service.FullName()) != CreditService_ServiceDesc.ServiceName {
		test.Fatalf("service name = %s, desc = %s", service.FullName(), CreditService_ServiceDesc.ServiceName)
	}
	if service.Methods().Len() != len(CreditService_ServiceDesc.Methods) {
		test.Fatalf("descriptor has %d methods, desc has %d", service.Methods().Len(), len(CreditService_ServiceDesc.Methods))
	}
	for _, method := range CreditService_ServiceDesc.Methods {
		if service.Methods().ByName(protoreflect.Name(method.MethodName)) == nil {
			test.Fatalf("method %s missing from descriptor", method.MethodName)
		}
	}
}

func TestOptionalTokenCountKeepsPresence(test *testing.T) {
	test.Parallel()
	zero := int64(0)
	original := &DeductCreditsRequest{UserId: "user-1", Amount: 3, RawCostEur: "0.10", RawTokenCount: &zero}
	payload, err := proto.Marshal(original)
	if err != nil {
		test.Fatalf("marshal: %v", err)
	}
	decoded := &DeductCreditsRequest{}
	if err := proto.Unmarshal(payload, decoded); err != nil {
		test.Fatalf("unmarshal: %v", err)
	}
	if decoded.RawTokenCount == nil || decoded.GetRawTokenCount() != 0 {
		test.Fatalf("expected explicit zero token count, got %v", decoded.RawTokenCount)
	}

	withoutCount := &DeductCreditsRequest{UserId: "user-1", Amount: 3}
	payload, err = proto.Marshal(withoutCount)
	if err != nil {
		test.Fatalf("marshal: %v", err)
	}
	decoded = &DeductCreditsRequest{}
	if err := proto.Unmarshal(payload, decoded); err != nil {
		test.Fatalf("unmarshal: %v", err)
	}
	if decoded.RawTokenCount != nil {
		test.Fatalf("expected absent token count, got %d", *decoded.RawTokenCount)
	}
}

func TestRefundNotesSurviveEncoding(test *testing.T) {
	test.Parallel()
	original := &RefundCreditsRequest{UserId: "user-1", Amount: 5, Notes: map[string]string{"reason": "render failed"}}
	payload, err := proto.Marshal(original)
	if err != nil {
		test.Fatalf("marshal: %v", err)
	}
	decoded := &RefundCreditsRequest{}
	if err := proto.Unmarshal(payload, decoded); err != nil {
		test.Fatalf("unmarshal: %v", err)
	}
	if decoded.GetNotes()["reason"] != "render failed" {
		test.Fatalf("unexpected notes %v", decoded.GetNotes())
	}
}
