package ledger

import (
	"errors"
	"testing"
)

const (
	operationName = "service"
	subjectName   = "transaction"
	codeName      = "deduct"
)

func TestOperationErrorFormatting(test *testing.T) {
	test.Parallel()
	wrappedError := WrapError(operationName, subjectName, codeName, ErrInsufficientCredits)
	if wrappedError == nil {
		test.Fatalf("expected wrapped error")
	}
	expected := "service.transaction.deduct: insufficient credits"
	if wrappedError.Error() != expected {
		test.Fatalf("expected %q, got %q", expected, wrappedError.Error())
	}
	if !errors.Is(wrappedError, ErrInsufficientCredits) {
		test.Fatalf("expected wrapped error to match sentinel")
	}
	var operationError OperationError
	if !errors.As(wrappedError, &operationError) || operationError.Operation() != operationName {
		test.Fatalf("expected OperationError, got %T", wrappedError)
	}
}

func TestWrapErrorNil(test *testing.T) {
	test.Parallel()
	if WrapError(operationName, subjectName, codeName, nil) != nil {
		test.Fatalf("expected nil wrapped error")
	}
}
