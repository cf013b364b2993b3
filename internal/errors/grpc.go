package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. The code and
// metadata of an Error travel as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	customErr, ok := asError(err)
	if !ok {
		return status.Error(GetCode(err).GRPCCode(), err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := detailsStruct(customErr); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error back to an Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.AsMap()
		if code, ok := fields["code"].(string); ok && code != "" {
			customErr.Code = Code(code)
		}
		if meta, ok := fields["meta"].(map[string]any); ok {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

func detailsStruct(e *Error) *structpb.Struct {
	meta := make(map[string]any, len(e.Meta))
	for k, v := range e.Meta {
		meta[k] = structValue(v)
	}
	details, err := structpb.NewStruct(map[string]any{
		"code": string(e.Code),
		"meta": meta,
	})
	if err != nil {
		return nil
	}
	return details
}

// structValue narrows metadata values to what structpb accepts
func structValue(v any) any {
	switch t := v.(type) {
	case nil, bool, string, float64, float32, int, int32, int64, uint, uint32, uint64:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case map[string][]string:
		out := make(map[string]any, len(t))
		for k, list := range t {
			out[k] = structValue(list)
		}
		return out
	default:
		return fmt.Sprint(t)
	}
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound, CodeScrapingFailed:
		return codes.NotFound
	case CodeFailedPrecondition, CodeLookupFailed:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable, CodeFetchFailed:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
