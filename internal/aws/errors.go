package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ErrorCode extracts the service error code from an SDK error. Returns ""
// when the error did not come from the service.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsConditionalCheckFailed reports whether a write was rejected by its
// condition expression, which the stores treat as "record does not exist".
func IsConditionalCheckFailed(err error) bool {
	return ErrorCode(err) == "ConditionalCheckFailedException"
}
