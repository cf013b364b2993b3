package errors

// GetCode returns the code of the outermost Error in the chain. Plain
// errors are classified: context cancellation keeps its meaning, the rest
// is internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return codeOf(err)
}

func GetMeta(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message of the outermost Error, without its causes
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool        { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }
func IsFetchFailure(err error) bool    { return GetCode(err) == CodeFetchFailed }
func IsScrapingFailure(err error) bool { return GetCode(err) == CodeScrapingFailed }
func IsLookupFailure(err error) bool   { return GetCode(err) == CodeLookupFailed }

// IsCanceled reports a generation stopped by its caller or its deadline
func IsCanceled(err error) bool {
	code := GetCode(err)
	return code == CodeCanceled || code == CodeDeadlineExceeded
}
