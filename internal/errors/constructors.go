package errors

// Convenience functions for the store's error taxonomy

// Load and persistence errors

func FileAccess(path string, cause error) *SvurlError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "set file is not readable").
		WithContext("path", path)
}

func PersistFailed(operation, path string, cause error) *SvurlError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to persist set").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Caller contract errors

func UnknownSet(name string) *SvurlError {
	return New(CategoryValidation, SeverityError, "unknown set").
		WithContext("set", name)
}

func InvalidMode(mode string) *SvurlError {
	return New(CategoryValidation, SeverityFatal, "invalid insert mode").
		WithContext("mode", mode)
}

func InvalidURL(raw string, cause error) *SvurlError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "invalid URL").
		WithContext("url", raw)
}

func InvalidArgument(message string) *SvurlError {
	return New(CategoryValidation, SeverityError, message)
}

// Recoverable errors

func IndexOutOfRange(cause error, index, max int) *SvurlError {
	return Wrap(cause, CategoryRange, SeverityWarning, "index out of range").
		WithContext("index", index).
		WithContext("max", max)
}

func CannotUndo(cause error, path string) *SvurlError {
	return Wrap(cause, CategoryState, SeverityWarning, "cannot undo").
		WithContext("path", path)
}

func OpenFailed(url string, cause error) *SvurlError {
	return Wrap(cause, CategoryExternal, SeverityWarning, "failed to open URL").
		WithContext("url", url)
}

// Config errors

func ConfigInvalid(path string, cause error) *SvurlError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("path", path)
}

func InternalError(message string, cause error) *SvurlError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
