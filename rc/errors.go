package rc

// FileExists - Custom error to inform that a hash file can not be created since something already exists at the path
type FileExists struct {
	msg string
}

// Error - Used to notify that the file already exists
func (E FileExists) Error() string {
	if E.msg == "" {
		return "file exists"
	}
	return E.msg
}

// Is - Makes errors.Is match any FileExists regardless of message
func (E FileExists) Is(target error) bool {
	_, ok := target.(FileExists)
	return ok
}

// NewFileExists - Returns a FileExists with a custom message
func NewFileExists(msg string) FileExists {
	return FileExists{msg: msg}
}

// FileNotFound - Custom error to inform that no hash file exists at the path
type FileNotFound struct {
	msg string
}

// Error - Used to notify that the file was not found
func (E FileNotFound) Error() string {
	if E.msg == "" {
		return "file not found"
	}
	return E.msg
}

// Is - Makes errors.Is match any FileNotFound regardless of message
func (E FileNotFound) Is(target error) bool {
	_, ok := target.(FileNotFound)
	return ok
}

// NewFileNotFound - Returns a FileNotFound with a custom message
func NewFileNotFound(msg string) FileNotFound {
	return FileNotFound{msg: msg}
}

// HeaderNotFound - Custom error to inform that the file is too short to hold a header
type HeaderNotFound struct {
	msg string
}

// Error - Used to notify that no header could be read
func (E HeaderNotFound) Error() string {
	if E.msg == "" {
		return "header not found"
	}
	return E.msg
}

// Is - Makes errors.Is match any HeaderNotFound regardless of message
func (E HeaderNotFound) Is(target error) bool {
	_, ok := target.(HeaderNotFound)
	return ok
}

// NewHeaderNotFound - Returns a HeaderNotFound with a custom message
func NewHeaderNotFound(msg string) HeaderNotFound {
	return HeaderNotFound{msg: msg}
}

// LocNotFound - Custom error to inform that a slot lies beyond the physical end of the file.
// It is expected for buckets never written and means the slot is empty, not that the file is corrupt.
type LocNotFound struct {
	msg string
}

// Error - Used to notify that the location was not found
func (E LocNotFound) Error() string {
	if E.msg == "" {
		return "location not found"
	}
	return E.msg
}

// Is - Makes errors.Is match any LocNotFound regardless of message
func (E LocNotFound) Is(target error) bool {
	_, ok := target.(LocNotFound)
	return ok
}

// NewLocNotFound - Returns a LocNotFound with a custom message
func NewLocNotFound(msg string) LocNotFound {
	return LocNotFound{msg: msg}
}

// LocNotWritten - Custom error to inform that a record was not completely written.
// The on-disk state of the slot is unspecified afterwards.
type LocNotWritten struct {
	msg string
}

// Error - Used to notify that the location was not written
func (E LocNotWritten) Error() string {
	if E.msg == "" {
		return "location not written"
	}
	return E.msg
}

// Is - Makes errors.Is match any LocNotWritten regardless of message
func (E LocNotWritten) Is(target error) bool {
	_, ok := target.(LocNotWritten)
	return ok
}

// NewLocNotWritten - Returns a LocNotWritten with a custom message
func NewLocNotWritten(msg string) LocNotWritten {
	return LocNotWritten{msg: msg}
}

// InvalidLocation - Custom error to inform that an RBN is outside the address space of the file
type InvalidLocation struct {
	msg string
}

// Error - Used to notify that the location is invalid
func (E InvalidLocation) Error() string {
	if E.msg == "" {
		return "invalid location"
	}
	return E.msg
}

// Is - Makes errors.Is match any InvalidLocation regardless of message
func (E InvalidLocation) Is(target error) bool {
	_, ok := target.(InvalidLocation)
	return ok
}

// NewInvalidLocation - Returns an InvalidLocation with a custom message
func NewInvalidLocation(msg string) InvalidLocation {
	return InvalidLocation{msg: msg}
}

// FormatError - Custom error to inform that a buffer or value does not have the expected fixed format
type FormatError struct {
	msg string
}

// Error - Used to notify a format problem
func (E FormatError) Error() string {
	if E.msg == "" {
		return "format error"
	}
	return E.msg
}

// Is - Makes errors.Is match any FormatError regardless of message
func (E FormatError) Is(target error) bool {
	_, ok := target.(FormatError)
	return ok
}

// NewFormatError - Returns a FormatError with a custom message
func NewFormatError(msg string) FormatError {
	return FormatError{msg: msg}
}

// RecordNotFound - Custom error to inform that no record with the given key was found
type RecordNotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E RecordNotFound) Error() string {
	if E.msg == "" {
		return "record not found"
	}
	return E.msg
}

// Is - Makes errors.Is match any RecordNotFound regardless of message
func (E RecordNotFound) Is(target error) bool {
	_, ok := target.(RecordNotFound)
	return ok
}

// NewRecordNotFound - Returns a RecordNotFound with a custom message
func NewRecordNotFound(msg string) RecordNotFound {
	return RecordNotFound{msg: msg}
}
