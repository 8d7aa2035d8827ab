package errs

// InvalidConf - Custom error to inform that a configuration parameter is not usable
type InvalidConf struct {
	msg string
}

// NewInvalidConf - Returns an InvalidConf error carrying msg
func NewInvalidConf(msg string) InvalidConf {
	return InvalidConf{msg: msg}
}

// Error - Used to notify that a configuration parameter is invalid
func (E InvalidConf) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// Is - Matches any InvalidConf regardless of message
func (E InvalidConf) Is(target error) bool {
	_, ok := target.(InvalidConf)
	return ok
}

// BucketOutOfRange - Custom error to inform that a bucket number is outside the direct index
type BucketOutOfRange struct {
	msg string
}

// NewBucketOutOfRange - Returns a BucketOutOfRange error carrying msg
func NewBucketOutOfRange(msg string) BucketOutOfRange {
	return BucketOutOfRange{msg: msg}
}

// Error - Used to notify that a bucket number is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number out of range"
	}
	return B.msg
}

// Is - Matches any BucketOutOfRange regardless of message
func (B BucketOutOfRange) Is(target error) bool {
	_, ok := target.(BucketOutOfRange)
	return ok
}
