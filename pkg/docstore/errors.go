package docstore

// InvalidArgumentError signals a programming error of whoever filled the
// extension properties, not a service fault.
type InvalidArgumentError struct {
	err error
}

func NewInvalidArgumentError(err error) InvalidArgumentError {
	return InvalidArgumentError{err: err}
}

func (InvalidArgumentError) ErrorName() string {
	return "invalidArgument"
}

func (e InvalidArgumentError) Unwrap() error {
	return e.err
}

func (e InvalidArgumentError) Error() string {
	return e.err.Error()
}
