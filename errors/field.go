package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches the name of an invalid field to err. The description is
// optional and formatted with args. A nil err gives nil.
//
// Field names follow Go naming, for example Owner or Price. Nested
// fields use a dot separated path such as Price.Ticker.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &fieldError{field: fieldName, desc: description, parent: err}
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.field)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error { return e.parent }

func (e *fieldError) Field() string { return e.field }

type fielder interface {
	Field() string
}

// FieldErrors collects every error attached to fieldName, looking into
// wrapped errors and into each member of a multi error.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(found, err)
		}
		if u, ok := err.(unpacker); ok {
			for _, member := range u.Unpack() {
				found = append(found, FieldErrors(member, fieldName)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
