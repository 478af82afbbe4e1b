package orm

import (
	"reflect"

	"github.com/iov-one/bazaar/errors"
)

// SimpleObj is the Object used by buckets that store a single model type
// under arbitrary keys.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj pairs a key with a model.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte  { return o.key }
func (o SimpleObj) Value() Model { return o.value }

func (o *SimpleObj) SetKey(key []byte) { o.key = key }

// Validate requires both the key and the value and runs the model
// validation.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone returns an object holding a new zero model of the same type. The
// key is copied when set.
func (o *SimpleObj) Clone() Object {
	model := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) > 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: model}
}
