package app

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()

	var called []string
	r.Handle("ping", HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		called = append(called, op.Kind)
		return &Result{Data: []byte("pong")}, nil
	}))

	h, err := r.Handler("ping")
	assert.Nil(t, err)
	res, err := h.Deliver(weavetest.BlockInfo(t, 1), store.MemStore(), Operation{Kind: "ping"})
	assert.Nil(t, err)
	assert.Equal(t, []byte("pong"), res.Data)
	assert.Equal(t, []string{"ping"}, called)

	_, err = r.Handler("pong")
	assert.IsErr(t, ErrUnknownOperation, err)
}

func TestRouterRegistration(t *testing.T) {
	noop := HandlerFunc(func(bazaar.BlockInfo, bazaar.KVStore, Operation) (*Result, error) {
		return nil, nil
	})

	r := NewRouter()
	r.Handle("create_asset", noop)
	assert.Panics(t, func() { r.Handle("create_asset", noop) })
	assert.Panics(t, func() { r.Handle("Create", noop) })
	assert.Panics(t, func() { r.Handle("", noop) })
	assert.Panics(t, func() { r.Handle("with space", noop) })
}

func TestOperationAssetID(t *testing.T) {
	cases := map[string]struct {
		asset   string
		wantID  []byte
		wantErr *errors.Error
	}{
		"upper case": {
			asset:  "0A1B",
			wantID: []byte{0x0a, 0x1b},
		},
		"lower case": {
			asset:  "0a1b",
			wantID: []byte{0x0a, 0x1b},
		},
		"missing": {
			asset:   "",
			wantErr: errors.ErrEmpty,
		},
		"not hex": {
			asset:   "xyz",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			id, err := Operation{Asset: tc.asset}.AssetID()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.wantID, id)
		})
	}
}
