package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestSavepoint(t *testing.T) {
	cases := map[string]struct {
		fnErr     error
		wantErr   *errors.Error
		wantValue []byte
	}{
		"success writes": {
			wantValue: []byte("value"),
		},
		"failure discards": {
			fnErr:   errors.Wrap(errors.ErrState, "nope"),
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			err := Savepoint(db, func(db bazaar.KVStore) error {
				if err := db.Set([]byte("key"), []byte("value")); err != nil {
					return err
				}
				return tc.fnErr
			})
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			got, err := db.Get([]byte("key"))
			assert.Nil(t, err)
			assert.EqualBytes(t, tc.wantValue, got)
		})
	}
}

func TestSavepointNested(t *testing.T) {
	db := store.MemStore()
	err := Savepoint(db, func(outer bazaar.KVStore) error {
		if err := outer.Set([]byte("outer"), []byte("1")); err != nil {
			return err
		}
		inner := Savepoint(outer, func(inner bazaar.KVStore) error {
			if err := inner.Set([]byte("inner"), []byte("2")); err != nil {
				return err
			}
			return errors.ErrState
		})
		assert.IsErr(t, errors.ErrState, inner)
		return nil
	})
	assert.Nil(t, err)

	got, err := db.Get([]byte("outer"))
	assert.Nil(t, err)
	assert.EqualBytes(t, []byte("1"), got)
	got, err = db.Get([]byte("inner"))
	assert.Nil(t, err)
	assert.EqualBytes(t, nil, got)
}

func TestSavepointRequiresCacheableStore(t *testing.T) {
	called := false
	err := Savepoint(store.EmptyKVStore{}, func(bazaar.KVStore) error {
		called = true
		return nil
	})
	assert.IsErr(t, errors.ErrHuman, err)
	assert.Equal(t, false, called)
}

func TestRecovered(t *testing.T) {
	err := Recovered(func() error { panic("boom") })
	assert.IsErr(t, errors.ErrPanic, err)

	err = Recovered(func() error { return errors.ErrEmpty })
	assert.IsErr(t, errors.ErrEmpty, err)

	assert.Nil(t, Recovered(func() error { return nil }))
}

func TestLogResult(t *testing.T) {
	var buf bytes.Buffer
	info, err := bazaar.NewBlockInfo("test-chain", 3, time.Now(), log.NewTMLogger(&buf))
	assert.Nil(t, err)

	LogResult(info, time.Now(), "all good", nil, "asset", "A1")
	out := buf.String()
	if !strings.HasPrefix(out, "I[") || !strings.Contains(out, "all good") || !strings.Contains(out, "asset=A1") {
		t.Fatalf("unexpected success log: %q", out)
	}
	if !strings.Contains(out, "duration=") {
		t.Fatalf("duration missing: %q", out)
	}

	buf.Reset()
	LogResult(info, time.Now(), "went bad", errors.Wrap(errors.ErrState, "broken"))
	out = buf.String()
	if !strings.HasPrefix(out, "E[") || !strings.Contains(out, "broken") {
		t.Fatalf("unexpected failure log: %q", out)
	}
}
