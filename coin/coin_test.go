package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestCoinArithmetic(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		sum     Coin
		diff    Coin
		wantErr *errors.Error
	}{
		"whole values": {
			a:    NewCoin(5, 0, "IOV"),
			b:    NewCoin(3, 0, "IOV"),
			sum:  NewCoin(8, 0, "IOV"),
			diff: NewCoin(2, 0, "IOV"),
		},
		"fractional carry": {
			a:    NewCoin(1, 700000000, "IOV"),
			b:    NewCoin(0, 600000000, "IOV"),
			sum:  NewCoin(2, 300000000, "IOV"),
			diff: NewCoin(1, 100000000, "IOV"),
		},
		"negative result": {
			a:    NewCoin(1, 0, "IOV"),
			b:    NewCoin(1, 500000000, "IOV"),
			sum:  NewCoin(2, 500000000, "IOV"),
			diff: NewCoin(0, -500000000, "IOV"),
		},
		"zero coin without ticker": {
			a:    NewCoin(4, 0, "IOV"),
			b:    Coin{},
			sum:  NewCoin(4, 0, "IOV"),
			diff: NewCoin(4, 0, "IOV"),
		},
		"mixed currencies": {
			a:       NewCoin(1, 0, "IOV"),
			b:       NewCoin(1, 0, "ETH"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "IOV"),
			b:       NewCoin(1, 0, "IOV"),
			wantErr: errors.ErrOverflow,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sum, err := tc.a.Add(tc.b)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.sum, sum)

			diff, err := tc.a.Subtract(tc.b)
			assert.Nil(t, err)
			assert.Equal(t, tc.diff, diff)
		})
	}
}

func TestCoinCompare(t *testing.T) {
	one := NewCoin(1, 0, "IOV")
	half := NewCoin(0, 500000000, "IOV")

	assert.Equal(t, 1, one.Compare(half))
	assert.Equal(t, -1, half.Compare(one))
	assert.Equal(t, 0, one.Compare(one))
	assert.Equal(t, true, one.IsGTE(half))
	assert.Equal(t, false, half.IsGTE(one))
	assert.Equal(t, false, one.IsGTE(NewCoin(0, 1, "ETH")))
	assert.Equal(t, true, half.IsPositive())
	assert.Equal(t, false, half.Negative().IsPositive())
	assert.Equal(t, true, IsEmpty(nil))
	assert.Equal(t, true, IsEmpty(&Coin{Ticker: "IOV"}))
}

func TestCoinValidate(t *testing.T) {
	assert.Nil(t, NewCoin(1, 2, "IOV").Validate())
	assert.FieldError(t, NewCoin(1, 2, "iov").Validate(), "Ticker", errors.ErrCurrency)
	assert.FieldError(t, NewCoin(MaxInt+1, 0, "IOV").Validate(), "Whole", errors.ErrOverflow)
	assert.FieldError(t, NewCoin(1, -2, "IOV").Validate(), "Fractional", errors.ErrState)
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    Coin
		wantErr *errors.Error
	}{
		"whole":        {in: "4 IOV", want: NewCoin(4, 0, "IOV")},
		"fraction":     {in: "1.5 IOV", want: NewCoin(1, 500000000, "IOV")},
		"small":        {in: "0.000000001ETH", want: NewCoin(0, 1, "ETH")},
		"negative":     {in: "-0.25 IOV", want: NewCoin(0, -250000000, "IOV")},
		"no ticker":    {in: "4", wantErr: errors.ErrInput},
		"too precise":  {in: "1.0000000001 IOV", wantErr: errors.ErrInput},
		"lower ticker": {in: "1 iov", wantErr: errors.ErrInput},
		"garbage":      {in: "one IOV", wantErr: errors.ErrInput},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.in)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
				back, err := ParseHumanFormat(got.String())
				assert.Nil(t, err)
				assert.Equal(t, got, back)
			}
		})
	}
}

func TestCoinJSON(t *testing.T) {
	var c Coin
	assert.Nil(t, json.Unmarshal([]byte(`"2.5 IOV"`), &c))
	assert.Equal(t, NewCoin(2, 500000000, "IOV"), c)

	assert.Nil(t, json.Unmarshal([]byte(`{"whole": 3, "ticker": "ETH"}`), &c))
	assert.Equal(t, NewCoin(3, 0, "ETH"), c)

	if err := json.Unmarshal([]byte(`"lots of money"`), &c); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestCoins(t *testing.T) {
	set, err := CoinsOf(NewCoin(5, 0, "IOV"), NewCoin(1, 0, "ETH"), NewCoin(2, 0, "IOV"))
	assert.Nil(t, err)
	assert.Nil(t, set.Validate())
	assert.Equal(t, Coins{NewCoin(1, 0, "ETH"), NewCoin(7, 0, "IOV")}, set)

	assert.Equal(t, NewCoin(7, 0, "IOV"), set.Balance("IOV"))
	assert.Equal(t, Coin{Ticker: "BTC"}, set.Balance("BTC"))
	assert.Equal(t, true, set.Contains(NewCoin(7, 0, "IOV")))
	assert.Equal(t, false, set.Contains(NewCoin(7, 1, "IOV")))

	less, err := set.Subtract(NewCoin(1, 0, "ETH"))
	assert.Nil(t, err)
	assert.Equal(t, Coins{NewCoin(7, 0, "IOV")}, less)
	// receiver is untouched
	assert.Equal(t, NewCoin(1, 0, "ETH"), set.Balance("ETH"))

	_, err = set.Subtract(NewCoin(8, 0, "IOV"))
	assert.IsErr(t, errors.ErrAmount, err)
	_, err = set.Subtract(NewCoin(1, 0, "BTC"))
	assert.IsErr(t, errors.ErrAmount, err)
	_, err = set.Add(NewCoin(1, 0, "bad"))
	assert.IsErr(t, errors.ErrCurrency, err)

	unsorted := Coins{NewCoin(1, 0, "IOV"), NewCoin(1, 0, "ETH")}
	assert.IsErr(t, errors.ErrState, unsorted.Validate())
	assert.IsErr(t, errors.ErrAmount, Coins{NewCoin(0, -1, "IOV")}.Validate())
}
