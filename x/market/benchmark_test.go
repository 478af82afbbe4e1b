package market

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/weavetest"
)

func BenchmarkCreateAsset(b *testing.B) {
	f := newFixture(b, uint32(b.N)+1)
	owner := weavetest.NewAddress()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.svc.CreateAsset(f.info(b), f.db, owner); err != nil {
			b.Fatalf("cannot create asset: %s", err)
		}
	}
}

func BenchmarkBuy(b *testing.B) {
	f := newFixture(b, 1)
	price := iov(1)

	traders := make([]bazaar.Address, 2)
	for i := range traders {
		traders[i] = weavetest.NewAddress()
		f.fund(b, traders[i], iov(int64(b.N)+1))
	}
	id := f.create(b, traders[0])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seller, buyer := traders[i%2], traders[(i+1)%2]
		if err := f.svc.SetPrice(f.info(b), f.db, seller, id, &price); err != nil {
			b.Fatalf("cannot set price: %s", err)
		}
		if err := f.svc.Buy(f.info(b), f.db, buyer, id, price); err != nil {
			b.Fatalf("cannot buy: %s", err)
		}
	}
}
