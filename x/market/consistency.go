package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// CheckConsistency walks the whole market state and returns ErrInvariant
// listing every problem found:
//   - every asset is listed exactly once, by its owner only
//   - every listed asset exists
//   - no account holds more than the configured maximum
//   - the asset counter matches the number of stored assets
func (s *Service) CheckConsistency(db bazaar.ReadOnlyKVStore) error {
	conf, err := LoadConfig(db)
	if err != nil {
		return err
	}

	owners := make(map[string]string)
	var assets uint64
	err = s.registry.Scan(db, func(id []byte, a *Asset) error {
		assets++
		owners[string(id)] = string(a.Owner)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "scan assets")
	}

	var problems error
	listed := make(map[string]int)
	err = s.index.Scan(db, func(account bazaar.Address, ids [][]byte) error {
		if len(ids) > int(conf.MaxOwned) {
			problems = errors.Append(problems, errors.Wrapf(ErrInvariant, "%s holds %d assets", account, len(ids)))
		}
		for _, id := range ids {
			listed[string(id)]++
			owner, ok := owners[string(id)]
			switch {
			case !ok:
				problems = errors.Append(problems, errors.Wrapf(ErrInvariant, "%s lists missing asset %X", account, id))
			case owner != string(account):
				problems = errors.Append(problems, errors.Wrapf(ErrInvariant, "%s lists asset %X held by %s", account, id, bazaar.Address(owner)))
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "scan ownership index")
	}

	for id := range owners {
		if n := listed[id]; n != 1 {
			problems = errors.Append(problems, errors.Wrapf(ErrInvariant, "asset %X listed %d times", []byte(id), n))
		}
	}

	count, err := s.registry.Count(db)
	if err != nil {
		return err
	}
	if count != assets {
		problems = errors.Append(problems, errors.Wrapf(ErrInvariant, "counter is %d, %d assets stored", count, assets))
	}
	return problems
}
