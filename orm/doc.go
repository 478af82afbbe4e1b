/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Objects are addressed by their primary key, stored under the
  bucket prefix.
* Counters keep a single uint64 next to the bucket data.

Stored values are plain structs implementing Model; this package takes
care of prefixing keys, validating before every write and loading
values back into a destination model.
*/
package orm
