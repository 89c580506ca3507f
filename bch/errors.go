package bch

import "github.com/pkg/errors"

// ErrUncorrectable is returned by Decode when the received word has more
// bit errors than the code's correction capacity, mirroring rs.ErrUncorrectable.
var ErrUncorrectable = errors.New("bch: uncorrectable error pattern")
