package avlset

import "github.com/pkg/errors"

var ErrEmptySet = errors.New("ordered set is empty")
