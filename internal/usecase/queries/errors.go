package queries

import "pos-loyalty/internal/pkg/errs"

var ErrInvalidCursor = errs.New("invalid cursor")
