package model

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by repositories when no document matches the given ID.
var ErrNotFound = goerr.New("not found")
