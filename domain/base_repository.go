package domain

import "errors"

// ErrNotFound 按ID或条件查不到文档
var ErrNotFound = errors.New("entity not found")
