package catalog

import "errors"

var (
	ErrEntryNotFound = errors.New("service entry not found")
	ErrTitleExists   = errors.New("service entry title already exists")
)
