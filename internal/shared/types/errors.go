package types

import "errors"

var (
	ErrSourceNotFound     = errors.New("source table not found")
	ErrUnsupportedSource  = errors.New("unsupported source table format")
	ErrMissingColumn      = errors.New("source table is missing an expected column")
	ErrEmptySource        = errors.New("source table has no header row")
	ErrUnitNotFound       = errors.New("organizational unit not found in the dataset")
	ErrQueryTooShort      = errors.New("search query must have at least 2 characters")
	ErrNoSourcesSpecified = errors.New("no source tables specified. Use --ledger, --grants, --aid and --otsus or a config file")
)
