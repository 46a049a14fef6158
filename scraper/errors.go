package scraper

import "errors"

// Per-field configuration errors. LoadConfig reports exactly one of these
// for the first invalid field it encounters.
var (
	ErrIncorrectSeedURL           = errors.New("seed URL does not match the https?://(www.)? pattern")
	ErrIncorrectNumberOfArticles  = errors.New("total number of articles to parse is not a non-negative integer")
	ErrNumberOfArticlesOutOfRange = errors.New("total number of articles is out of range from 1 to 150")
	ErrIncorrectHeaders           = errors.New("headers are not a mapping of string to string")
	ErrIncorrectEncoding          = errors.New("encoding is not specified as a non-empty string")
	ErrIncorrectTimeout           = errors.New("timeout value is not a positive integer less than or equal to 60")
	ErrIncorrectVerify            = errors.New("verify certificate value is not a boolean")
	ErrIncorrectHeadless          = errors.New("headless mode value is not a boolean")
)
