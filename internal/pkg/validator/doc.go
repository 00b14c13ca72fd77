// Package validator wraps go-playground/validator behind a one-method
// interface with translated, field-keyed error messages.
package validator
