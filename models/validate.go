package models

import "github.com/go-playground/validator/v10"

// Validate checks structs decoded from persisted storage. Every read path
// that fails validation falls back to the documented empty value instead
// of surfacing a partially populated struct.
var Validate = validator.New()
