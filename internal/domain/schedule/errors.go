package schedule

import "errors"

// Schedule domain errors
var (
	ErrTemplateNotFound = errors.New("schedule template not found")
)
