package model

import "errors"

var (
	ErrInvalidLevel     = errors.New("level out of range")
	ErrUnknownClass     = errors.New("unknown class")
	ErrInsufficientMana = errors.New("not enough mana")
)
