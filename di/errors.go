package di

import "errors"

var ErrUnknownPushDriver = errors.New("unknown feed push driver")
