package employee

import "errors"

var (
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrInvalidCompensationProfile = errors.New("compensation profile has no positive salary or hourly rate")
)
