package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrConfigDir     = fmt.Errorf("could not resolve configuration directory")

	// Token storage errors
	ErrTokenRead  = fmt.Errorf("could not read token")
	ErrTokenWrite = fmt.Errorf("could not write token")

	// Server errors
	ErrAssetNotFound = fmt.Errorf("no file found")
	ErrServerStart   = fmt.Errorf("could not create server")

	// Input validation errors
	ErrInvalidPort     = fmt.Errorf("this is not a valid integer for the port")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
