package project

import "fmt"

const internalErrorFmt = `Whoops! It looks like something is wrong with this version of node-headers.
Please, report a bug at https://github.com/node-headers/node-headers-cli/issues/new.
The error is: %s.`

// InternalError returns an error that shouldn't happen on any input
func InternalError(format string, a ...interface{}) error {
	return fmt.Errorf(internalErrorFmt, fmt.Sprintf(format, a...))
}
