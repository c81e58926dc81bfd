package providers

import "fmt"

type FormatErrProfileFetchFailed string

func (f FormatErrProfileFetchFailed) Error() string {
	return fmt.Sprintf("fetch user profile failed: %s", string(f))
}
