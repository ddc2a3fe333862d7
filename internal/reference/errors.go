package reference

import "fmt"

// LookupFault reports that the catalogue could not be queried. Callers that
// resolve airports treat it as "no match".
type LookupFault struct {
	Op  string
	Err error
}

func (e *LookupFault) Error() string {
	return fmt.Sprintf("reference lookup %s failed: %v", e.Op, e.Err)
}

func (e *LookupFault) Unwrap() error {
	return e.Err
}
