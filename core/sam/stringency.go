// core/sam/stringency.go
package sam

import "fmt"

// ValidationStringency controls how tolerant line parsing is of defective
// input. It never applies to lifecycle errors, only to record/header content.
type ValidationStringency int

const (
	// StringencyStrict rejects any validation problem.
	StringencyStrict ValidationStringency = iota
	// StringencyLenient accepts records that fail semantic validation.
	StringencyLenient
	// StringencySilent behaves like lenient without recording diagnostics.
	StringencySilent
)

func (v ValidationStringency) String() string {
	switch v {
	case StringencyStrict:
		return "strict"
	case StringencyLenient:
		return "lenient"
	case StringencySilent:
		return "silent"
	default:
		return fmt.Sprintf("stringency(%d)", int(v))
	}
}

// ParseStringency maps a CLI word onto a stringency value.
func ParseStringency(s string) (ValidationStringency, error) {
	switch s {
	case "strict":
		return StringencyStrict, nil
	case "lenient":
		return StringencyLenient, nil
	case "silent":
		return StringencySilent, nil
	}
	return StringencyStrict, fmt.Errorf("invalid stringency %q (strict|lenient|silent)", s)
}
