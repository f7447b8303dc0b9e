package leave

import "strings"

// Class is the pay semantics of a leave type.
type Class string

const (
	ClassPaid      Class = "paid"
	ClassUnpaid    Class = "unpaid"
	ClassMaternity Class = "maternity"
	ClassSick      Class = "sick"
)

// classKeywords maps case-insensitive substrings of a leave-type name
// to its pay class. Order matters: "unpaid sick leave" must land in the
// unpaid bucket, and sick must be recognized before the generic paid
// keywords so sick leave is paid in full exactly once while still being
// tracked separately.
var classKeywords = []struct {
	keyword string
	class   Class
}{
	{"unpaid", ClassUnpaid},
	{"lwop", ClassUnpaid},
	{"maternity", ClassMaternity},
	{"paternity", ClassMaternity},
	{"parental", ClassMaternity},
	{"sick", ClassSick},
	{"medical", ClassSick},
	{"vacation", ClassPaid},
	{"annual", ClassPaid},
	{"personal", ClassPaid},
}

// Classify maps a leave-type name to exactly one pay class. An
// unrecognized name is an error, never a silent default: misclassified
// leave changes pay.
func Classify(typeName string) (Class, error) {
	name := strings.ToLower(typeName)
	for _, kc := range classKeywords {
		if strings.Contains(name, kc.keyword) {
			return kc.class, nil
		}
	}
	return "", ErrUnknownLeaveType
}
