package leave

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		typeName string
		want     Class
	}{
		{"Vacation Leave", ClassPaid},
		{"Annual Leave", ClassPaid},
		{"Personal Day", ClassPaid},
		{"Sick Leave", ClassSick},
		{"Medical Leave", ClassSick},
		{"Maternity Leave", ClassMaternity},
		{"Paternity Leave", ClassMaternity},
		{"Parental Leave", ClassMaternity},
		{"Unpaid Leave", ClassUnpaid},
		{"LWOP", ClassUnpaid},
		// Order matters: unpaid wins over the sick keyword.
		{"Unpaid Sick Leave", ClassUnpaid},
		// Case-insensitive.
		{"SICK LEAVE", ClassSick},
	}
	for _, c := range cases {
		got, err := Classify(c.typeName)
		if err != nil {
			t.Errorf("Classify(%q) returned error: %v", c.typeName, err)
			continue
		}
		if got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.typeName, got, c.want)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, name := range []string{"Sabbatical", "Jury Duty", ""} {
		if _, err := Classify(name); err != ErrUnknownLeaveType {
			t.Errorf("Classify(%q) error = %v, want ErrUnknownLeaveType", name, err)
		}
	}
}
