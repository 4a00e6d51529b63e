package domain

import "fmt"

const InvalidPhone = "Invalid"

func FormatPhone(raw string) string {
	switch len(raw) {
	case 0:
		return ""
	case 11:
		return fmt.Sprintf("+%s-%s-%s-%s", raw[:1], raw[1:4], raw[4:7], raw[7:])
	case 10:
		return fmt.Sprintf("%s-%s-%s", raw[:3], raw[3:6], raw[6:])
	case 4:
		return "x" + raw
	default:
		return InvalidPhone
	}
}
