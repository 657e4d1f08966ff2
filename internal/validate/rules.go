package validate

// Rule sets for each operation that accepts caller input.

func Signup() []Rule {
	return []Rule{
		Required("username"),
		Email("email"),
		MinLen("password", 6),
	}
}

func Login() []Rule {
	return []Rule{
		Required("password"),
		AnyOf("email or username is required", "email", "username"),
	}
}

func EmployeeCreate() []Rule {
	return []Rule{
		Required("first_name"),
		Required("last_name"),
		Email("email"),
		Required("position"),
		Numeric("salary"),
		ISODate("date_of_joining"),
		Required("department"),
	}
}

// EmployeeUpdate re-checks only the fields the caller sent.
func EmployeeUpdate() []Rule {
	return []Rule{
		Optional("first_name", Required("first_name")),
		Optional("last_name", Required("last_name")),
		Optional("email", Email("email")),
		Optional("position", Required("position")),
		Optional("salary", Numeric("salary")),
		Optional("date_of_joining", ISODate("date_of_joining")),
		Optional("department", Required("department")),
	}
}

// EmployeeID guards every id-bearing read/update/delete path.
func EmployeeID(field string) []Rule {
	return []Rule{UUID(field)}
}
