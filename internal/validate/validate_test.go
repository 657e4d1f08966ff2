package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyAccumulates(t *testing.T) {
	t.Parallel()

	errs := Apply(Values{
		"email":    "not-an-email",
		"password": "abc",
	}, Signup()...)

	require.Len(t, errs, 3)
	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	require.Equal(t, []string{"username", "email", "password"}, fields)
}

func TestSignupRules(t *testing.T) {
	t.Parallel()

	t.Run("valid payload passes", func(t *testing.T) {
		errs := Apply(Values{
			"username": "ann",
			"email":    "ann@x.com",
			"password": "secret1",
		}, Signup()...)
		require.Empty(t, errs)
	})

	t.Run("whitespace username rejected", func(t *testing.T) {
		errs := Apply(Values{
			"username": "   ",
			"email":    "ann@x.com",
			"password": "secret1",
		}, Signup()...)
		require.Len(t, errs, 1)
		require.Equal(t, "username", errs[0].Field)
	})

	t.Run("short password rejected", func(t *testing.T) {
		errs := Apply(Values{
			"username": "ann",
			"email":    "ann@x.com",
			"password": "12345",
		}, Signup()...)
		require.Len(t, errs, 1)
		require.Equal(t, "password min 6 chars", errs[0].Message)
	})
}

func TestLoginRules(t *testing.T) {
	t.Parallel()

	t.Run("either identifier is accepted", func(t *testing.T) {
		require.Empty(t, Apply(Values{"email": "a@x.com", "password": "p"}, Login()...))
		require.Empty(t, Apply(Values{"username": "ann", "password": "p"}, Login()...))
	})

	t.Run("neither identifier fails", func(t *testing.T) {
		errs := Apply(Values{"password": "p"}, Login()...)
		require.Len(t, errs, 1)
		require.Equal(t, "email or username is required", errs[0].Message)
	})

	t.Run("missing password fails", func(t *testing.T) {
		errs := Apply(Values{"username": "ann"}, Login()...)
		require.Len(t, errs, 1)
		require.Equal(t, "password", errs[0].Field)
	})
}

func TestEmployeeCreateRules(t *testing.T) {
	t.Parallel()

	valid := Values{
		"first_name":      "Ann",
		"last_name":       "Lee",
		"email":           "ann@x.com",
		"position":        "Dev",
		"salary":          "50000",
		"date_of_joining": "2023-01-01",
		"department":      "IT",
	}

	t.Run("valid payload passes", func(t *testing.T) {
		require.Empty(t, Apply(valid, EmployeeCreate()...))
	})

	t.Run("non-numeric salary rejected", func(t *testing.T) {
		v := Values{}
		for k, val := range valid {
			v[k] = val
		}
		v["salary"] = "lots"

		errs := Apply(v, EmployeeCreate()...)
		require.Len(t, errs, 1)
		require.Equal(t, "salary must be a number", errs[0].Message)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		v := Values{}
		for k, val := range valid {
			v[k] = val
		}
		v["date_of_joining"] = "01/02/2023"

		errs := Apply(v, EmployeeCreate()...)
		require.Len(t, errs, 1)
		require.Equal(t, "date_of_joining", errs[0].Field)
	})

	t.Run("RFC3339 date accepted", func(t *testing.T) {
		v := Values{}
		for k, val := range valid {
			v[k] = val
		}
		v["date_of_joining"] = "2023-01-01T00:00:00Z"

		require.Empty(t, Apply(v, EmployeeCreate()...))
	})
}

func TestEmployeeUpdateRules(t *testing.T) {
	t.Parallel()

	t.Run("absent fields are skipped", func(t *testing.T) {
		require.Empty(t, Apply(Values{"position": "Lead"}, EmployeeUpdate()...))
	})

	t.Run("supplied fields are still checked", func(t *testing.T) {
		errs := Apply(Values{"salary": "abc", "email": "nope"}, EmployeeUpdate()...)
		require.Len(t, errs, 2)
	})

	t.Run("supplied empty field rejected", func(t *testing.T) {
		errs := Apply(Values{"first_name": ""}, EmployeeUpdate()...)
		require.Len(t, errs, 1)
		require.Equal(t, "first_name is required", errs[0].Message)
	})
}

func TestEmployeeID(t *testing.T) {
	t.Parallel()

	require.Empty(t, Apply(Values{"eid": "3f0e6f43-9b07-4e2f-9c38-56fbf5e9a2f1"}, EmployeeID("eid")...))

	errs := Apply(Values{"eid": "abc123"}, EmployeeID("eid")...)
	require.Len(t, errs, 1)
	require.Equal(t, "invalid employee id", errs[0].Message)
}
