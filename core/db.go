package core

import "fmt"

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// CheckOrdering makes sure every ordering field is one of `allowed`.
// Ordering fields end up in ORDER BY clauses, so anything else is rejected.
func CheckOrdering(ordering []DBOrdering, allowed ...string) error {
	for _, ord := range ordering {
		var found bool
		for _, fld := range allowed {
			if ord.Field == fld {
				found = true
				break
			}
		}
		if !found {
			err := fmt.Errorf("cannot order by %q", ord.Field)
			return NewValidationError(err, FieldError{Field: "ordering", Error: err.Error()})
		}
	}
	return nil
}

// DefaultOrdering is applied to every list query that does not specify one.
var DefaultOrdering = []DBOrdering{{Field: "id", Ascending: true}}
