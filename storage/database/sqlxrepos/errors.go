package sqlxrepos

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core"
)

// PostgreSQL error codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqRaiseException      = "P0001"
	pqOutOfRange          = "22003"
)

// constraintErrors maps unique constraints to the domain error they stand for.
type constraintErrors map[string]error

// trapErr translates driver errors into domain errors:
// no rows into notFound, known unique violations into their domain error,
// integrity violations into *core.IntegrityError carrying the engine's message.
// Anything else is wrapped with msg.
func trapErr(err error, msg string, notFound error, uniques constraintErrors) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return notFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			if domainErr, ok := uniques[pqErr.Constraint]; ok {
				return domainErr
			}
			return core.NewIntegrityError(pqErr.Message)
		case pqForeignKeyViolation, pqCheckViolation, pqRaiseException, pqOutOfRange:
			return core.NewIntegrityError(pqErr.Message)
		}
	}
	return errors.Wrap(err, msg)
}

func affected(res sql.Result, msg string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, msg)
	}
	return n > 0, nil
}

// orderBy renders ordering as an ORDER BY clause. Fields must have been checked against the entity's OrderingFields.
func orderBy(ordering []core.DBOrdering) string {
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	clauses := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		clauses = append(clauses, ord.String())
	}
	return " ORDER BY " + strings.Join(clauses, ", ")
}
