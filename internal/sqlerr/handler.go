package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/offered-places/internal/errs"
)

// ErrCode reports the Code of err, or Other when err carries no database
// error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <DOMAIN>_<ACTION> codes such as
// OFFERED_PLACE_REQUIRED from the table and violation type.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation, ExclusionViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, DataException:
		action = "INVALID"
	case ConnectionException, InsufficientResource:
		action = "UNAVAILABLE"
	case TransactionRollback:
		action = "CONFLICT"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage phrases a database error for humans.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)
	case UniqueViolation, ExclusionViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)
	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)
	case CheckViolation, DataException:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"
	case ConnectionException, InsufficientResource:
		return "The database is unavailable"
	default:
		return "An error occurred while accessing the database"
	}
}

// getEntityName singularizes and humanizes a table name:
// offered_places -> Offered Place.
func getEntityName(tableName string) string {
	if tableName == "" {
		return "record"
	}

	entity := tableName
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// MostSpecificCause returns the innermost error in err's chain.
func MostSpecificCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Detail renders err for clients as "<error>: <most specific cause>". The
// cause is left out when the error text already ends with it.
func Detail(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	root := MostSpecificCause(err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		root = pgErr
	}

	rootMsg := root.Error()
	if strings.HasSuffix(msg, rootMsg) {
		return msg
	}
	return msg + ": " + rootMsg
}

// StoreFailure converts a failed store call into a 500 carrying message and
// the store's diagnostic. PostgreSQL errors also get a generated code.
func StoreFailure(message string, err error) *errs.HTTPError {
	var code string

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		code = generateErrorCode(sqlErr.TableName, sqlErr.Code)
	}

	return errs.NewStoreError(message, code, Detail(err), err)
}

// HandleError converts an error that escaped the handlers into an
// application error.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: 500 with a friendly message and the store detail
//   - ErrNoRows: 404
//   - anything else: generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return StoreFailure(formatUserFriendlyMessage(ConvertPgError(pgErr)), err)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
