package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/offered-places/internal/errs"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"23P01": ExclusionViolation,
		"57014": QueryCanceled,
		"42P01": UndefinedTable,
		"42703": UndefinedColumn,
		"22001": DataException,
		"08006": ConnectionException,
		"40001": TransactionRollback,
		"53300": InsufficientResource,
		"XX000": Other,
		"2":     Other,
		"":      Other,
	}

	for state, want := range tests {
		if got := MapCode(state); got != want {
			t.Errorf("MapCode(%q)=%q want %q", state, got, want)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	if got := MapSeverity("FATAL"); got != SeverityFatal {
		t.Fatalf("got %q", got)
	}
	if got := MapSeverity("SOMETHING"); got != SeverityError {
		t.Fatalf("got %q want default ERROR", got)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"offered_places", NotNullViolation, "OFFERED_PLACE_REQUIRED"},
		{"offered_places", UniqueViolation, "OFFERED_PLACE_ALREADY_EXISTS"},
		{"offered_places", DataException, "OFFERED_PLACE_INVALID"},
		{"offered_places", ConnectionException, "OFFERED_PLACE_UNAVAILABLE"},
		{"offered_places", TransactionRollback, "OFFERED_PLACE_CONFLICT"},
		{"", Other, "RECORD_ERROR"},
	}

	for _, tt := range tests {
		if got := generateErrorCode(tt.table, tt.code); got != tt.want {
			t.Errorf("generateErrorCode(%q, %q)=%q want %q", tt.table, tt.code, got, tt.want)
		}
	}
}

func TestGetEntityName(t *testing.T) {
	if got := getEntityName("offered_places"); got != "Offered Place" {
		t.Fatalf("got %q", got)
	}
	if got := getEntityName(""); got != "record" {
		t.Fatalf("got %q", got)
	}
}

type opaqueErr struct {
	msg   string
	cause error
}

func (e opaqueErr) Error() string { return e.msg }
func (e opaqueErr) Unwrap() error { return e.cause }

func TestDetail(t *testing.T) {
	root := errors.New("connection refused")
	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "23502", Message: "null value in column \"title\""}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", root, "connection refused"},
		{"wrapped with %w", fmt.Errorf("acquire: %w", root), "acquire: connection refused"},
		{"opaque wrapper", opaqueErr{msg: "store failed", cause: root}, "store failed: connection refused"},
		{
			"pg error",
			fmt.Errorf("failed to execute create place query: %w", pgErr),
			"failed to execute create place query: " + pgErr.Error(),
		},
		{
			"pg error behind opaque wrapper",
			opaqueErr{msg: "insert failed", cause: pgErr},
			"insert failed: " + pgErr.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detail(tt.err); got != tt.want {
				t.Fatalf("Detail=%q want %q", got, tt.want)
			}
		})
	}
}

func TestStoreFailure(t *testing.T) {
	t.Run("generic error", func(t *testing.T) {
		err := StoreFailure("Error while querying the database", errors.New("timeout"))

		if err.Status != http.StatusInternalServerError || err.Code != "INTERNAL_SERVER_ERROR" {
			t.Fatalf("err=%+v", err)
		}
		if err.Message != "Error while querying the database" || err.Detail != "timeout" {
			t.Fatalf("err=%+v", err)
		}
	})

	t.Run("postgres error gets a generated code", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", TableName: "offered_places", ColumnName: "title"}
		err := StoreFailure("Error while inserting the place into the database", fmt.Errorf("insert: %w", pgErr))

		if err.Code != "OFFERED_PLACE_REQUIRED" {
			t.Fatalf("code=%q", err.Code)
		}
		if !errors.Is(err, pgErr) {
			t.Fatal("cause not preserved")
		}
	})
}

func TestHandleError(t *testing.T) {
	t.Run("http error passes through", func(t *testing.T) {
		in := errs.NewNotFoundError("gone", nil)
		if got := HandleError(in); got != error(in) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("no rows becomes 404", func(t *testing.T) {
		var httpErr *errs.HTTPError
		if !errors.As(HandleError(fmt.Errorf("lookup: %w", pgx.ErrNoRows)), &httpErr) || httpErr.Status != http.StatusNotFound {
			t.Fatalf("got %+v", httpErr)
		}
	})

	t.Run("postgres error becomes friendly 500", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", TableName: "offered_places", ColumnName: "image_url"}

		var httpErr *errs.HTTPError
		if !errors.As(HandleError(pgErr), &httpErr) {
			t.Fatal("expected *errs.HTTPError")
		}
		if httpErr.Status != http.StatusInternalServerError || httpErr.Message != "The Image Url is required" {
			t.Fatalf("got %+v", httpErr)
		}
	})

	t.Run("unknown error becomes generic 500", func(t *testing.T) {
		var httpErr *errs.HTTPError
		if !errors.As(HandleError(errors.New("boom")), &httpErr) {
			t.Fatal("expected *errs.HTTPError")
		}
		if httpErr.Code != "INTERNAL_SERVER_ERROR" || httpErr.Detail != "" {
			t.Fatalf("got %+v", httpErr)
		}
	})
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	if got := ErrCode(fmt.Errorf("save: %w", pgErr)); got != UniqueViolation {
		t.Fatalf("got %q", got)
	}
	if got := ErrCode(ConvertPgError(&pgconn.PgError{Code: "08000"})); got != ConnectionException {
		t.Fatalf("got %q", got)
	}
	if got := ErrCode(errors.New("x")); got != Other {
		t.Fatalf("got %q", got)
	}
}
