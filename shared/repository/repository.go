package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/shared/constant"
	"rental/shared/dto"
	"rental/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

type column struct {
	name  string
	table string
	alias string
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// joiner is implemented by models whose reads span more than one table.
type joiner interface {
	GetJoinQuery() string
}

// Repository is the CRUD layer shared by every domain table. Read methods go to the read pool;
// the Tx variants run inside a caller-owned transaction.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	var join string
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

// Connection exposes the underlying pools so domain repositories can open transactions.
func (repo *Repository[T]) Connection() *postgres.Connection {
	return repo.db
}

func (repo *Repository[T]) scope(ctx context.Context, operation, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return ctx, scope
}

// fail records err on the span and classifies it so callers can match the postgres sentinels.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, postgres.Classify(err))
}

// namedQuery prepares query on db and hands the statement to read.
func (repo *Repository[T]) namedQuery(ctx context.Context, db preparer, operation, query string, read func(*sqlx.NamedStmt) error) error {
	ctx, scope := repo.scope(ctx, operation, query)
	defer scope.End()

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = read(stmt); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return repo.fail(scope, operation, err)
	}

	return nil
}

func (repo *Repository[T]) namedExec(ctx context.Context, exec execer, operation, query string, args any) (sql.Result, error) {
	ctx, scope := repo.scope(ctx, operation, query)
	defer scope.End()

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, repo.fail(scope, operation, err)
	}

	return result, nil
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	_, err := repo.namedExec(ctx, exec, "insert", query, model)

	return err
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	err := repo.namedQuery(ctx, repo.db.Read, "check exist", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})

	return exist, err
}

// get returns the zero value of T when no row matches.
func (repo *Repository[T]) get(ctx context.Context, db preparer, filter dto.FilterGroup, columns ...string) (T, error) {
	var model T

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s LIMIT 1", repo.getSelectQuery(columns...), repo.table, repo.join, where)

	err := repo.namedQuery(ctx, db, "get", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args)
	})

	return model, err
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, filter, columns...)
}

// GetTx reads through the transaction so the row is part of its snapshot.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, filter, columns...)
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", repo.getSelectQuery(columns...), repo.table, repo.join, where, repo.ordering(params))

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		query += " LIMIT :limit OFFSET :offset"
	}

	models := []T{}
	err := repo.namedQuery(ctx, repo.db.Read, "get all", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(filter)

	var count int

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	err := repo.namedQuery(ctx, repo.db.Read, "count", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})

	return count, err
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) (int64, error) {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	result, err := repo.namedExec(ctx, exec, "delete", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

// Delete removes the matching rows and reports how many were removed.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	_, err := repo.namedExec(ctx, exec, "update", fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where), args)

	return err
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, mod, filter)
}

// ordering only accepts columns of the repository's own table.
func (repo *Repository[T]) ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	known := slices.ContainsFunc(repo.columns, func(col column) bool {
		return col.name == params.SortBy && col.table == repo.table
	})
	if !known {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
}

func (repo *Repository[T]) getSelectQuery(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		switch {
		case col.table == "":
			selected = append(selected, col.name)
		case col.alias != "":
			selected = append(selected, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			selected = append(selected, col.table+"."+col.name)
		}
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// getColumns reads the db, table and column tags of T, descending into embedded structs.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
