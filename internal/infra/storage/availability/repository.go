package availability

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/psqlbuilder"
)

const onConflictClause = "ON CONFLICT (unit_id, date) DO UPDATE SET " +
	"status = EXCLUDED.status, " +
	"notes = EXCLUDED.notes, " +
	"updated_by = EXCLUDED.updated_by, " +
	"updated_at = NOW()"

// Repository репозиторий для работы с записями доступности юнитов.
// Таблица availability_records хранит только исключения: отсутствие строки
// для пары (unit_id, date) означает статус "available".
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert вставляет или замещает запись для пары (unit_id, date).
// Повторная запись в существующую пару перезаписывает её целиком
// (last-write-wins), версионирования истории нет.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Upsert(ctx context.Context, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_records").
		Columns(
			"unit_id",
			"date",
			"status",
			"notes",
			"updated_by",
		).
		Values(
			record.UnitID,
			record.Date,
			record.Status,
			record.Notes,
			record.UpdatedBy,
		).
		Suffix(onConflictClause + " RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, classifyError("Upsert - execute insert", err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// UpsertBatch применяет пакет upsert-ов одним логическим действием.
// Обязана вызываться внутри активной транзакции (через txmanager):
// физически записи пишутся чанками по domain.BulkChunkSize, и только
// объемлющая транзакция гарантирует "все или ничего" — ошибка любого
// чанка откатывает весь пакет.
func (r *Repository) UpsertBatch(ctx context.Context, records []*domain.AvailabilityRecord) ([]*domain.AvailabilityRecord, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, fmt.Errorf("%w: UpsertBatch - must be called inside a transaction", ErrTransaction)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	result := make([]*domain.AvailabilityRecord, 0, len(records))
	for _, chunk := range chunkRecords(records, domain.BulkChunkSize) {
		applied, err := r.upsertChunk(ctx, executor, chunk)
		if err != nil {
			return nil, err
		}
		result = append(result, applied...)
	}

	return result, nil
}

// upsertChunk выполняет один multi-row upsert
func (r *Repository) upsertChunk(ctx context.Context, executor DBExecutor, chunk []*domain.AvailabilityRecord) ([]*domain.AvailabilityRecord, error) {
	builder := psqlbuilder.Insert("availability_records").
		Columns(
			"unit_id",
			"date",
			"status",
			"notes",
			"updated_by",
		)

	for _, record := range chunk {
		builder = builder.Values(
			record.UnitID,
			record.Date,
			record.Status,
			record.Notes,
			record.UpdatedBy,
		)
	}

	query, args, err := builder.
		Suffix(onConflictClause + " RETURNING id, unit_id, date, status, notes, updated_by, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError("UpsertBatch - execute insert", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// QueryRange возвращает все существующие записи для юнитов из filter.UnitIDs
// в границах дат [From, To] (обе включительно), упорядоченные по unit_id и date.
// Для юнитов без записей в диапазоне строк не возвращается — правило
// default-available применяет вызывающая сторона.
func (r *Repository) QueryRange(ctx context.Context, filter domain.AvailabilityRangeFilter) ([]*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"date",
		"status",
		"notes",
		"updated_by",
		"created_at",
		"updated_at",
	).
		From("availability_records").
		Where(squirrel.Eq{"unit_id": filter.UnitIDs}).
		Where(squirrel.GtOrEq{"date": filter.From}).
		Where(squirrel.LtOrEq{"date": filter.To}).
		OrderBy("unit_id ASC, date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: QueryRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError("QueryRange - execute query", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// GetByCell получает запись для пары (unit_id, date)
func (r *Repository) GetByCell(ctx context.Context, unitID int64, date string) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"date",
		"status",
		"notes",
		"updated_by",
		"created_at",
		"updated_at",
	).
		From("availability_records").
		Where(squirrel.Eq{"unit_id": unitID, "date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCell - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.AvailabilityRecord
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.UnitID,
		&record.Date,
		&record.Status,
		&record.Notes,
		&record.UpdatedBy,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, classifyError("GetByCell - scan record", err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

// Delete удаляет запись-исключение, возвращая ячейку к дефолтному
// "available" (true sparse state). Для аудита явной очистки используйте
// Upsert со статусом available вместо удаления.
func (r *Repository) Delete(ctx context.Context, unitID int64, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_records").
		Where(squirrel.Eq{"unit_id": unitID, "date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyError("Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// scanRecords сканирует результаты запроса в слайс записей доступности
func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.AvailabilityRecord, error) {
	records := make([]*domain.AvailabilityRecord, 0)

	for rows.Next() {
		var record domain.AvailabilityRecord
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.UnitID,
			&record.Date,
			&record.Status,
			&record.Notes,
			&record.UpdatedBy,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// chunkRecords режет пакет на чанки фиксированного размера
func chunkRecords(records []*domain.AvailabilityRecord, size int) [][]*domain.AvailabilityRecord {
	if size <= 0 || len(records) == 0 {
		return nil
	}

	chunks := make([][]*domain.AvailabilityRecord, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}

// classifyError разделяет ошибки БД на повторяемые (недоступность хранилища)
// и неповторяемые (нарушения ограничений и прочие ошибки запроса)
func classifyError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}

	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08": // connection exception
			return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
		case "23": // integrity constraint violation
			return fmt.Errorf("%w: %s: %v", ErrConstraint, op, err)
		}
	}

	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
